// Copyright 2025 The align Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package alphabet maps raw byte sequences onto a dense integer alphabet.
//
// The engine operates on small integer symbol ids rather than raw bytes: the alphabet contains
// exactly the distinct symbols present in the query or the target, so the per-symbol match-mask
// table stays as small as the input allows. The alphabet also carries the user-declared equality
// relation between symbols.
package alphabet

import "errors"

// MaxSymbols is the largest alphabet the engine can represent. Byte sequences can never exceed
// it, the guard exists to keep the invariant explicit for future wider symbol types.
const MaxSymbols = 256

// ErrTooManySymbols is returned when the distinct symbols of query and target exceed MaxSymbols.
var ErrTooManySymbols = errors.New("alphabet: too many distinct symbols")

// Alphabet is the dense symbol id space of one alignment call together with its equality
// relation.
//
// The equality relation is identity plus the declared pairs, applied symmetrically but not
// transitively: declaring a≡b and b≡c does not make a equal to c. Callers that want closure must
// declare every pair explicitly.
type Alphabet struct {
	size int
	eq   []bool // size x size matrix, row-major
}

// Encode builds the alphabet for query and target and returns both sequences translated to
// symbol ids. Declared equality pairs whose symbols do not occur in either sequence are ignored.
func Encode(query, target []byte, pairs [][2]byte) (*Alphabet, []uint8, []uint8, error) {
	var ids [256]int16
	for i := range ids {
		ids[i] = -1
	}

	size := 0
	assign := func(seq []byte) []uint8 {
		enc := make([]uint8, len(seq))
		for i, c := range seq {
			if ids[c] < 0 {
				ids[c] = int16(size)
				size++
			}
			enc[i] = uint8(ids[c])
		}
		return enc
	}
	encQ := assign(query)
	encT := assign(target)
	if size > MaxSymbols {
		return nil, nil, nil, ErrTooManySymbols
	}

	a := &Alphabet{
		size: size,
		eq:   make([]bool, size*size),
	}
	for s := 0; s < size; s++ {
		a.eq[s*size+s] = true
	}
	for _, p := range pairs {
		i, j := ids[p[0]], ids[p[1]]
		if i < 0 || j < 0 {
			continue
		}
		a.eq[int(i)*size+int(j)] = true
		a.eq[int(j)*size+int(i)] = true
	}
	return a, encQ, encT, nil
}

// Size returns the number of distinct symbols.
func (a *Alphabet) Size() int { return a.size }

// Equal reports whether two symbol ids match under the alphabet's equality relation.
func (a *Alphabet) Equal(x, y uint8) bool {
	return a.eq[int(x)*a.size+int(y)]
}
