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

package myers

import (
	"bytes"
	"errors"
	"slices"

	"github.com/seqwise/align/internal/alphabet"
)

var errBacktrack = errors.New("myers: inconsistent scores during backtracking")

// tracebackMaxMem bounds the memory spent on storing full columns for direct traceback. Larger
// subproblems are split by the divide and conquer in Path first.
const tracebackMaxMem = 1 << 20

// Path computes an optimal sequence of edit operations transforming query into target, given
// their known edit distance. Ties are broken deterministically: match over mismatch over delete
// over insert.
//
// Small subproblems recompute the banded matrix with all columns stored and walk it backwards.
// Anything larger is split at the middle target column (Hirschberg): two bounded searches,
// forward and backward, meet there, and the row where their scores sum to the distance splits
// the problem in two.
func Path(query, target []uint8, a *alphabet.Alphabet, dist int) ([]byte, error) {
	m, n := len(query), len(target)
	switch {
	case m == 0:
		return bytes.Repeat([]byte{OpInsert}, n), nil
	case n == 0:
		return bytes.Repeat([]byte{OpDelete}, m), nil
	}

	nblocks := NumBlocks(m)
	w := nblocks*WordSize - m

	if mem := (2*8+8)*nblocks*n; n == 1 || mem <= tracebackMaxMem {
		peq := BuildPeq(a, query)
		best, data := Global(peq, w, nblocks, m, target, dist, true, -1)
		if best != dist {
			return nil, errBacktrack
		}
		return traceback(query, target, a, dist, data)
	}

	// Split at the middle column. Both passes run against the full target length so the band
	// keeps every cell an optimal full alignment can pass through, they just stop recording at
	// the split.
	mid := n / 2
	peq := BuildPeq(a, query)
	rpeq := BuildPeq(a, reverseSeq(query))
	_, fdata := Global(peq, w, nblocks, m, target, dist, false, mid-1)
	_, bdata := Global(rpeq, w, nblocks, m, reverseSeq(target), dist, false, n-mid-1)

	// fcol[r] = distance(query[:r+1], target[:mid]), bcol[i] = distance(query[m-1-i:], target[mid:]).
	fcol := make([]int, m)
	bcol := make([]int, m)
	fdata.columnScores(0, fcol)
	bdata.columnScores(0, bcol)

	// An optimal path crosses the split after consuming some query prefix query[:r]. At that row
	// the costs of the two halves sum to the total distance.
	split, fdist, bdist := -1, 0, 0
	for r := 0; r <= m; r++ {
		f := mid
		if r > 0 {
			f = fcol[r-1]
		}
		b := n - mid
		if r < m {
			b = bcol[m-r-1]
		}
		if f+b == dist {
			split, fdist, bdist = r, f, b
			break
		}
	}
	if split < 0 {
		return nil, errBacktrack
	}

	left, err := Path(query[:split], target[:mid], a, fdist)
	if err != nil {
		return nil, err
	}
	right, err := Path(query[split:], target[mid:], a, bdist)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}

// traceback walks the stored banded matrix from the bottom right corner back to the origin.
func traceback(query, target []uint8, a *alphabet.Alphabet, dist int, data *AlignmentData) ([]byte, error) {
	m, n := len(query), len(target)
	cell := func(r, c int) int {
		switch {
		case r < 0 && c < 0:
			return 0
		case r < 0:
			return c + 1
		case c < 0:
			return r + 1
		default:
			return data.cell(c, r)
		}
	}

	ops := make([]byte, 0, max(m, n))
	r, c := m-1, n-1
	cur := dist
	for r >= 0 && c >= 0 {
		diag := cell(r-1, c-1)
		switch {
		case a.Equal(query[r], target[c]) && diag == cur:
			ops = append(ops, OpMatch)
			r, c, cur = r-1, c-1, diag
		case diag+1 == cur:
			ops = append(ops, OpMismatch)
			r, c, cur = r-1, c-1, diag
		case cell(r-1, c)+1 == cur:
			ops = append(ops, OpDelete)
			r, cur = r-1, cell(r-1, c)
		case cell(r, c-1)+1 == cur:
			ops = append(ops, OpInsert)
			c, cur = c-1, cell(r, c-1)
		default:
			return nil, errBacktrack
		}
	}
	for ; r >= 0; r-- {
		ops = append(ops, OpDelete)
	}
	for ; c >= 0; c-- {
		ops = append(ops, OpInsert)
	}
	slices.Reverse(ops)
	return ops, nil
}
