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

package align

import (
	"fmt"

	"github.com/seqwise/align/internal/alphabet"
	"github.com/seqwise/align/internal/config"
	"github.com/seqwise/align/internal/myers"
)

// ErrTooManySymbols is returned when query and target together contain more distinct symbols
// than the engine can represent.
var ErrTooManySymbols = alphabet.ErrTooManySymbols

// Op is a single edit operation of an alignment, read as an instruction for transforming the
// query into the target span it aligns to.
type Op byte

const (
	// Match consumes one query and one target symbol that match.
	Match Op = iota

	// Insert consumes one target symbol with no query counterpart.
	Insert

	// Delete consumes one query symbol with no target counterpart.
	Delete

	// Mismatch consumes one query and one target symbol that differ.
	Mismatch
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Mismatch:
		return "mismatch"
	default:
		return fmt.Sprint(byte(op))
	}
}

// Result holds the outcome of an [Align] call. Which fields are populated depends on the
// requested task and on whether an alignment within the bound exists at all.
type Result struct {
	// Distance is the edit distance between query and target under the selected regime, or -1
	// when it exceeds the configured bound.
	Distance int

	// EndLocations lists the exclusive end positions of all optimal alignments in the target, in
	// increasing order: an alignment ending at e spans up to target[:e]. Global alignment always
	// ends at len(target). Empty when Distance is -1.
	EndLocations []int

	// StartLocations lists the start position for each entry of EndLocations, such that the
	// alignment spans target[start:end]. Only populated for [Locations] and [Path]. [Global] and
	// [Prefix] alignments always start at 0; for [Infix] each entry is the start of the longest
	// optimal occurrence with that end.
	StartLocations []int

	// Alignment is the edit-operation sequence for the first reported location pair. Only
	// populated for [Path].
	Alignment []Op

	// AlphabetSize is the number of distinct symbols across query and target.
	AlphabetSize int
}

// Align compares query against target and returns the edit distance together with the requested
// alignment details. The zero-option call computes the unbounded global distance; see [Option]
// and the option constructors for the regimes, tasks and bounds.
//
// Align never fails for well-formed inputs, the error cases are [ErrTooManySymbols] and
// hand-built configurations with out-of-range discriminants.
func Align(query, target []byte, opts ...Option) (Result, error) {
	cfg := config.FromOptions(opts, config.All)
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	a, encQ, encT, err := alphabet.Encode(query, target, cfg.Equalities)
	if err != nil {
		return Result{}, err
	}
	res := Result{Distance: -1, AlphabetSize: a.Size()}
	m, n := len(encQ), len(encT)

	if m == 0 || n == 0 {
		alignEmpty(&res, cfg, m, n)
		return res, nil
	}

	nblocks := myers.NumBlocks(m)
	w := nblocks*myers.WordSize - m
	peq := myers.BuildPeq(a, encQ)

	// Without a caller bound the search starts narrow and doubles until conclusive; max(m, n)
	// always is. A found distance is exact either way, the band is only ever pruned against
	// cells that provably exceed the bound.
	k, dynamic := cfg.K, cfg.K < 0
	if dynamic {
		k = myers.WordSize
	}
	var ends []int
	for {
		if cfg.Mode == config.Global {
			res.Distance, _ = myers.Global(peq, w, nblocks, m, encT, k, false, -1)
			if res.Distance >= 0 {
				ends = []int{n}
			}
		} else {
			res.Distance, ends = myers.SemiGlobal(peq, w, nblocks, m, encT, k, cfg.Mode)
		}
		if res.Distance >= 0 || !dynamic || k >= max(m, n) {
			break
		}
		k *= 2
	}
	if res.Distance < 0 {
		return res, nil
	}
	res.EndLocations = ends

	if cfg.Task >= config.Locations {
		res.StartLocations = startLocations(a, encQ, encT, cfg.Mode, res.Distance, ends)
	}
	if cfg.Task == config.Path {
		start, end := 0, n
		if cfg.Mode != config.Global {
			end = ends[0]
		}
		if cfg.Mode == config.Infix {
			start = res.StartLocations[0]
		}
		ops, err := myers.Path(encQ, encT[start:end], a, res.Distance)
		if err != nil {
			return Result{}, err
		}
		res.Alignment = toOps(ops)
	}
	return res, nil
}

// startLocations finds the start position for every end position. Global and prefix alignments
// start at 0 by construction. For infix the query is matched backwards from each end with a free
// suffix, the furthest reachable position with the known distance is the start.
func startLocations(a *alphabet.Alphabet, encQ, encT []uint8, mode config.Mode, dist int, ends []int) []int {
	starts := make([]int, len(ends))
	if mode != config.Infix {
		return starts
	}

	m, n := len(encQ), len(encT)
	nblocks := myers.NumBlocks(m)
	w := nblocks*myers.WordSize - m
	rpeq := myers.BuildPeq(a, reverse(encQ))
	rt := reverse(encT)

	for i, e := range ends {
		if e == 0 {
			continue
		}
		best, rends := myers.SemiGlobal(rpeq, w, nblocks, m, rt[n-e:], dist, config.Prefix)
		if best != dist || len(rends) == 0 {
			panic("never reached")
		}
		starts[i] = e - rends[len(rends)-1]
	}
	return starts
}

// alignEmpty resolves the degenerate inputs directly: against an empty sequence the distance
// and alignment are fully determined by the regime.
func alignEmpty(res *Result, cfg config.Config, m, n int) {
	dist, end := m, 0
	if cfg.Mode == config.Global {
		dist, end = max(m, n), n
	}
	if cfg.K >= 0 && dist > cfg.K {
		return
	}
	res.Distance = dist
	res.EndLocations = []int{end}
	if cfg.Task >= config.Locations {
		res.StartLocations = []int{0}
	}
	if cfg.Task == config.Path {
		if cfg.Mode == config.Global && m == 0 {
			res.Alignment = repeatOp(Insert, n)
		} else {
			res.Alignment = repeatOp(Delete, m)
		}
	}
}

func repeatOp(op Op, count int) []Op {
	if count == 0 {
		return nil
	}
	ops := make([]Op, count)
	for i := range ops {
		ops[i] = op
	}
	return ops
}

func toOps(bs []byte) []Op {
	ops := make([]Op, len(bs))
	for i, b := range bs {
		ops[i] = Op(b)
	}
	return ops
}

func reverse(s []uint8) []uint8 {
	r := make([]uint8, len(s))
	for i, c := range s {
		r[len(s)-1-i] = c
	}
	return r
}
