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

// Alncheck cross-checks the bit-parallel engine against a naive dynamic program on random
// inputs. It is a development tool for soak testing beyond what the unit tests cover:
//
//	go run ./internal/cmd/alncheck -n 100000 -maxlen 300 -sigma 4
//
// Any disagreement prints the offending input pair and exits non-zero, ready to be pasted into
// a regression test.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/seqwise/align"
)

var (
	iterations = flag.Int("n", 10000, "number of random input pairs to check")
	maxLen     = flag.Int("maxlen", 200, "maximum sequence length")
	sigma      = flag.Int("sigma", 4, "alphabet size of random sequences")
	seed       = flag.Uint64("seed", 1, "random seed")
)

func main() {
	flag.Parse()

	rng := rand.New(rand.NewPCG(*seed, 0))
	for i := 0; i < *iterations; i++ {
		q := randSeq(rng, rng.IntN(*maxLen+1), *sigma)
		t := randSeq(rng, rng.IntN(*maxLen+1), *sigma)
		if err := check(q, t); err != nil {
			fmt.Fprintf(os.Stderr, "alncheck: #%d: %v\nquery:  %q\ntarget: %q\n", i, err, q, t)
			os.Exit(1)
		}
		if i > 0 && i%10000 == 0 {
			fmt.Printf("%d pairs checked\n", i)
		}
	}
	fmt.Printf("OK, %d pairs checked\n", *iterations)
}

func randSeq(rng *rand.Rand, n, sigma int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = byte('a' + rng.IntN(sigma))
	}
	return s
}

func check(q, t []byte) error {
	lastRow := dpLastRow(q, t, false)
	freeRow := dpLastRow(q, t, true)

	global, err := align.Align(q, t, align.Path())
	if err != nil {
		return err
	}
	if want := lastRow[len(t)]; global.Distance != want {
		return fmt.Errorf("global distance %d, want %d", global.Distance, want)
	}
	if cost := replayCost(q, t, global.Alignment); cost != global.Distance {
		return fmt.Errorf("global alignment costs %d, distance is %d", cost, global.Distance)
	}

	prefix, err := align.Align(q, t, align.Prefix())
	if err != nil {
		return err
	}
	if want := minOf(lastRow); prefix.Distance != want {
		return fmt.Errorf("prefix distance %d, want %d", prefix.Distance, want)
	}

	infix, err := align.Align(q, t, align.Infix(), align.Locations())
	if err != nil {
		return err
	}
	if want := minOf(freeRow); infix.Distance != want {
		return fmt.Errorf("infix distance %d, want %d", infix.Distance, want)
	}
	for i, e := range infix.EndLocations {
		if freeRow[e] != infix.Distance {
			return fmt.Errorf("end location %d scores %d, want %d", e, freeRow[e], infix.Distance)
		}
		if s := infix.StartLocations[i]; s < 0 || s > e {
			return fmt.Errorf("start location %d out of range for end %d", s, e)
		}
	}
	return nil
}

// dpLastRow is the naive quadratic reference: the last row of the edit distance matrix, with a
// free target prefix when freeBegin is set.
func dpLastRow(q, t []byte, freeBegin bool) []int {
	prev := make([]int, len(t)+1)
	cur := make([]int, len(t)+1)
	for j := range prev {
		if !freeBegin {
			prev[j] = j
		}
	}
	for i := 1; i <= len(q); i++ {
		cur[0] = i
		for j := 1; j <= len(t); j++ {
			sub := prev[j-1]
			if q[i-1] != t[j-1] {
				sub++
			}
			cur[j] = min(sub, prev[j]+1, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}
	return prev
}

func minOf(row []int) int {
	m := row[0]
	for _, v := range row {
		m = min(m, v)
	}
	return m
}

func replayCost(q, t []byte, ops []align.Op) int {
	r, c, cost := 0, 0, 0
	for _, op := range ops {
		switch op {
		case align.Match:
			r, c = r+1, c+1
		case align.Mismatch:
			r, c, cost = r+1, c+1, cost+1
		case align.Delete:
			r, cost = r+1, cost+1
		case align.Insert:
			c, cost = c+1, cost+1
		}
	}
	if r != len(q) || c != len(t) {
		return -1
	}
	return cost
}
