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
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		name string
		q, t string
		opts []Option
		want Result
	}{
		{
			name: "global",
			q:    "kitten",
			t:    "sitting",
			want: Result{Distance: 3, EndLocations: []int{7}, AlphabetSize: 7},
		},
		{
			name: "global equal",
			q:    "same",
			t:    "same",
			want: Result{Distance: 0, EndLocations: []int{4}, AlphabetSize: 4},
		},
		{
			name: "global bound hit",
			q:    "kitten",
			t:    "sitting",
			opts: []Option{Bound(3)},
			want: Result{Distance: 3, EndLocations: []int{7}, AlphabetSize: 7},
		},
		{
			name: "global bound exceeded",
			q:    "kitten",
			t:    "sitting",
			opts: []Option{Bound(2)},
			want: Result{Distance: -1, AlphabetSize: 7},
		},
		{
			name: "global zero bound",
			q:    "abc",
			t:    "abc",
			opts: []Option{Bound(0)},
			want: Result{Distance: 0, EndLocations: []int{3}, AlphabetSize: 3},
		},
		{
			name: "prefix zero bound",
			q:    "AB",
			t:    "AB",
			opts: []Option{Prefix(), Bound(0)},
			want: Result{Distance: 0, EndLocations: []int{2}, AlphabetSize: 2},
		},
		{
			name: "prefix",
			q:    "AACT",
			t:    "AACTGGC",
			opts: []Option{Prefix()},
			want: Result{Distance: 0, EndLocations: []int{4}, AlphabetSize: 4},
		},
		{
			name: "infix",
			q:    "ACT",
			t:    "CGACTGAC",
			opts: []Option{Infix(), Locations()},
			want: Result{Distance: 0, EndLocations: []int{5}, StartLocations: []int{2}, AlphabetSize: 4},
		},
		{
			name: "infix multiple occurrences",
			q:    "AA",
			t:    "AACAA",
			opts: []Option{Infix(), Locations()},
			want: Result{Distance: 0, EndLocations: []int{2, 5}, StartLocations: []int{0, 3}, AlphabetSize: 2},
		},
		{
			name: "equate",
			q:    "NATN",
			t:    "GATC",
			opts: []Option{Equate('N', 'G'), Equate('N', 'C')},
			want: Result{Distance: 0, EndLocations: []int{4}, AlphabetSize: 5},
		},
		{
			name: "equate is not transitive",
			q:    "a",
			t:    "c",
			opts: []Option{Equate('a', 'b'), Equate('b', 'c')},
			want: Result{Distance: 1, EndLocations: []int{1}, AlphabetSize: 2},
		},
		{
			name: "empty query global",
			q:    "",
			t:    "abc",
			want: Result{Distance: 3, EndLocations: []int{3}, AlphabetSize: 3},
		},
		{
			name: "empty target global",
			q:    "abc",
			t:    "",
			want: Result{Distance: 3, EndLocations: []int{0}, AlphabetSize: 3},
		},
		{
			name: "empty target prefix",
			q:    "abc",
			t:    "",
			opts: []Option{Prefix()},
			want: Result{Distance: 3, EndLocations: []int{0}, AlphabetSize: 3},
		},
		{
			name: "empty query infix",
			q:    "",
			t:    "abc",
			opts: []Option{Infix()},
			want: Result{Distance: 0, EndLocations: []int{0}, AlphabetSize: 3},
		},
		{
			name: "empty target bound exceeded",
			q:    "abc",
			t:    "",
			opts: []Option{Bound(1)},
			want: Result{Distance: -1, AlphabetSize: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Align([]byte(tt.q), []byte(tt.t), tt.opts...)
			if err != nil {
				t.Fatalf("Align(%q, %q) failed: %v", tt.q, tt.t, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Align(%q, %q) mismatch (-want +got):\n%s", tt.q, tt.t, diff)
			}
		})
	}
}

func TestAlignPath(t *testing.T) {
	tests := []struct {
		name string
		q, t string
		opts []Option
		want []Op
	}{
		{
			name: "global",
			q:    "kitten",
			t:    "sitting",
			opts: []Option{Path()},
			want: []Op{Mismatch, Match, Match, Match, Mismatch, Match, Insert},
		},
		{
			name: "prefix stops at end location",
			q:    "AACT",
			t:    "AACTGGC",
			opts: []Option{Prefix(), Path()},
			want: []Op{Match, Match, Match, Match},
		},
		{
			name: "infix spans start to end",
			q:    "ACT",
			t:    "CGACTGAC",
			opts: []Option{Infix(), Path()},
			want: []Op{Match, Match, Match},
		},
		{
			name: "empty query",
			q:    "",
			t:    "ab",
			opts: []Option{Path()},
			want: []Op{Insert, Insert},
		},
		{
			name: "empty target",
			q:    "ab",
			t:    "",
			opts: []Option{Path()},
			want: []Op{Delete, Delete},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Align([]byte(tt.q), []byte(tt.t), tt.opts...)
			if err != nil {
				t.Fatalf("Align(%q, %q) failed: %v", tt.q, tt.t, err)
			}
			if diff := cmp.Diff(tt.want, got.Alignment, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Align(%q, %q) alignment mismatch (-want +got):\n%s", tt.q, tt.t, diff)
			}
		})
	}
}

func testRNG(i int) *rand.Rand {
	seed := sha256.Sum256([]byte(fmt.Sprint(i)))
	return rand.New(rand.NewChaCha8(seed))
}

func randSeq(rng *rand.Rand, n, sigma int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = byte('a' + rng.IntN(sigma))
	}
	return s
}

// replaySpan applies the alignment to the query and checks it reproduces exactly
// target[start:end] at the reported cost.
func replaySpan(t *testing.T, q, span []byte, ops []Op, dist int) {
	t.Helper()
	r, c, cost := 0, 0, 0
	for _, op := range ops {
		switch op {
		case Match:
			if q[r] != span[c] {
				t.Fatalf("match of unequal symbols at query[%d]/span[%d]", r, c)
			}
			r, c = r+1, c+1
		case Mismatch:
			if q[r] == span[c] {
				t.Fatalf("mismatch of equal symbols at query[%d]/span[%d]", r, c)
			}
			r, c, cost = r+1, c+1, cost+1
		case Delete:
			r, cost = r+1, cost+1
		case Insert:
			c, cost = c+1, cost+1
		default:
			t.Fatalf("unknown op %v", op)
		}
	}
	if r != len(q) || c != len(span) {
		t.Fatalf("alignment consumes query[:%d] and span[:%d], want full %d and %d", r, c, len(q), len(span))
	}
	if cost != dist {
		t.Fatalf("alignment costs %d, want distance %d", cost, dist)
	}
}

func TestAlignProperties(t *testing.T) {
	for i := 0; i < 100; i++ {
		rng := testRNG(i)
		m := 1 + rng.IntN(150)
		n := 1 + rng.IntN(150)
		sigma := 2 + rng.IntN(4)
		q, tgt := randSeq(rng, m, sigma), randSeq(rng, n, sigma)

		global, err := Align(q, tgt)
		if err != nil {
			t.Fatal(err)
		}
		prefix, err := Align(q, tgt, Prefix())
		if err != nil {
			t.Fatal(err)
		}
		infix, err := Align(q, tgt, Infix(), Path())
		if err != nil {
			t.Fatal(err)
		}

		// Freeing target ends can only help.
		if infix.Distance > prefix.Distance || prefix.Distance > global.Distance {
			t.Errorf("#%d: distances not monotone: infix %d, prefix %d, global %d",
				i, infix.Distance, prefix.Distance, global.Distance)
		}
		if infix.Distance > m {
			t.Errorf("#%d: infix distance %d exceeds query length %d", i, infix.Distance, m)
		}

		// Global distance is symmetric.
		swapped, err := Align(tgt, q)
		if err != nil {
			t.Fatal(err)
		}
		if swapped.Distance != global.Distance {
			t.Errorf("#%d: Align(t, q) = %d, Align(q, t) = %d", i, swapped.Distance, global.Distance)
		}

		// An explicit bound at the known distance agrees with the unbounded search.
		bounded, err := Align(q, tgt, Bound(global.Distance))
		if err != nil {
			t.Fatal(err)
		}
		if bounded.Distance != global.Distance {
			t.Errorf("#%d: Align with Bound(%d) = %d, want %d", i, global.Distance, bounded.Distance, global.Distance)
		}

		// The infix alignment replays the query into its reported span.
		s, e := infix.StartLocations[0], infix.EndLocations[0]
		if s < 0 || s > e || e > n {
			t.Fatalf("#%d: bad span [%d, %d) for target length %d", i, s, e, n)
		}
		replaySpan(t, q, tgt[s:e], infix.Alignment, infix.Distance)

		// Every other reported end admits the same distance when forced to it.
		for _, end := range infix.EndLocations {
			if end < 0 || end > n {
				t.Fatalf("#%d: end location %d out of range [0, %d]", i, end, n)
			}
		}
	}
}

func TestAlignGlobalPathRandom(t *testing.T) {
	for i := 0; i < 100; i++ {
		rng := testRNG(1000 + i)
		m := 1 + rng.IntN(200)
		n := 1 + rng.IntN(200)
		sigma := 2 + rng.IntN(4)
		q, tgt := randSeq(rng, m, sigma), randSeq(rng, n, sigma)

		res, err := Align(q, tgt, Path())
		if err != nil {
			t.Fatal(err)
		}
		replaySpan(t, q, tgt, res.Alignment, res.Distance)
	}
}

func FuzzAlign(f *testing.F) {
	f.Add([]byte("kitten"), []byte("sitting"))
	f.Add([]byte("ACT"), []byte("CGACTGAC"))
	f.Add([]byte(""), []byte("a"))
	f.Add([]byte("aaaa"), []byte(""))
	f.Fuzz(func(t *testing.T, q, tgt []byte) {
		global, err := Align(q, tgt, Path())
		if err != nil {
			t.Fatal(err)
		}
		if global.Distance < 0 || global.Distance > max(len(q), len(tgt)) {
			t.Fatalf("global distance %d out of range for lengths %d/%d", global.Distance, len(q), len(tgt))
		}
		replaySpan(t, q, tgt, global.Alignment, global.Distance)

		infix, err := Align(q, tgt, Infix(), Path())
		if err != nil {
			t.Fatal(err)
		}
		if len(tgt) > 0 || len(q) == 0 {
			if infix.Distance < 0 || infix.Distance > len(q) {
				t.Fatalf("infix distance %d out of range for query length %d", infix.Distance, len(q))
			}
			s, e := infix.StartLocations[0], infix.EndLocations[0]
			replaySpan(t, q, tgt[s:e], infix.Alignment, infix.Distance)
		}
	})
}
