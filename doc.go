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

// Package align computes edit distances and alignments between byte sequences.
//
// The core entry point is [Align], which compares a query against a target under unit-cost
// Levenshtein distance (substitutions, insertions and deletions all cost one) and reports the
// distance, where optimal alignments end and start, and optionally the full sequence of edit
// operations:
//
//	res, err := align.Align(query, target, align.Infix(), align.Path())
//
// Three regimes control which unmatched ends of the target are free: [Global] aligns the whole
// query against the whole target, [Prefix] lets an unmatched target suffix go unpenalized, and
// [Infix] additionally forgives an unmatched target prefix, which turns the call into an
// approximate search for the query inside the target.
//
// By default only the distance and end locations are computed. [Locations] adds start
// locations and [Path] adds the operation sequence; each step costs more time and memory than
// the previous one, so ask only for what you need. [Bound] caps the distance when only nearby
// matches are of interest, and [Equate] extends symbol equality beyond identity, for example to
// make 'N' match every nucleotide.
//
// The implementation is Myers' bit-parallel algorithm with Ukkonen banding and runs in
// O(m/64 * n) time for bounded or small distances. See package internal/myers for details.
package align
