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

// Package myers implements Myers' bit-vector algorithm for approximate string matching.
//
// # The bit-vector recurrence
//
// The classic dynamic program for edit distance fills a (m+1) x (n+1) matrix D where D[i][j] is
// the distance between the first i symbols of the query and the first j symbols of the target:
//
//	D[i][j] = min(D[i-1][j-1] + (query[i-1] == target[j-1] ? 0 : 1),
//	              D[i-1][j] + 1,
//	              D[i][j-1] + 1)
//
// Myers' observation is that adjacent cells differ by at most one, both vertically and
// horizontally. A column of the matrix can therefore be represented by the score of one anchor
// cell plus two delta bit-vectors: P with bit i set when D[i][j] - D[i-1][j] = +1 and M with bit
// i set when that delta is -1. One column update then reduces to a short, fixed sequence of
// bitwise operations plus a single addition that propagates matches through a carry chain,
// processing W = 64 query positions per machine word. The query is split into ceil(m/W) blocks,
// each holding its own P, M and the running score of its last row; blocks are updated top to
// bottom with a +1/0/-1 horizontal carry between them.
//
// Query positions past the end of the last block are padding. Padding rows match every target
// symbol, which forces a diagonal step per row, so the score observed at the padded bottom row
// of column c is the score of the real bottom row at column c-w (w = number of padding rows).
// The searches below compensate for this shift when reading scores out of the last block.
//
// # Banding
//
// For a distance bound k only cells whose value plus a lower bound of the remaining cost can
// stay within k need to be computed (Ukkonen's band). The band is maintained per column at block
// granularity: the last block grows downward while the block below may still contain cells
// within the bound and is dropped once every cell in it provably exceeds it; for the global
// regime the first block additionally advances once its rows can no longer reach the bottom
// right corner within the bound. When the band becomes empty the search is conclusive: no
// alignment within k exists past that column.
//
// # References
//
// Myers, G. A fast bit-vector algorithm for approximate string matching based on dynamic
// programming. Journal of the ACM 46, 395-415 (1999). https://doi.org/10.1145/316542.316550
//
// Ukkonen, E. Algorithms for approximate string matching. Information and Control 64, 100-118
// (1985). https://doi.org/10.1016/S0019-9958(85)80046-2
package myers
