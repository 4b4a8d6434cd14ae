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

import "github.com/seqwise/align/internal/config"

// SemiGlobal searches for the query in the target with a free target suffix (config.Prefix) or
// free target prefix and suffix (config.Infix) and returns the best score within k together with
// the end positions of all optimal occurrences. End positions are exclusive: an occurrence
// ending at position e spans target[...:e]. Returns best = -1 when no occurrence scores within
// k.
//
// Scores of the bottom row surface in the padded last block with a shift of w columns, so the
// main loop reports ends only once the scan is w columns past them; the tail after the loop
// reads the remaining w columns out of the final delta vectors.
func SemiGlobal(peq []Word, w, nblocks, m int, target []uint8, k int, mode config.Mode) (best int, ends []int) {
	n := len(target)
	best = -1

	if mode == config.Infix {
		// An occurrence never needs to cost more than deleting the whole query.
		k = min(k, m)
	}
	if k < 0 {
		return -1, nil
	}

	// With a free target prefix the first row of every column is 0, which the recurrence sees as
	// a zero horizontal delta entering row 0.
	startHout := 1
	if mode == config.Infix {
		startHout = 0
	}

	lastBlock := min(ceilDiv(k+1, WordSize), nblocks) - 1
	blocks := make([]block, nblocks)
	for b := 0; b <= lastBlock; b++ {
		blocks[b].score = (b + 1) * WordSize
		blocks[b].p = ^Word(0)
	}

	for c := 0; c < n; c++ {
		peqC := peq[int(target[c])*nblocks:]
		hout := startHout
		for b := 0; b <= lastBlock; b++ {
			blocks[b].p, blocks[b].m, hout = calculateBlock(blocks[b].p, blocks[b].m, peqC[b], hout)
			blocks[b].score += hout
		}

		// Grow the band downward when the next block can hold cells within the bound: either its
		// first row matches this column or the carry into it is negative.
		if lastBlock < nblocks-1 && blocks[lastBlock].score-hout <= k &&
			(peqC[lastBlock+1]&wordOne != 0 || hout < 0) {
			lastBlock++
			nb := &blocks[lastBlock]
			nb.p = ^Word(0)
			nb.m = 0
			var h int
			nb.p, nb.m, h = calculateBlock(^Word(0), 0, peqC[lastBlock], hout)
			nb.score = blocks[lastBlock-1].score - hout + WordSize + h
		} else {
			for lastBlock >= 0 && blocks[lastBlock].score >= k+WordSize {
				lastBlock--
			}
		}
		if lastBlock < 0 {
			// Band is empty: no cell in this or any later column can score within k.
			return best, ends
		}

		if lastBlock == nblocks-1 {
			colScore := blocks[lastBlock].score
			if colScore <= k && (best == -1 || colScore <= best) {
				if colScore != best {
					ends = ends[:0]
					best = colScore
					k = colScore
				}
				ends = append(ends, c-w+1)
			}
		}
	}

	// The last w columns of the bottom row are still packed in the final delta vectors.
	if lastBlock == nblocks-1 {
		cells := blockCells(&blocks[lastBlock])
		for i := 0; i < w; i++ {
			colScore := cells[i+1]
			if colScore <= k && (best == -1 || colScore <= best) {
				if colScore != best {
					ends = ends[:0]
					best = colScore
					k = colScore
				}
				ends = append(ends, n-w+i+1)
			}
		}
	}
	return best, ends
}
