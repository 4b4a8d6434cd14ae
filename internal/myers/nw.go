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

// AlignmentData stores the banded delta vectors of computed columns so scores can be read back
// during traceback. Only blocks inside the band of a column are valid.
type AlignmentData struct {
	nblocks     int
	ps, ms      []Word
	scores      []int
	firstBlocks []int
	lastBlocks  []int
}

func newAlignmentData(nblocks, ncols int) *AlignmentData {
	return &AlignmentData{
		nblocks:     nblocks,
		ps:          make([]Word, nblocks*ncols),
		ms:          make([]Word, nblocks*ncols),
		scores:      make([]int, nblocks*ncols),
		firstBlocks: make([]int, ncols),
		lastBlocks:  make([]int, ncols),
	}
}

func (d *AlignmentData) store(col int, blocks []block, first, last int) {
	for b := first; b <= last; b++ {
		i := col*d.nblocks + b
		d.ps[i] = blocks[b].p
		d.ms[i] = blocks[b].m
		d.scores[i] = blocks[b].score
	}
	d.firstBlocks[col] = first
	d.lastBlocks[col] = last
}

// cell returns the score of row r in stored column col, or outOfBand when the band did not
// cover the row.
func (d *AlignmentData) cell(col, r int) int {
	b := r / WordSize
	if b < d.firstBlocks[col] || b > d.lastBlocks[col] {
		return outOfBand
	}
	i := col*d.nblocks + b
	score := d.scores[i]
	for j := (b+1)*WordSize - 1; j > r; j-- {
		bit := wordOne << uint(j-b*WordSize)
		if d.ps[i]&bit != 0 {
			score--
		} else if d.ms[i]&bit != 0 {
			score++
		}
	}
	return score
}

// columnScores unpacks the scores of stored column col into out, one entry per real query row.
// Rows outside the band are set to outOfBand.
func (d *AlignmentData) columnScores(col int, out []int) {
	for i := range out {
		out[i] = outOfBand
	}
	for b := d.firstBlocks[col]; b <= d.lastBlocks[col]; b++ {
		i := col*d.nblocks + b
		score := d.scores[i]
		for j := WordSize - 1; j >= 0; j-- {
			if r := b*WordSize + j; r < len(out) {
				out[r] = score
			}
			bit := wordOne << uint(j)
			if d.ps[i]&bit != 0 {
				score--
			} else if d.ms[i]&bit != 0 {
				score++
			}
		}
	}
}

// Global computes the edit distance between the query behind peq and the whole target, bounded
// by k. Returns -1 when the distance exceeds k.
//
// With findAlignment set every computed column is recorded in the returned AlignmentData for
// traceback. With stopColumn >= 0 the search instead stops after computing that column and
// records only it (at index 0); the returned distance is -1 in that case. The band is always
// pruned against the full target length, so a stopped search keeps every cell an optimal full
// alignment can pass through.
func Global(peq []Word, w, nblocks, m int, target []uint8, k int, findAlignment bool, stopColumn int) (int, *AlignmentData) {
	n := len(target)
	if k < 0 || k < n-m || k < m-n {
		return -1, nil
	}
	k = min(k, max(m, n))

	firstBlock := 0
	lastBlock := min(ceilDiv(min(k, (k+m-n)/2)+1, WordSize), nblocks) - 1
	blocks := make([]block, nblocks)
	for b := 0; b <= lastBlock; b++ {
		blocks[b].score = (b + 1) * WordSize
		blocks[b].p = ^Word(0)
	}

	var data *AlignmentData
	switch {
	case findAlignment:
		data = newAlignmentData(nblocks, n)
	case stopColumn >= 0:
		data = newAlignmentData(nblocks, 1)
	}

	for c := 0; c < n; c++ {
		peqC := peq[int(target[c])*nblocks:]
		hout := 1
		for b := firstBlock; b <= lastBlock; b++ {
			blocks[b].p, blocks[b].m, hout = calculateBlock(blocks[b].p, blocks[b].m, peqC[b], hout)
			blocks[b].score += hout
		}

		// Tighten the bound: any alignment passes through the last computed row of this column,
		// and the cheapest way onward from there is all diagonals plus the unavoidable rest.
		// When the band touches the padded bottom block its score belongs to column c-w.
		pad := 0
		if lastBlock == nblocks-1 {
			pad = w
		}
		k = min(k, blocks[lastBlock].score+max(n-c-1, m-(lastBlock+1)*WordSize)+pad)

		// Grow the band downward while the next block may still hold cells on a path within k.
		if lastBlock+1 < nblocks &&
			(lastBlock+1)*WordSize-1 <= k-blocks[lastBlock].score+2*WordSize-2-n+c+m {
			lastBlock++
			nb := &blocks[lastBlock]
			var h int
			nb.p, nb.m, h = calculateBlock(^Word(0), 0, peqC[lastBlock], hout)
			nb.score = blocks[lastBlock-1].score - hout + WordSize + h
		}

		// Drop trailing blocks that are provably off every path within k.
		for lastBlock >= firstBlock &&
			(blocks[lastBlock].score >= k+WordSize ||
				(lastBlock+1)*WordSize-1 > k-blocks[lastBlock].score+2*WordSize-2-n+c+m+w) {
			lastBlock--
		}

		// Advance the first block past rows that can no longer reach the bottom right corner.
		for firstBlock <= lastBlock &&
			(blocks[firstBlock].score >= k+WordSize ||
				(firstBlock+1)*WordSize-1 < blocks[firstBlock].score-k-n+m+c) {
			firstBlock++
		}

		if lastBlock < firstBlock {
			// Band is empty, no alignment within k exists.
			return -1, data
		}

		if findAlignment {
			data.store(c, blocks, firstBlock, lastBlock)
		}
		if c == stopColumn {
			data.store(0, blocks, firstBlock, lastBlock)
			return -1, data
		}
	}

	if lastBlock == nblocks-1 {
		if best := blockCells(&blocks[lastBlock])[w]; best <= k {
			return best, data
		}
	}
	return -1, data
}
