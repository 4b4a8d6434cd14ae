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

import "github.com/seqwise/align/internal/alphabet"

// Word is the machine word the delta vectors are packed into.
type Word = uint64

// WordSize is the number of query rows processed per word.
const WordSize = 64

const (
	wordOne = Word(1)
	highBit = wordOne << (WordSize - 1)
)

// Edit operations in serialized order. The values are part of the result encoding and must not
// be reordered.
const (
	OpMatch    byte = iota // query and target symbols match
	OpInsert               // extra symbol in target, consumes target only
	OpDelete               // extra symbol in query, consumes query only
	OpMismatch             // query and target symbols differ
)

// outOfBand is the score reported for cells the band never covered. Large enough to never win a
// comparison, small enough to not overflow when incremented.
const outOfBand = int(^uint(0)>>1) / 2

// block is one word-sized slice of a column: the vertical +1 deltas, the vertical -1 deltas and
// the score of the block's last row.
type block struct {
	p, m  Word
	score int
}

// NumBlocks returns the number of words needed for a query of length m.
func NumBlocks(m int) int {
	return (m + WordSize - 1) / WordSize
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// BuildPeq builds the match-mask table for the encoded query: peq[s*nblocks+b] has bit r set
// when query position b*WordSize+r matches symbol s under the alphabet's equality relation.
// Rows past the query end match everything, as does the extra wildcard symbol row at index
// a.Size() used for padding.
func BuildPeq(a *alphabet.Alphabet, query []uint8) []Word {
	nblocks := NumBlocks(len(query))
	peq := make([]Word, (a.Size()+1)*nblocks)
	for s := 0; s <= a.Size(); s++ {
		for b := 0; b < nblocks; b++ {
			if s == a.Size() {
				peq[s*nblocks+b] = ^Word(0)
				continue
			}
			var v Word
			for r := (b+1)*WordSize - 1; r >= b*WordSize; r-- {
				v <<= 1
				if r >= len(query) || a.Equal(query[r], uint8(s)) {
					v |= 1
				}
			}
			peq[s*nblocks+b] = v
		}
	}
	return peq
}

// calculateBlock advances one block by one target column. hin and hout are the horizontal
// deltas (-1, 0 or +1) entering the block's first row and leaving its last row.
func calculateBlock(pv, mv, eq Word, hin int) (pvOut, mvOut Word, hout int) {
	hinNeg := Word(hin>>2) & wordOne // 1 when hin is -1, 0 otherwise
	xv := eq | mv
	eq |= hinNeg
	xh := (((eq & pv) + pv) ^ pv) | eq
	ph := mv | ^(xh | pv)
	mh := pv & xh
	hout = int((ph & highBit) >> (WordSize - 1))
	hout -= int((mh & highBit) >> (WordSize - 1))
	ph <<= 1
	mh <<= 1
	mh |= hinNeg
	ph |= Word((hin + 1) >> 1)
	pvOut = mh | ^(xv | ph)
	mvOut = ph & xv
	return pvOut, mvOut, hout
}

// blockCells unpacks the scores of all rows of bl in its current column, last row first:
// cells[i] is the score of row lastRow-i.
func blockCells(bl *block) [WordSize]int {
	var cells [WordSize]int
	score := bl.score
	mask := highBit
	for i := 0; i < WordSize-1; i++ {
		cells[i] = score
		if bl.p&mask != 0 {
			score--
		}
		if bl.m&mask != 0 {
			score++
		}
		mask >>= 1
	}
	cells[WordSize-1] = score
	return cells
}

func reverseSeq(s []uint8) []uint8 {
	r := make([]uint8, len(s))
	for i, c := range s {
		r[len(s)-1-i] = c
	}
	return r
}
