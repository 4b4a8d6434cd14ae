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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCigar(t *testing.T) {
	ops := []Op{Mismatch, Match, Match, Match, Mismatch, Match, Insert}

	std, err := Cigar(ops, CigarStandard)
	require.NoError(t, err)
	assert.Equal(t, "6M1I", std)

	ext, err := Cigar(ops, CigarExtended)
	require.NoError(t, err)
	assert.Equal(t, "1X3=1X1=1I", ext)
}

func TestCigarEmpty(t *testing.T) {
	for _, format := range []CigarFormat{CigarStandard, CigarExtended} {
		s, err := Cigar(nil, format)
		require.NoError(t, err)
		assert.Empty(t, s)
	}
}

func TestCigarErrors(t *testing.T) {
	_, err := Cigar([]Op{Match}, CigarFormat(42))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Cigar([]Op{Match, Op(7)}, CigarStandard)
	assert.ErrorIs(t, err, ErrInvalidCigar)
}

func TestParseCigar(t *testing.T) {
	tests := []struct {
		in   string
		want []Op
	}{
		{"", nil},
		{"3M", []Op{Match, Match, Match}},
		{"1X2=1D1I", []Op{Mismatch, Match, Match, Delete, Insert}},
		{"2M1I", []Op{Match, Match, Insert}},
		{"10D", []Op{Delete, Delete, Delete, Delete, Delete, Delete, Delete, Delete, Delete, Delete}},
	}
	for _, tt := range tests {
		got, err := ParseCigar(tt.in)
		require.NoError(t, err, "ParseCigar(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseCigar(%q)", tt.in)
	}
}

func TestParseCigarErrors(t *testing.T) {
	for _, in := range []string{"M", "3", "3Z", "0M", "-1M", "3M2", "M3"} {
		_, err := ParseCigar(in)
		assert.ErrorIs(t, err, ErrInvalidCigar, "ParseCigar(%q)", in)
	}
}

func TestCigarRoundTrip(t *testing.T) {
	res, err := Align([]byte("kitten"), []byte("sitting"), Path())
	require.NoError(t, err)

	ext, err := Cigar(res.Alignment, CigarExtended)
	require.NoError(t, err)
	back, err := ParseCigar(ext)
	require.NoError(t, err)
	assert.Equal(t, res.Alignment, back)
}
