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
	"errors"
	"strconv"
	"strings"
)

// CigarFormat selects how matches and mismatches are rendered in a CIGAR string.
type CigarFormat int

const (
	// CigarStandard renders both matches and mismatches as 'M'.
	CigarStandard CigarFormat = iota

	// CigarExtended renders matches as '=' and mismatches as 'X'.
	CigarExtended
)

var (
	// ErrInvalidFormat is returned by [Cigar] for an out-of-range format value.
	ErrInvalidFormat = errors.New("align: invalid cigar format")

	// ErrInvalidCigar is returned for operation sequences or CIGAR strings that do not encode a
	// valid alignment.
	ErrInvalidCigar = errors.New("align: invalid cigar")
)

// Cigar serializes an edit-operation sequence as a CIGAR string: runs of equal operations are
// encoded as count plus operation character. An empty alignment serializes to the empty string.
func Cigar(ops []Op, format CigarFormat) (string, error) {
	if format != CigarStandard && format != CigarExtended {
		return "", ErrInvalidFormat
	}

	var sb strings.Builder
	for i := 0; i < len(ops); {
		j := i
		for j < len(ops) && cigarChar(ops[j], format) == cigarChar(ops[i], format) {
			j++
		}
		c := cigarChar(ops[i], format)
		if c == 0 {
			return "", ErrInvalidCigar
		}
		sb.WriteString(strconv.Itoa(j - i))
		sb.WriteByte(c)
		i = j
	}
	return sb.String(), nil
}

func cigarChar(op Op, format CigarFormat) byte {
	switch op {
	case Match:
		if format == CigarStandard {
			return 'M'
		}
		return '='
	case Mismatch:
		if format == CigarStandard {
			return 'M'
		}
		return 'X'
	case Insert:
		return 'I'
	case Delete:
		return 'D'
	default:
		return 0
	}
}

// ParseCigar decodes a CIGAR string back into an edit-operation sequence. Both formats are
// accepted; 'M' decodes as [Match] since the standard format does not distinguish matches from
// mismatches.
func ParseCigar(s string) ([]Op, error) {
	var ops []Op
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i || j == len(s) {
			return nil, ErrInvalidCigar
		}
		count, err := strconv.Atoi(s[i:j])
		if err != nil || count <= 0 {
			return nil, ErrInvalidCigar
		}

		var op Op
		switch s[j] {
		case 'M', '=':
			op = Match
		case 'X':
			op = Mismatch
		case 'I':
			op = Insert
		case 'D':
			op = Delete
		default:
			return nil, ErrInvalidCigar
		}
		for range count {
			ops = append(ops, op)
		}
		i = j + 1
	}
	return ops, nil
}
