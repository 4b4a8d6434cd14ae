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

package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	a, q, tgt, err := Encode([]byte("cab"), []byte("bad"), nil)
	require.NoError(t, err)

	// Ids are assigned densely in order of first occurrence, query first.
	assert.Equal(t, 4, a.Size())
	assert.Equal(t, []uint8{0, 1, 2}, q)
	assert.Equal(t, []uint8{2, 1, 3}, tgt)
}

func TestEncodeEmpty(t *testing.T) {
	a, q, tgt, err := Encode(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Size())
	assert.Empty(t, q)
	assert.Empty(t, tgt)
}

func TestEncodeFullByteRange(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	a, _, _, err := Encode(all, all, nil)
	require.NoError(t, err)
	assert.Equal(t, MaxSymbols, a.Size())
}

func TestEqualIdentity(t *testing.T) {
	a, q, _, err := Encode([]byte("ab"), []byte("ab"), nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(q[0], q[0]))
	assert.False(t, a.Equal(q[0], q[1]))
}

func TestEqualPairs(t *testing.T) {
	a, q, tgt, err := Encode([]byte("abc"), []byte("abc"), [][2]byte{{'a', 'b'}, {'b', 'c'}})
	require.NoError(t, err)

	// Symmetric.
	assert.True(t, a.Equal(q[0], tgt[1]))
	assert.True(t, a.Equal(q[1], tgt[0]))
	assert.True(t, a.Equal(q[1], tgt[2]))
	assert.True(t, a.Equal(q[2], tgt[1]))

	// Not transitive: a=b and b=c does not imply a=c.
	assert.False(t, a.Equal(q[0], tgt[2]))
}

func TestEqualAbsentPairIgnored(t *testing.T) {
	a, q, _, err := Encode([]byte("ab"), []byte("ab"), [][2]byte{{'a', 'z'}})
	require.NoError(t, err)
	assert.Equal(t, 2, a.Size())
	assert.False(t, a.Equal(q[0], q[1]))
}
