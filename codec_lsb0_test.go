// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLSB0BytesBasic(t *testing.T) {
	// byte 0 = 0b00000101 -> bits 0 and 2 set
	b := FromLSB0Bytes([]byte{0b00000101}, 100)
	assert.True(t, b.Contains(100))
	assert.False(t, b.Contains(101))
	assert.True(t, b.Contains(102))
	assert.Equal(t, uint64(2), b.Len())
}

func TestFromLSB0BytesSpansMultipleBytes(t *testing.T) {
	data := []byte{0xFF, 0x00, 0x01}
	b := FromLSB0Bytes(data, 0)
	assert.Equal(t, uint64(9), b.Len())
	for v := uint32(0); v < 8; v++ {
		assert.True(t, b.Contains(v))
	}
	assert.True(t, b.Contains(16))
}

func TestFromLSB0BytesSaturatesOnOverflow(t *testing.T) {
	b := FromLSB0Bytes([]byte{0xFF}, math.MaxUint32-3)
	assert.True(t, b.Contains(math.MaxUint32))
	assert.Equal(t, uint64(4), b.Len(), "bits that would overflow past uint32 max are dropped")
}
