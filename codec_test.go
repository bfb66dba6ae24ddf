// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	cases := []*Bitmap{
		New(),
		rangeBitmap(0, 100),
		rangeBitmap(0, 10_000),  // past arrayLimit, but contiguous: stored as one Run
		rangeBitmap(0, 65_536),  // forces a Run container after optimize
		FromValues([]uint32{1, 1 << 16, 1 << 17, 1 << 31}),
	}

	for i, b := range cases {
		data := b.Serialize()
		got, err := Deserialize(data)
		assert.NoError(t, err, "case %d", i)
		assert.True(t, b.Equals(got), "case %d", i)
	}
}

func TestSerializedSizeMatchesActualOutput(t *testing.T) {
	b := rangeBitmap(0, 65_536)
	assert.Equal(t, b.SerializedSize(), len(b.Serialize()))
}

func TestDeserializeEmptyBitmap(t *testing.T) {
	data := []byte{0x30, 0x3B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	b, err := Deserialize(data)
	assert.NoError(t, err)
	assert.True(t, b.IsEmpty())

	reserialized := b.Serialize()
	back, err := Deserialize(reserialized)
	assert.NoError(t, err)
	assert.True(t, b.Equals(back))
}

func TestDeserializeRejectsBadCookie(t *testing.T) {
	_, err := Deserialize([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	assert.ErrorIs(t, err, ErrDeserialize)
}

func TestDeserializeRejectsTruncatedInput(t *testing.T) {
	full := rangeBitmap(0, 10_000).Serialize()
	_, err := Deserialize(full[:len(full)-10])
	assert.Error(t, err)
}

func TestDeserializeRejectsNonAscendingKeys(t *testing.T) {
	b := FromValues([]uint32{1, 1 << 20})
	data := b.Serialize()
	assert.False(t, b.hasRunContainer())

	// corrupt the second container's key header (offset 12) to equal the
	// first's key (0), breaking strict ascending order.
	data[12], data[13] = 0, 0

	_, err := Deserialize(data)
	assert.Error(t, err)
}

func TestDeserializeRejectsForgedContainerCount(t *testing.T) {
	// Valid no-run cookie, but container_count claims ~4 billion
	// containers while the input is only 8 bytes long. Must be reported
	// as ErrDeserialize, not attempted as a multi-gigabyte allocation.
	data := []byte{0x30, 0x3B, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	_, err := Deserialize(data)
	assert.ErrorIs(t, err, ErrDeserialize)

	_, err = DeserializeUnchecked(data)
	assert.ErrorIs(t, err, ErrDeserialize)
}

func TestDeserializeRejectsForgedRunContainerCount(t *testing.T) {
	// Run-aware cookie form packs container_count-1 into the low 16 bits
	// of the little-endian word 0x3B30_FFFF, claiming 65536 containers
	// from 4 input bytes plus nothing else.
	data := []byte{0xFF, 0xFF, 0x30, 0x3B}
	_, err := Deserialize(data)
	assert.ErrorIs(t, err, ErrDeserialize)
}

func TestDeserializeUncheckedRoundTrip(t *testing.T) {
	b := rangeBitmap(0, 10)
	data := b.Serialize()
	got, err := DeserializeUnchecked(data)
	assert.NoError(t, err)
	assert.True(t, b.Equals(got))
}

func TestSerializeRunContainerScenario(t *testing.T) {
	b := rangeBitmap(0, 65_536)
	b.Optimize()
	assert.Equal(t, 1, b.Stats().RunContainers)

	data := b.Serialize()
	assert.Equal(t, len(data), b.SerializedSize())

	got, err := Deserialize(data)
	assert.NoError(t, err)
	assert.True(t, b.Equals(got))
}
