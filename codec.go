// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"encoding/binary"
	"unsafe"

	"github.com/kelindar/bitmap"
	"golang.org/x/sys/cpu"
)

// Wire format constants from the cross-language Roaring specification: the
// two cookie forms, the offset-table threshold, and the fixed Bitmap body
// size in bytes (bitmapSize uint16 words == 8192 bytes).
const (
	cookieNoRun       uint32 = 0x00003B30
	cookieRunBase     uint32 = 0x3B300000
	noOffsetThreshold        = 4
	bitmapBodyBytes          = bitmapSize * 2
)

// Serialize encodes b into the portable wire format, after first calling
// Optimize so the output always reflects the minimal representation.
func (b *Bitmap) Serialize() []byte {
	b.Optimize()
	out := make([]byte, 0, b.SerializedSize())
	return b.appendSerialized(out)
}

// SerializedSize returns the byte length of the wire format for b's
// current container representations, without materializing the output.
// It does not call Optimize, while Serialize does, so the two agree only
// once b has been optimized (Serialize itself leaves b optimized).
func (b *Bitmap) SerializedSize() int {
	return headerBytes(b) + bodyBytes(b)
}

func (b *Bitmap) hasRunContainer() bool {
	for i := range b.containers {
		if b.containers[i].Type == typeRun {
			return true
		}
	}
	return false
}

func headerBytes(b *Bitmap) int {
	n := len(b.containers)
	hasRun := b.hasRunContainer()
	size := 4
	if !hasRun {
		size += 4
	} else {
		size += (n + 7) / 8
	}
	size += 4 * n // (key, cardinality_minus_one) headers
	if !hasRun || n >= noOffsetThreshold {
		size += 4 * n
	}
	return size
}

func bodyBytes(b *Bitmap) int {
	sum := 0
	for i := range b.containers {
		sum += b.containers[i].bytesEstimate()
	}
	return sum
}

func (b *Bitmap) appendSerialized(out []byte) []byte {
	n := len(b.containers)
	hasRun := b.hasRunContainer()

	var word [4]byte
	if hasRun {
		binary.LittleEndian.PutUint32(word[:], cookieRunBase|uint32(n-1)&0xFFFF)
		out = append(out, word[:]...)
	} else {
		binary.LittleEndian.PutUint32(word[:], cookieNoRun)
		out = append(out, word[:]...)
		binary.LittleEndian.PutUint32(word[:], uint32(n))
		out = append(out, word[:]...)
	}
	if n == 0 {
		return out
	}

	if hasRun {
		desc := make([]byte, (n+7)/8)
		for i := range b.containers {
			if b.containers[i].Type == typeRun {
				desc[i/8] |= 1 << uint(i%8)
			}
		}
		out = append(out, desc...)
	}

	for i := range b.containers {
		var hdr [4]byte
		binary.LittleEndian.PutUint16(hdr[0:2], b.index[i])
		binary.LittleEndian.PutUint16(hdr[2:4], uint16(b.containers[i].Size-1))
		out = append(out, hdr[:]...)
	}

	writeOffsets := !hasRun || n >= noOffsetThreshold
	offsetPos := len(out)
	if writeOffsets {
		out = append(out, make([]byte, 4*n)...)
	}
	bodyStart := len(out)
	for i := range b.containers {
		if writeOffsets {
			binary.LittleEndian.PutUint32(out[offsetPos+4*i:], uint32(len(out)-bodyStart))
		}
		out = appendContainerBody(out, &b.containers[i])
	}
	return out
}

func appendContainerBody(out []byte, c *container) []byte {
	switch c.Type {
	case typeArray:
		for _, v := range c.Data {
			var w [2]byte
			binary.LittleEndian.PutUint16(w[:], v)
			out = append(out, w[:]...)
		}
	case typeBitmap:
		out = appendBitmapWords(out, c.bmp())
	case typeRun:
		runs := c.runCount()
		var hdr [2]byte
		binary.LittleEndian.PutUint16(hdr[:], uint16(runs))
		out = append(out, hdr[:]...)
		for r := 0; r < runs; r++ {
			start, end := c.Data[2*r], c.Data[2*r+1]
			var pair [4]byte
			binary.LittleEndian.PutUint16(pair[0:2], start)
			binary.LittleEndian.PutUint16(pair[2:4], end-start)
			out = append(out, pair[:]...)
		}
	}
	return out
}

// appendBitmapWords writes a Bitmap store's 1024 words as 8192 LE bytes. On
// little-endian hosts (the overwhelming common case) this is a single
// memcpy via an unsafe reinterpretation of the word slice; big-endian hosts
// fall back to a per-word byte-order conversion. The logical bit mapping
// (bit i of word w is value w*64+i) is identical either way.
func appendBitmapWords(out []byte, bm bitmap.Bitmap) []byte {
	base := len(out)
	out = append(out, make([]byte, bitmapBodyBytes)...)
	dst := out[base:]
	if !cpu.IsBigEndian {
		copy(dst, wordsAsBytesLE(bm))
		return out
	}
	for i, w := range bm {
		binary.LittleEndian.PutUint64(dst[i*8:], w)
	}
	return out
}

func wordsAsBytesLE(bm bitmap.Bitmap) []byte {
	if len(bm) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&bm[0])), len(bm)*8)
}

// Deserialize decodes a Bitmap from its portable wire format, strictly
// validating the cookie, cardinalities, key ordering, bounds, and offset
// monotonicity. Returns ErrDeserialize (or a wrapping deserializeError)
// on any violation.
func Deserialize(data []byte) (*Bitmap, error) {
	return deserialize(data, true)
}

// DeserializeUnchecked decodes a Bitmap the same way as Deserialize but
// skips the redundant ascending-order and cardinality cross-checks, for
// trusted input where that validation cost isn't wanted. Bounds checks
// that protect against out-of-range slicing are never skipped.
func DeserializeUnchecked(data []byte) (*Bitmap, error) {
	return deserialize(data, false)
}

type containerHeader struct {
	key  uint16
	card uint32
}

func deserialize(data []byte, strict bool) (*Bitmap, error) {
	if len(data) < 4 {
		return nil, badField(0, "cookie", ErrDeserialize)
	}
	magic := binary.LittleEndian.Uint32(data[0:4])

	var n int
	var hasRun bool
	pos := 4
	switch {
	case magic == cookieNoRun:
		if len(data) < 8 {
			return nil, badField(4, "container_count", ErrDeserialize)
		}
		n = int(binary.LittleEndian.Uint32(data[4:8]))
		pos = 8
	case magic&0xFFFF0000 == cookieRunBase:
		hasRun = true
		n = int(magic&0xFFFF) + 1
	default:
		return nil, badField(0, "cookie", ErrDeserialize)
	}
	// A container header is the smallest unit remaining input must supply
	// one of; bounding n against it up front rejects a forged huge count
	// before hdrs/offsets below ever try to allocate for it.
	if n < 0 || n > (len(data)-pos)/4 {
		return nil, badField(pos, "container_count", ErrDeserialize)
	}
	if n == 0 {
		return New(), nil
	}

	var runFlags []byte
	if hasRun {
		descBytes := (n + 7) / 8
		if pos+descBytes > len(data) {
			return nil, badField(pos, "run_descriptor", ErrDeserialize)
		}
		runFlags = data[pos : pos+descBytes]
		pos += descBytes
	}

	hdrs := make([]containerHeader, n)
	for i := 0; i < n; i++ {
		if pos+4 > len(data) {
			return nil, badField(pos, "container_header", ErrDeserialize)
		}
		key := binary.LittleEndian.Uint16(data[pos:])
		cardM1 := binary.LittleEndian.Uint16(data[pos+2:])
		if strict && i > 0 && key <= hdrs[i-1].key {
			return nil, badField(pos, "key", ErrInvalidInput)
		}
		hdrs[i] = containerHeader{key: key, card: uint32(cardM1) + 1}
		pos += 4
	}

	writeOffsets := !hasRun || n >= noOffsetThreshold
	offsets := make([]uint32, n)
	if writeOffsets {
		for i := 0; i < n; i++ {
			if pos+4 > len(data) {
				return nil, badField(pos, "offset", ErrDeserialize)
			}
			offsets[i] = binary.LittleEndian.Uint32(data[pos:])
			if strict && i > 0 && offsets[i] < offsets[i-1] {
				return nil, badField(pos, "offset", ErrDeserialize)
			}
			pos += 4
		}
	}

	bodyStart := pos
	cursor := pos
	b := &Bitmap{
		containers: make([]container, n),
		index:      make([]uint16, n),
	}
	for i := 0; i < n; i++ {
		if writeOffsets {
			cursor = bodyStart + int(offsets[i])
		}
		isRun := hasRun && runFlags[i/8]&(1<<uint(i%8)) != 0
		c, next, err := readContainerBody(data, cursor, hdrs[i].key, hdrs[i].card, isRun, strict)
		if err != nil {
			return nil, err
		}
		b.containers[i] = c
		b.index[i] = hdrs[i].key
		cursor = next
	}
	return b, nil
}

func readContainerBody(data []byte, pos int, key uint16, card uint32, isRun, strict bool) (container, int, error) {
	if strict && card == 0 {
		return container{}, pos, badField(pos, "cardinality", ErrInvalidInput)
	}
	switch {
	case isRun:
		if pos+2 > len(data) {
			return container{}, pos, badField(pos, "run_count", ErrDeserialize)
		}
		runs := int(binary.LittleEndian.Uint16(data[pos:]))
		pos += 2
		if pos+runs*4 > len(data) {
			return container{}, pos, badField(pos, "run_body", ErrDeserialize)
		}
		vals := make([]uint16, 0, runs*2)
		var total uint32
		for r := 0; r < runs; r++ {
			start := binary.LittleEndian.Uint16(data[pos:])
			lengthM1 := binary.LittleEndian.Uint16(data[pos+2:])
			pos += 4
			vals = append(vals, start, start+lengthM1)
			total += uint32(lengthM1) + 1
		}
		if strict && total != card {
			return container{}, pos, badField(pos, "cardinality", ErrInvalidInput)
		}
		return container{key: key, Type: typeRun, Size: total, Data: vals}, pos, nil

	case card > arrayLimit:
		if pos+bitmapBodyBytes > len(data) {
			return container{}, pos, badField(pos, "bitmap_body", ErrDeserialize)
		}
		wordData := newBitmapData()
		bm := wordsAsBitmap(wordData)
		if !cpu.IsBigEndian {
			copy(wordsAsBytesLE(bm), data[pos:pos+bitmapBodyBytes])
		} else {
			for i := range bm {
				bm[i] = binary.LittleEndian.Uint64(data[pos+i*8:])
			}
		}
		pos += bitmapBodyBytes
		actual := uint32(bm.Count())
		if strict && actual != card {
			return container{}, pos, badField(pos, "cardinality", ErrInvalidInput)
		}
		return container{key: key, Type: typeBitmap, Size: actual, Data: wordData}, pos, nil

	default:
		if pos+int(card)*2 > len(data) {
			return container{}, pos, badField(pos, "array_body", ErrDeserialize)
		}
		vals := make([]uint16, card)
		for i := range vals {
			vals[i] = binary.LittleEndian.Uint16(data[pos:])
			if strict && i > 0 && vals[i] <= vals[i-1] {
				return container{}, pos, badField(pos, "array_value", ErrInvalidInput)
			}
			pos += 2
		}
		return container{key: key, Type: typeArray, Size: card, Data: vals}, pos, nil
	}
}
