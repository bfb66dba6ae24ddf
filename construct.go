// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// FromSortedAscending builds a Bitmap from values, which must be strictly
// ascending with no duplicates; returns ErrInvalidInput otherwise.
func FromSortedAscending(values []uint32) (*Bitmap, error) {
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return nil, ErrInvalidInput
		}
	}
	return FromSortedAscendingUnchecked(values), nil
}

// FromSortedAscendingUnchecked builds a Bitmap from values without
// validating order; behavior is undefined if values is not strictly
// ascending. Use this only when the caller already guarantees the
// invariant, e.g. re-ingesting a Bitmap's own ToSortedSlice output.
func FromSortedAscendingUnchecked(values []uint32) *Bitmap {
	b := New()
	for len(values) > 0 {
		key := uint16(values[0] >> 16)
		end := 0
		for end < len(values) && uint16(values[end]>>16) == key {
			end++
		}
		c := newArrayContainer(key)
		c.Data = c.Data[:0]
		for _, v := range values[:end] {
			c.Data = append(c.Data, uint16(v&0xFFFF))
		}
		c.Size = uint32(len(c.Data))
		c.optimize()
		b.containers = append(b.containers, *c)
		b.index = append(b.index, key)
		values = values[end:]
	}
	return b
}

// FromValues builds a Bitmap from an arbitrary (possibly unsorted, possibly
// duplicated) slice of values.
func FromValues(values []uint32) *Bitmap {
	b := New()
	for _, v := range values {
		b.Insert(v)
	}
	return b
}
