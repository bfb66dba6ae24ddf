// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// rangeSplit walks the containers touched by the half-open value range
// [lo, hi) and invokes fn once per touched key with the sub-range
// (relative to that container's 16-bit universe) it owns. lo and hi are
// uint64 so that hi == 1<<32 (one past the largest representable uint32,
// 0xFFFFFFFF) can express "through the end of the universe" without
// overflowing.
func rangeSplit(lo, hi uint64, fn func(key uint16, subLo, subHi uint32)) {
	if lo >= hi {
		return
	}
	startKey := uint16(lo >> 16)
	endKey := uint16((hi - 1) >> 16)
	for key := startKey; ; key++ {
		subLo := uint32(0)
		if key == startKey {
			subLo = uint32(lo & 0xFFFF)
		}
		subHi := uint32(0x10000)
		if key == endKey {
			subHi = uint32((hi-1)&0xFFFF) + 1
		}
		fn(key, subLo, subHi)
		if key == endKey {
			break
		}
	}
}

// checkRangeBounds validates a [lo, hi) range against the uint32 universe.
func checkRangeBounds(lo, hi uint64) error {
	if lo > hi || hi > 1<<32 {
		return ErrRangeBounds
	}
	return nil
}

// InsertRange adds every value in the half-open range [lo, hi) to the
// bitmap. hi may be as large as 1<<32 to mean "through 0xFFFFFFFF".
// Returns ErrRangeBounds if lo > hi or hi overflows the universe.
func (b *Bitmap) InsertRange(lo, hi uint64) error {
	if err := checkRangeBounds(lo, hi); err != nil {
		return err
	}
	if lo == hi {
		return nil
	}
	rangeSplit(lo, hi, func(key uint16, subLo, subHi uint32) {
		idx, exists := find16(b.index, key)
		if !exists {
			b.spliceContainer(idx, key, newArrayContainer(key))
		}
		c := &b.containers[idx]
		c.fork()
		c.fillRange(subLo, subHi)
		c.optimize()
	})
	b.generation++
	return nil
}

// RemoveRange deletes every value in the half-open range [lo, hi) from the
// bitmap.
func (b *Bitmap) RemoveRange(lo, hi uint64) error {
	if err := checkRangeBounds(lo, hi); err != nil {
		return err
	}
	if lo == hi {
		return nil
	}
	rangeSplit(lo, hi, func(key uint16, subLo, subHi uint32) {
		idx, exists := find16(b.index, key)
		if !exists {
			return
		}
		c := &b.containers[idx]
		c.fork()
		c.clearRange(subLo, subHi)
		if c.isEmpty() {
			b.deleteContainer(idx)
			return
		}
		c.optimize()
	})
	b.generation++
	return nil
}

// FlipRange toggles membership of every value in the half-open range
// [lo, hi): members become absent, absent values become members.
func (b *Bitmap) FlipRange(lo, hi uint64) error {
	if err := checkRangeBounds(lo, hi); err != nil {
		return err
	}
	if lo == hi {
		return nil
	}
	rangeSplit(lo, hi, func(key uint16, subLo, subHi uint32) {
		idx, exists := find16(b.index, key)
		if !exists {
			b.spliceContainer(idx, key, newArrayContainer(key))
			idx, _ = find16(b.index, key)
		}
		c := &b.containers[idx]
		c.fork()
		c.flipRange(subLo, subHi)
		if c.isEmpty() {
			b.deleteContainer(idx)
			return
		}
		c.optimize()
	})
	b.generation++
	return nil
}

// Rank returns the number of members of b that are <= v.
func (b *Bitmap) Rank(v uint32) uint64 {
	hi, lo := uint16(v>>16), uint16(v&0xFFFF)
	var rank uint64
	for i, key := range b.index {
		switch {
		case key < hi:
			rank += uint64(b.containers[i].Size)
		case key == hi:
			rank += b.containers[i].rank(lo)
			return rank
		default:
			return rank
		}
	}
	return rank
}

// Select returns the k-th (zero-indexed) smallest member of b, or false if
// k is out of range.
func (b *Bitmap) Select(k uint64) (uint32, bool) {
	for i := range b.containers {
		size := uint64(b.containers[i].Size)
		if k < size {
			lo, ok := b.containers[i].selectAt(k)
			return uint32(b.index[i])<<16 | uint32(lo), ok
		}
		k -= size
	}
	return 0, false
}

// Range invokes fn for every member of b in ascending order, stopping
// early if fn returns false.
func (b *Bitmap) Range(fn func(uint32) bool) {
	for i := range b.containers {
		hi := uint32(b.index[i]) << 16
		stop := false
		b.containers[i].rangeAsc(func(lo uint16) bool {
			if !fn(hi | uint32(lo)) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// RangeDesc invokes fn for every member of b in descending order, stopping
// early if fn returns false.
func (b *Bitmap) RangeDesc(fn func(uint32) bool) {
	for i := len(b.containers) - 1; i >= 0; i-- {
		hi := uint32(b.index[i]) << 16
		stop := false
		b.containers[i].rangeDesc(func(lo uint16) bool {
			if !fn(hi | uint32(lo)) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// ToSortedSlice returns every member of b as an ascending []uint32.
func (b *Bitmap) ToSortedSlice() []uint32 {
	return b.AppendTo(make([]uint32, 0, b.Len()))
}

// AppendTo appends every member of b, ascending, to dst and returns the
// extended slice.
func (b *Bitmap) AppendTo(dst []uint32) []uint32 {
	b.Range(func(v uint32) bool {
		dst = append(dst, v)
		return true
	})
	return dst
}
