// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "sort"

// Iterator walks the members of a Bitmap in order. It is invalidated by
// any structural mutation of the underlying Bitmap made after it was
// created: Next and Prev detect this via the generation counter and
// return false rather than risk returning stale or inconsistent data.
// An Iterator is not safe for concurrent use.
type Iterator struct {
	bm        *Bitmap
	gen       uint64
	desc      bool
	ci        int // container index
	vals      []uint32
	vi        int
	value     uint32
	stale     bool
	bounded   bool
	lo, hi    uint64
	remaining int
}

// Iterate returns a forward Iterator positioned before the first member.
func (b *Bitmap) Iterate() *Iterator {
	return &Iterator{bm: b, gen: b.generation, remaining: int(b.Len())}
}

// IterateDesc returns a reverse Iterator positioned after the last member.
func (b *Bitmap) IterateDesc() *Iterator {
	return &Iterator{bm: b, gen: b.generation, desc: true, ci: len(b.containers), remaining: int(b.Len())}
}

// IterateRange returns a forward Iterator over the half-open value range
// [lo, hi), seeking directly to the first container that could hold a
// member of the range instead of walking from the start of the Bitmap.
// hi may be as large as 1<<32, matching InsertRange/RemoveRange/FlipRange.
func (b *Bitmap) IterateRange(lo, hi uint64) *Iterator {
	it := &Iterator{bm: b, gen: b.generation, bounded: true, lo: lo, hi: hi}
	if lo >= hi {
		it.ci = len(b.containers)
		return it
	}
	startKey := uint16(lo >> 16)
	it.ci = sort.Search(len(b.index), func(i int) bool { return b.index[i] >= startKey })
	it.remaining = countInRange(b, lo, hi)
	return it
}

// Valid reports whether it is still safe to call Next/Prev: it becomes
// false forever once the source Bitmap has been mutated.
func (it *Iterator) Valid() bool {
	return !it.stale && it.bm.generation == it.gen
}

// Next advances the iterator and reports whether a member was found.
// It returns false both at end-of-sequence and once the Bitmap it walks
// has been mutated underneath it (see Valid).
func (it *Iterator) Next() bool {
	if it.desc {
		panic("roaring: Next called on a descending Iterator")
	}
	if !it.Valid() {
		it.stale = true
		return false
	}
	for {
		if it.vi < len(it.vals) {
			it.value = it.vals[it.vi]
			it.vi++
			it.consume()
			return true
		}
		if it.ci >= len(it.bm.containers) {
			return false
		}
		if it.bounded && uint64(it.bm.index[it.ci])<<16 >= it.hi {
			return false
		}
		it.loadContainerAsc(it.ci)
		it.ci++
	}
}

// Prev retreats the iterator and reports whether a member was found.
func (it *Iterator) Prev() bool {
	if !it.desc {
		panic("roaring: Prev called on an ascending Iterator")
	}
	if !it.Valid() {
		it.stale = true
		return false
	}
	for {
		if it.vi < len(it.vals) {
			it.value = it.vals[len(it.vals)-1-it.vi]
			it.vi++
			it.consume()
			return true
		}
		if it.ci <= 0 {
			return false
		}
		it.ci--
		it.loadContainerAsc(it.ci)
	}
}

// loadContainerAsc buffers container i's members, ascending. When the
// iterator is bounded, members outside [lo, hi) are dropped here: this
// only does meaningful filtering at the first and last touched
// containers, since every container strictly between them lies entirely
// inside the range by construction of the seek in IterateRange.
func (it *Iterator) loadContainerAsc(i int) {
	hi := uint32(it.bm.index[i]) << 16
	it.vals = it.vals[:0]
	it.bm.containers[i].rangeAsc(func(lo uint16) bool {
		v := hi | uint32(lo)
		if it.bounded {
			if uint64(v) < it.lo {
				return true
			}
			if uint64(v) >= it.hi {
				return false
			}
		}
		it.vals = append(it.vals, v)
		return true
	})
	it.vi = 0
}

// consume decrements the cached remaining count after a successful step.
func (it *Iterator) consume() {
	if it.remaining > 0 {
		it.remaining--
	}
}

// Value returns the member found by the most recent Next/Prev call.
func (it *Iterator) Value() uint32 {
	return it.value
}

// Remaining returns the number of members Next/Prev have not yet
// produced. It is a size_hint derived from the touched containers'
// cached cardinalities at iterator construction, decremented by one on
// every successful step, never from re-scanning members.
func (it *Iterator) Remaining() int {
	return it.remaining
}

// countInRange counts the members of b within the half-open range
// [lo, hi) using each touched container's cached Size, falling back to
// container.rank only at the two boundary containers that may be
// partially covered by the range.
func countInRange(b *Bitmap, lo, hi uint64) int {
	if lo >= hi {
		return 0
	}
	var n uint64
	rangeSplit(lo, hi, func(key uint16, subLo, subHi uint32) {
		idx, exists := find16(b.index, key)
		if !exists {
			return
		}
		c := &b.containers[idx]
		if subLo == 0 && subHi == 0x10000 {
			n += uint64(c.Size)
			return
		}
		upper := c.rank(uint16(subHi - 1))
		var lower uint64
		if subLo > 0 {
			lower = c.rank(uint16(subLo - 1))
		}
		n += upper - lower
	})
	return int(n)
}
