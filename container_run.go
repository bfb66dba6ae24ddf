// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "sort"

// Run stores are a flat []uint16 of ascending, disjoint (start, end)
// pairs, each inclusive, separated by at least one absent value. The
// length-minus-one encoding named in spec.md §3 only matters at the codec
// boundary (container_run.go keeps the wider (start,end) form in memory,
// since nothing here needs to fit a 65536-long run in 16 bits).

// runFind locates the run containing value, or the run index where it
// would be inserted if absent. It delegates the search itself to
// sort.Search: the runs are disjoint and ascending, so the first run
// whose end is >= value is the only candidate that could contain it.
func (c *container) runFind(value uint16) (idx int, found bool) {
	n := c.runCount()
	idx = sort.Search(n, func(i int) bool {
		return c.Data[i*2+1] >= value
	})
	if idx == n {
		return n, false
	}
	return idx, c.Data[idx*2] <= value
}

// runInsert adds value to a Run store, merging with adjacent runs as needed.
func (c *container) runInsert(value uint16) bool {
	idx, found := c.runFind(value)
	if found {
		return false
	}

	n := c.runCount()
	// A run ending at value-1 or starting at value+1 absorbs value instead
	// of a new one-element run being inserted; the equality is phrased as
	// arithmetic on value (not subtraction on the neighboring run's bound)
	// so the uint16 wrap at 0/65535 is guarded by a plain bounds check
	// rather than by relying on subtraction wrapping predictably.
	joinsPrev := idx > 0 && value != 0 && c.Data[(idx-1)*2+1] == value-1
	joinsNext := idx < n && value != 65535 && c.Data[idx*2] == value+1

	switch {
	case joinsPrev && joinsNext:
		c.Data[(idx-1)*2+1] = c.Data[idx*2+1]
		c.runDeleteAt(idx)
	case joinsPrev:
		c.Data[(idx-1)*2+1] = value
	case joinsNext:
		c.Data[idx*2] = value
	default:
		c.runInsertAt(idx, value, value)
	}
	c.Size++
	return true
}

// runRemove deletes value from a Run store, splitting a run if value falls
// in its interior. It branches on which bound, if either, equals value: a
// one-element run is deleted, a matching start or end is trimmed by one,
// and an interior value cuts the run at value-1 with the remainder above
// value inserted as its own run starting one past value.
func (c *container) runRemove(value uint16) bool {
	idx, found := c.runFind(value)
	if !found {
		return false
	}
	c.Size--

	start, end := c.Data[idx*2], c.Data[idx*2+1]
	if value == start && value == end {
		c.runDeleteAt(idx)
		return true
	}
	if value == start {
		c.Data[idx*2] = value + 1
		return true
	}
	if value == end {
		c.Data[idx*2+1] = value - 1
		return true
	}
	c.Data[idx*2+1] = value - 1
	c.runInsertAt(idx+1, value+1, end)
	return true
}

func (c *container) runContains(value uint16) bool {
	_, found := c.runFind(value)
	return found
}

func (c *container) runInsertAt(idx int, start, end uint16) {
	n := c.runCount()
	newLen := (n + 1) * 2
	if cap(c.Data) >= newLen {
		c.Data = c.Data[:newLen]
		copy(c.Data[(idx+1)*2:], c.Data[idx*2:n*2])
	} else {
		grown := make([]uint16, newLen, newLen+16)
		copy(grown, c.Data[:idx*2])
		copy(grown[(idx+1)*2:], c.Data[idx*2:])
		c.Data = grown
	}
	c.Data[idx*2] = start
	c.Data[idx*2+1] = end
}

func (c *container) runDeleteAt(idx int) {
	n := c.runCount()
	copy(c.Data[idx*2:], c.Data[(idx+1)*2:])
	c.Data = c.Data[:(n-1)*2]
}

// runRank counts members <= v. The search for the containing/insertion run
// is O(log runs); summing the lengths of the runs before it is O(runs) since
// no prefix-sum cache is kept (acceptable: run_count is bounded well below
// cardinality for any container where Run is the chosen representation).
func (c *container) runRank(v uint16) uint64 {
	idx, found := c.runFind(v)
	var rank uint64
	for i := 0; i < idx; i++ {
		rank += uint64(c.Data[i*2+1]-c.Data[i*2]) + 1
	}
	if found {
		rank += uint64(v-c.Data[idx*2]) + 1
	}
	return rank
}

// runSelect returns the k-th (zero-indexed) member of a Run store.
func (c *container) runSelect(k uint64) (uint16, bool) {
	n := c.runCount()
	remaining := k
	for i := 0; i < n; i++ {
		start, end := c.Data[i*2], c.Data[i*2+1]
		length := uint64(end-start) + 1
		if remaining < length {
			return start + uint16(remaining), true
		}
		remaining -= length
	}
	return 0, false
}

func (c *container) runRangeAsc(fn func(uint16) bool) {
	n := c.runCount()
	for i := 0; i < n; i++ {
		start, end := c.Data[i*2], c.Data[i*2+1]
		for v := start; ; v++ {
			if !fn(v) {
				return
			}
			if v == end {
				break
			}
		}
	}
}

func (c *container) runRangeDesc(fn func(uint16) bool) {
	n := c.runCount()
	for i := n - 1; i >= 0; i-- {
		start, end := c.Data[i*2], c.Data[i*2+1]
		for v := end; ; v-- {
			if !fn(v) {
				return
			}
			if v == start {
				break
			}
		}
	}
}

// runToArr converts this container from Run to Array representation.
func (c *container) runToArr() {
	n := c.runCount()
	src := c.Data
	arr := make([]uint16, 0, c.Size)
	for i := 0; i < n; i++ {
		start, end := src[i*2], src[i*2+1]
		for v := start; ; v++ {
			arr = append(arr, v)
			if v == end {
				break
			}
		}
	}
	c.Data = arr
	c.Type = typeArray
}

// runToBmp converts this container from Run to Bitmap representation.
func (c *container) runToBmp() {
	n := c.runCount()
	src := c.Data
	c.Data = newBitmapData()
	c.Type = typeBitmap
	dst := c.bmp()
	for i := 0; i < n; i++ {
		start, end := uint32(src[i*2]), uint32(src[i*2+1])
		for v := start; ; v++ {
			dst.Set(v)
			if v == end {
				break
			}
		}
	}
}
