// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// fillFull sets every value in the container's universe, which collapses
// trivially to a single Run — the cheapest possible representation for a
// completely dense container.
func (c *container) fillFull() {
	c.Type = typeRun
	c.Data = []uint16{0, 65535}
	c.Size = 65536
}

// clearFull empties the container.
func (c *container) clearFull() {
	c.Type = typeArray
	c.Data = c.Data[:0]
	c.Size = 0
}

// flipFull complements the whole container in O(bitmapWords) regardless of
// cardinality, by materializing a dense store once (if not already one)
// and then inverting every word.
func (c *container) flipFull() {
	oldSize := c.Size
	c.ensureBitmap()
	bm := c.bmp()
	for i := range bm {
		bm[i] = ^bm[i]
	}
	c.Size = 65536 - oldSize
}

// ensureBitmap materializes the container as a Bitmap store in place,
// preserving its current members; a no-op if it already is one.
func (c *container) ensureBitmap() {
	c.fork()
	switch c.Type {
	case typeArray:
		c.arrToBmp()
	case typeRun:
		c.runToBmp()
	}
}

// fillRange sets every value in [lo, hi) (both relative to this
// container's 16-bit universe). The whole-container case is O(1); a
// partial range materializes a dense store and sets bits directly.
func (c *container) fillRange(lo, hi uint32) {
	if lo == 0 && hi == 0x10000 {
		c.fillFull()
		return
	}
	c.ensureBitmap()
	bm := c.bmp()
	for v := lo; v < hi; v++ {
		bm.Set(v)
	}
	c.Size = uint32(bm.Count())
}

// clearRange removes every value in [lo, hi).
func (c *container) clearRange(lo, hi uint32) {
	if c.isEmpty() {
		return
	}
	if lo == 0 && hi == 0x10000 {
		c.clearFull()
		return
	}
	c.ensureBitmap()
	bm := c.bmp()
	for v := lo; v < hi; v++ {
		bm.Remove(v)
	}
	c.Size = uint32(bm.Count())
}

// flipRange toggles membership of every value in [lo, hi).
func (c *container) flipRange(lo, hi uint32) {
	if lo == 0 && hi == 0x10000 {
		c.flipFull()
		return
	}
	c.ensureBitmap()
	bm := c.bmp()
	for v := lo; v < hi; v++ {
		if bm.Contains(v) {
			bm.Remove(v)
		} else {
			bm.Set(v)
		}
	}
	c.Size = uint32(bm.Count())
}
