// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"container/heap"
	"sort"
)

// cursor tracks one input bitmap's current position in its container
// sequence, for the heap-merge multi-way reductions below.
type cursor struct {
	bm  *Bitmap
	pos int
}

func (c *cursor) key() uint16 { return c.bm.index[c.pos] }
func (c *cursor) done() bool  { return c.pos >= len(c.bm.containers) }

// cursorHeap is a min-heap of cursors ordered by their current key, letting
// UnionMany advance in key order across an arbitrary number of inputs
// without materializing an O(n) intermediate per step.
type cursorHeap []*cursor

func (h cursorHeap) Len() int            { return len(h) }
func (h cursorHeap) Less(i, j int) bool  { return h[i].key() < h[j].key() }
func (h cursorHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cursorHeap) Push(x any)         { *h = append(*h, x.(*cursor)) }
func (h *cursorHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// UnionMany returns the union of all given bitmaps using a heap-merge over
// each bitmap's (key, container) sequence, keeping peak memory to
// O(output size + fan-in) rather than the O(n·fan-in) a naive left fold
// would cost.
func UnionMany(bitmaps []*Bitmap) *Bitmap {
	h := make(cursorHeap, 0, len(bitmaps))
	for _, bm := range bitmaps {
		if bm == nil || len(bm.containers) == 0 {
			continue
		}
		h = append(h, &cursor{bm: bm})
	}
	heap.Init(&h)

	out := New()
	for h.Len() > 0 {
		key := h[0].key()

		var acc *container
		for h.Len() > 0 && h[0].key() == key {
			cur := h[0]
			c := &cur.bm.containers[cur.pos]
			if acc == nil {
				cloned := c.clone()
				acc = &cloned
			} else {
				merged := opOr.combine(acc, c)
				acc = &merged
			}
			cur.pos++
			if cur.done() {
				heap.Pop(&h)
			} else {
				heap.Fix(&h, 0)
			}
		}

		acc.key = key
		acc.convert()
		if !acc.isEmpty() {
			out.containers = append(out.containers, *acc)
			out.index = append(out.index, key)
		}
	}
	return out
}

// IntersectionMany returns the intersection of all given bitmaps. Inputs
// are folded smallest-cardinality-first so that the accumulator shrinks (or
// hits empty, short-circuiting) as early as possible.
func IntersectionMany(bitmaps []*Bitmap) *Bitmap {
	live := make([]*Bitmap, 0, len(bitmaps))
	for _, bm := range bitmaps {
		if bm != nil {
			live = append(live, bm)
		}
	}
	if len(live) == 0 {
		return New()
	}

	sort.Slice(live, func(i, j int) bool { return live[i].Len() < live[j].Len() })

	acc := live[0].Clone()
	for _, bm := range live[1:] {
		if acc.IsEmpty() {
			break
		}
		acc.IntersectionInPlace(bm)
	}
	return acc
}
