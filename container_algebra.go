// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// combine runs one of the four set-algebra operators on a pair of
// containers sharing the same key, dispatching on the (a.Type, b.Type)
// cross-product named in spec.md §4.1 (9 pairs). It never mutates a or b;
// the result is always a freshly built container, matching the
// out-of-place contract of the per-pair kernels. Callers that need an
// in-place-on-left result install the returned container over the left
// slot themselves (see bitmap_algebra.go).
type combiner struct {
	arrArr func(a, b []uint16) []uint16
	arrBmp func(a []uint16, b bitmap.Bitmap) container
	bmpArr func(a bitmap.Bitmap, b []uint16) container
	bmpBmp func(a, b bitmap.Bitmap) container
	runRun func(a, b []uint16) []uint16
}

// combine dispatches a pair of containers through a combiner, materializing
// Run containers into the representation of their counterpart where no
// dedicated Run path exists, per spec.md §4.1's "unwrap the Run into its
// materialized form for the non-Run side" guidance.
func (op combiner) combine(a, b *container) container {
	switch {
	case a.Type == typeRun && b.Type == typeRun:
		out := op.runRun(a.Data, b.Data)
		return finishRun(out)

	case a.Type == typeRun:
		return op.combine2(materialize(a, b.Type), b)
	case b.Type == typeRun:
		return op.combine2(a, materialize(b, a.Type))

	default:
		return op.combine2(a, b)
	}
}

// combine2 handles the Array/Bitmap 2x2 cross-product once any Run operand
// has been materialized away.
func (op combiner) combine2(a, b *container) container {
	switch {
	case a.Type == typeArray && b.Type == typeArray:
		out := op.arrArr(a.Data, b.Data)
		return finishArray(out)
	case a.Type == typeArray && b.Type == typeBitmap:
		return op.arrBmp(a.Data, b.bmp())
	case a.Type == typeBitmap && b.Type == typeArray:
		return op.bmpArr(a.bmp(), b.Data)
	default: // both Bitmap
		return op.bmpBmp(a.bmp(), b.bmp())
	}
}

// materialize returns a temporary container holding c's members in the
// requested representation (Array or Bitmap), without mutating c.
func materialize(c *container, as ctype) *container {
	switch as {
	case typeBitmap:
		words := newBitmapData()
		bm := wordsAsBitmap(words)
		c.runRangeAsc(func(v uint16) bool {
			bm.Set(uint32(v))
			return true
		})
		return &container{Type: typeBitmap, Data: words, Size: c.Size}
	default:
		arr := make([]uint16, 0, c.Size)
		c.runRangeAsc(func(v uint16) bool {
			arr = append(arr, v)
			return true
		})
		return &container{Type: typeArray, Data: arr, Size: uint32(len(arr))}
	}
}

func finishArray(data []uint16) container {
	return container{Type: typeArray, Data: data, Size: uint32(len(data))}
}

func finishBitmap(bm bitmap.Bitmap) container {
	return container{Type: typeBitmap, Data: bitmapAsWords(bm), Size: uint32(bm.Count())}
}

func finishRun(data []uint16) container {
	var size uint32
	for i := 0; i+1 < len(data); i += 2 {
		size += uint32(data[i+1]-data[i]) + 1
	}
	return container{Type: typeRun, Data: data, Size: size}
}
