// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// opOr implements union (A ∪ B) across the container representation
// cross-product.
var opOr = combiner{
	arrArr: orArrArr,
	arrBmp: orArrBmp,
	bmpArr: orBmpArr,
	bmpBmp: orBmpBmp,
	runRun: orRunRun,
}

// orArrArr merges two sorted Array stores, keeping one copy of duplicates.
func orArrArr(a, b []uint16) []uint16 {
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// orArrBmp unions an Array into a fresh copy of a Bitmap store.
func orArrBmp(a []uint16, b bitmap.Bitmap) container {
	bm := cloneBitmap(b)
	for _, v := range a {
		bm.Set(uint32(v))
	}
	return finishBitmap(bm)
}

// orBmpArr unions an Array into a fresh copy of a Bitmap store (commutative
// with orArrBmp; kept distinct so both cross-product cells have a direct
// entry in the dispatch table).
func orBmpArr(a bitmap.Bitmap, b []uint16) container {
	return orArrBmp(b, a)
}

// orBmpBmp unions two Bitmap stores via kelindar/bitmap's own word-wise Or.
func orBmpBmp(a, b bitmap.Bitmap) container {
	out := cloneBitmap(a)
	out.Or(b)
	return finishBitmap(out)
}

// orRunRun merges two ascending run sequences into their interval union,
// coalescing overlapping and adjacent runs in a single sweep.
func orRunRun(a, b []uint16) []uint16 {
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	na, nb := len(a)/2, len(b)/2

	for i < na || j < nb {
		var start, end uint32
		switch {
		case i < na && (j >= nb || a[i*2] <= b[j*2]):
			start, end = uint32(a[i*2]), uint32(a[i*2+1])
			i++
		default:
			start, end = uint32(b[j*2]), uint32(b[j*2+1])
			j++
		}

		// Absorb every run (from either side) overlapping or adjacent to
		// [start, end], extending end as we go.
		for {
			extended := false
			for i < na && uint32(a[i*2]) <= end+1 {
				if uint32(a[i*2+1]) > end {
					end = uint32(a[i*2+1])
				}
				i++
				extended = true
			}
			for j < nb && uint32(b[j*2]) <= end+1 {
				if uint32(b[j*2+1]) > end {
					end = uint32(b[j*2+1])
				}
				j++
				extended = true
			}
			if !extended {
				break
			}
		}

		out = append(out, uint16(start), uint16(end))
	}
	return out
}

// cloneBitmap returns a fresh Bitmap-store copy that aliases nothing from
// the source, so kernels are free to mutate it.
func cloneBitmap(bm bitmap.Bitmap) bitmap.Bitmap {
	return wordsAsBitmap(cloneBitmapData(bitmapAsWords(bm)))
}
