// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// opXor implements symmetric difference (A △ B) across the container
// representation cross-product.
var opXor = combiner{
	arrArr: xorArrArr,
	arrBmp: xorArrBmp,
	bmpArr: xorBmpArr,
	bmpBmp: xorBmpBmp,
	runRun: xorRunRun,
}

// xorArrArr merges two sorted Array stores, keeping values present in
// exactly one of them.
func xorArrArr(a, b []uint16) []uint16 {
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
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

// toggleBitmap clones base and flips the bit at every point, which is
// exactly symmetric difference between a Bitmap store and a set of points
// drawn from an Array store.
func toggleBitmap(base bitmap.Bitmap, points []uint16) container {
	out := cloneBitmap(base)
	for _, v := range points {
		if out.Contains(uint32(v)) {
			out.Remove(uint32(v))
		} else {
			out.Set(uint32(v))
		}
	}
	return finishBitmap(out)
}

func xorArrBmp(a []uint16, b bitmap.Bitmap) container { return toggleBitmap(b, a) }
func xorBmpArr(a bitmap.Bitmap, b []uint16) container  { return toggleBitmap(a, b) }

func xorBmpBmp(a, b bitmap.Bitmap) container {
	out := cloneBitmap(a)
	out.Xor(b)
	return finishBitmap(out)
}

// xorRunRun computes A △ B as (A \ B) ∪ (B \ A); the two differences are
// disjoint by construction so the union is a plain ascending merge with no
// cross-list overlap to resolve.
func xorRunRun(a, b []uint16) []uint16 {
	return orRunRun(diffRunRun(a, b), diffRunRun(b, a))
}
