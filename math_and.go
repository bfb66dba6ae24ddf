// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/kelindar/bitmap"

// opAnd implements intersection (A ∩ B) across the container
// representation cross-product.
var opAnd = combiner{
	arrArr: andArrArr,
	arrBmp: andArrBmp,
	bmpArr: andBmpArr,
	bmpBmp: andBmpBmp,
	runRun: andRunRun,
}

func andArrArr(a, b []uint16) []uint16 {
	out := make([]uint16, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// andArrBmp keeps the Array members that the Bitmap also contains; no copy
// of the Bitmap is needed since it is only probed, never mutated.
func andArrBmp(a []uint16, b bitmap.Bitmap) container {
	out := make([]uint16, 0, len(a))
	for _, v := range a {
		if b.Contains(uint32(v)) {
			out = append(out, v)
		}
	}
	return finishArray(out)
}

func andBmpArr(a bitmap.Bitmap, b []uint16) container {
	return andArrBmp(b, a)
}

func andBmpBmp(a, b bitmap.Bitmap) container {
	out := cloneBitmap(a)
	out.And(b)
	return finishBitmap(out)
}

// andRunRun intersects two ascending, disjoint run sequences in one sweep.
func andRunRun(a, b []uint16) []uint16 {
	out := make([]uint16, 0, min(len(a), len(b)))
	i, j := 0, 0
	na, nb := len(a)/2, len(b)/2

	for i < na && j < nb {
		s1, e1 := a[i*2], a[i*2+1]
		s2, e2 := b[j*2], b[j*2+1]

		start := s1
		if s2 > start {
			start = s2
		}
		end := e1
		if e2 < end {
			end = e2
		}
		if start <= end {
			out = append(out, start, end)
		}

		if e1 < e2 {
			i++
		} else if e2 < e1 {
			j++
		} else {
			i++
			j++
		}
	}
	return out
}
