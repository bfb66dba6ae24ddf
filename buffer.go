// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"unsafe"

	"github.com/kelindar/bitmap"
)

// bmp reinterprets a Bitmap-typed container's Data (a bitmapSize-long
// []uint16, 8192 bytes) as a kelindar/bitmap.Bitmap ([]uint64, 1024 words)
// with zero copying. Both slices alias the same backing array: mutating one
// mutates the other, which is what lets the dense store's kernels run
// straight against c.Data without materializing an intermediate copy.
func (c *container) bmp() bitmap.Bitmap {
	return wordsAsBitmap(c.Data)
}

// wordsAsBitmap reinterprets a bitmapSize-long []uint16 as a
// kelindar/bitmap.Bitmap with zero copying.
func wordsAsBitmap(data []uint16) bitmap.Bitmap {
	if len(data) == 0 {
		return nil
	}
	return bitmap.Bitmap(unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), len(data)/4))
}

// bitmapAsWords is the inverse of wordsAsBitmap.
func bitmapAsWords(bm bitmap.Bitmap) []uint16 {
	if len(bm) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&bm[0])), len(bm)*4)
}

// newBitmapData allocates a zeroed bitmapSize-long []uint16 suitable for a
// fresh Bitmap-typed container.
func newBitmapData() []uint16 {
	return make([]uint16, bitmapSize)
}

// cloneBitmapData returns a fresh copy of a Bitmap container's word data.
func cloneBitmapData(src []uint16) []uint16 {
	dst := make([]uint16, bitmapSize)
	copy(dst, src)
	return dst
}
