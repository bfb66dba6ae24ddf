// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

func newArrC(values ...uint16) *container {
	c := newArrayContainer(0)
	for _, v := range values {
		c.arrInsert(v)
	}
	return c
}

func newBmpC(values ...uint16) *container {
	c := &container{Type: typeBitmap, Data: newBitmapData()}
	for _, v := range values {
		c.bmpInsert(v)
	}
	return c
}

func newRunC(values ...uint16) *container {
	c := newArrC(values...)
	c.arrToRun()
	return c
}

func valuesOfContainer(c *container) []uint16 {
	out := []uint16{}
	c.rangeAsc(func(v uint16) bool {
		out = append(out, v)
		return true
	})
	return out
}
