// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerInsertRemove(t *testing.T) {
	for _, mk := range []func(...uint16) *container{newArrC, newBmpC, newRunC} {
		c := mk()
		assert.True(t, c.insert(5))
		assert.False(t, c.insert(5))
		assert.True(t, c.contains(5))
		assert.Equal(t, uint32(1), c.Size)

		assert.True(t, c.remove(5))
		assert.False(t, c.remove(5))
		assert.False(t, c.contains(5))
		assert.Equal(t, uint32(0), c.Size)
		assert.True(t, c.isEmpty())
	}
}

func TestContainerMinMax(t *testing.T) {
	for _, mk := range []func(...uint16) *container{newArrC, newBmpC, newRunC} {
		c := mk(3, 1, 9, 5)
		min, ok := c.min()
		assert.True(t, ok)
		assert.Equal(t, uint16(1), min)

		max, ok := c.max()
		assert.True(t, ok)
		assert.Equal(t, uint16(9), max)
	}

	empty := newArrC()
	_, ok := empty.min()
	assert.False(t, ok)
	_, ok = empty.max()
	assert.False(t, ok)
}

func TestContainerRankSelect(t *testing.T) {
	for _, mk := range []func(...uint16) *container{newArrC, newBmpC, newRunC} {
		c := mk(10, 20, 30, 40)

		assert.Equal(t, uint64(0), c.rank(5))
		assert.Equal(t, uint64(1), c.rank(10))
		assert.Equal(t, uint64(2), c.rank(25))
		assert.Equal(t, uint64(4), c.rank(100))

		for k := uint64(0); k < 4; k++ {
			v, ok := c.selectAt(k)
			assert.True(t, ok)
			assert.Equal(t, valuesOfContainer(c)[k], v)
		}
		_, ok := c.selectAt(4)
		assert.False(t, ok)
	}
}

func TestContainerRangeAscDesc(t *testing.T) {
	want := []uint16{1, 2, 3, 100, 200}
	for _, mk := range []func(...uint16) *container{newArrC, newBmpC, newRunC} {
		c := mk(want...)
		assert.Equal(t, want, valuesOfContainer(c))

		var desc []uint16
		c.rangeDesc(func(v uint16) bool {
			desc = append(desc, v)
			return true
		})
		assert.Equal(t, []uint16{200, 100, 3, 2, 1}, desc)
	}
}

func TestContainerCloneIsIndependent(t *testing.T) {
	for _, mk := range []func(...uint16) *container{newArrC, newBmpC, newRunC} {
		c := mk(1, 2, 3)
		clone := c.clone()

		clone.insert(4)
		assert.False(t, c.contains(4), "mutating the clone must not affect the original")
		assert.True(t, clone.contains(4))
	}
}

func TestContainerConvertOnArrayLimit(t *testing.T) {
	c := newArrayContainer(0)
	for v := uint16(0); v < arrayLimit; v++ {
		c.insert(v)
	}
	assert.Equal(t, typeArray, c.Type)

	c.insert(arrayLimit)
	assert.Equal(t, typeBitmap, c.Type)

	c.remove(arrayLimit)
	assert.Equal(t, typeArray, c.Type)
}
