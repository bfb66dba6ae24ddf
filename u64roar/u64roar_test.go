// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package u64roar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSetContainsRemove(t *testing.T) {
	m := New()
	assert.True(t, m.IsEmpty())

	assert.True(t, m.Set(5))
	assert.False(t, m.Set(5))
	assert.True(t, m.Contains(5))
	assert.Equal(t, uint64(1), m.Len())

	assert.True(t, m.Remove(5))
	assert.False(t, m.Remove(5))
	assert.True(t, m.IsEmpty())
}

func TestMapSpansHighBits(t *testing.T) {
	m := New()
	m.Set(1)
	m.Set(1 << 40)
	m.Set(1 << 60)

	assert.Equal(t, uint64(3), m.Len())
	assert.True(t, m.Contains(1 << 40))

	min, ok := m.Min()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), min)

	max, ok := m.Max()
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<60, max)
}

func TestMapRemoveEmptiesBucket(t *testing.T) {
	m := New()
	m.Set(1 << 40)
	m.Remove(1 << 40)
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Contains(1<<40))
}
