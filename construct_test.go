// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSortedAscending(t *testing.T) {
	b, err := FromSortedAscending([]uint32{1, 2, 1 << 20, 1 << 30})
	assert.NoError(t, err)
	assert.Equal(t, uint64(4), b.Len())
	assert.True(t, b.Contains(1<<20))
}

func TestFromSortedAscendingRejectsDuplicates(t *testing.T) {
	_, err := FromSortedAscending([]uint32{1, 1, 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromSortedAscendingRejectsDescending(t *testing.T) {
	_, err := FromSortedAscending([]uint32{5, 3})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromSortedAscendingEmpty(t *testing.T) {
	b, err := FromSortedAscending(nil)
	assert.NoError(t, err)
	assert.True(t, b.IsEmpty())
}

func TestFromValuesDeduplicatesAndSorts(t *testing.T) {
	b := FromValues([]uint32{5, 1, 5, 3, 1})
	assert.Equal(t, []uint32{1, 3, 5}, b.ToSortedSlice())
}
