// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rangeBitmap(lo, hi uint32) *Bitmap {
	b := New()
	_ = b.InsertRange(uint64(lo), uint64(hi))
	return b
}

func TestBitmapUnionIntersectionCardinality(t *testing.T) {
	a := rangeBitmap(0, 100_000)
	b := rangeBitmap(50_000, 150_000)

	assert.Equal(t, uint64(50_000), a.Intersection(b).Len())
	assert.Equal(t, uint64(150_000), a.Union(b).Len())
	assert.Equal(t, uint64(100_000), a.SymmetricDifference(b).Len())
}

func TestBitmapAlgebraLaws(t *testing.T) {
	a := rangeBitmap(0, 1000)
	b := rangeBitmap(500, 1500)
	empty := New()

	assert.True(t, a.Difference(a).IsEmpty(), "A \\ A == ∅")
	assert.True(t, a.Union(empty).Equals(a), "A ∪ ∅ == A")
	assert.True(t, a.Intersection(a).Equals(a), "A ∩ A == A")
	assert.True(t, a.SymmetricDifference(a).IsEmpty(), "A △ A == ∅")

	assert.True(t, a.Union(b).Equals(b.Union(a)), "union commutes")
	assert.True(t, a.Intersection(b).Equals(b.Intersection(a)), "intersection commutes")
	assert.True(t, a.SymmetricDifference(b).Equals(b.SymmetricDifference(a)), "xor commutes")

	union, inter := a.Union(b).Len(), a.Intersection(b).Len()
	assert.Equal(t, a.Len()+b.Len(), union+inter)
}

func TestBitmapInPlaceMatchesOutOfPlace(t *testing.T) {
	a := rangeBitmap(0, 1000)
	b := rangeBitmap(500, 1500)

	want := a.Union(b)
	got := a.Clone()
	got.UnionInPlace(b)
	assert.True(t, want.Equals(got))

	want = a.Intersection(b)
	got = a.Clone()
	got.IntersectionInPlace(b)
	assert.True(t, want.Equals(got))

	want = a.Difference(b)
	got = a.Clone()
	got.DifferenceInPlace(b)
	assert.True(t, want.Equals(got))

	want = a.SymmetricDifference(b)
	got = a.Clone()
	got.SymmetricDifferenceInPlace(b)
	assert.True(t, want.Equals(got))
}

func TestBitmapDisjointSubsetSuperset(t *testing.T) {
	a := rangeBitmap(0, 100)
	b := rangeBitmap(200, 300)
	c := rangeBitmap(0, 50)

	assert.True(t, a.IsDisjoint(b))
	assert.False(t, a.IsDisjoint(c))

	assert.True(t, c.IsSubset(a))
	assert.True(t, a.IsSuperset(c))
	assert.False(t, a.IsSubset(c))
}

func TestBitmapEquals(t *testing.T) {
	a := rangeBitmap(0, 1000)
	b := rangeBitmap(0, 1000)
	assert.True(t, a.Equals(b))

	b.Insert(2000)
	assert.False(t, a.Equals(b))
}
