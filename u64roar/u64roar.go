// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package u64roar extends roaring.Bitmap's 32-bit universe to 64-bit
// values by keying a sorted directory of *roaring.Bitmap on the high 32
// bits of each value, the same way roaring.Bitmap itself keys Containers
// on the high 16 bits of a uint32.
package u64roar

import (
	"sort"

	"github.com/axiomware/roaring"
)

// Map is a compressed set of uint64 values.
type Map struct {
	keys []uint32
	maps []*roaring.Bitmap
}

// New returns an empty Map.
func New() *Map {
	return &Map{}
}

func split(v uint64) (hi, lo uint32) {
	return uint32(v >> 32), uint32(v)
}

func (m *Map) find(hi uint32) (int, bool) {
	i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= hi })
	return i, i < len(m.keys) && m.keys[i] == hi
}

// Set adds v to the map, returning whether it was newly added.
func (m *Map) Set(v uint64) bool {
	hi, lo := split(v)
	idx, exists := m.find(hi)
	if !exists {
		m.keys = append(m.keys, 0)
		copy(m.keys[idx+1:], m.keys[idx:len(m.keys)-1])
		m.keys[idx] = hi

		m.maps = append(m.maps, nil)
		copy(m.maps[idx+1:], m.maps[idx:len(m.maps)-1])
		m.maps[idx] = roaring.New()
	}
	return m.maps[idx].Insert(lo)
}

// Remove deletes v from the map, returning whether it was present.
func (m *Map) Remove(v uint64) bool {
	hi, lo := split(v)
	idx, exists := m.find(hi)
	if !exists {
		return false
	}
	removed := m.maps[idx].Remove(lo)
	if removed && m.maps[idx].IsEmpty() {
		copy(m.keys[idx:], m.keys[idx+1:])
		m.keys = m.keys[:len(m.keys)-1]
		copy(m.maps[idx:], m.maps[idx+1:])
		m.maps = m.maps[:len(m.maps)-1]
	}
	return removed
}

// Contains reports whether v is a member of the map.
func (m *Map) Contains(v uint64) bool {
	hi, lo := split(v)
	idx, exists := m.find(hi)
	return exists && m.maps[idx].Contains(lo)
}

// Len returns the number of members in the map.
func (m *Map) Len() uint64 {
	var n uint64
	for _, bm := range m.maps {
		n += bm.Len()
	}
	return n
}

// IsEmpty reports whether the map has no members.
func (m *Map) IsEmpty() bool {
	return len(m.maps) == 0
}

// Min returns the smallest member, or false if the map is empty.
func (m *Map) Min() (uint64, bool) {
	if len(m.maps) == 0 {
		return 0, false
	}
	lo, _ := m.maps[0].Min()
	return uint64(m.keys[0])<<32 | uint64(lo), true
}

// Max returns the largest member, or false if the map is empty.
func (m *Map) Max() (uint64, bool) {
	if len(m.maps) == 0 {
		return 0, false
	}
	n := len(m.maps) - 1
	lo, _ := m.maps[n].Max()
	return uint64(m.keys[n])<<32 | uint64(lo), true
}
