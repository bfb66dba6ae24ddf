// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// mergeContainers walks the two sorted key sequences of left and right,
// dispatching matching keys to op.combine and keeping (or dropping)
// unmatched keys per keepLeft/keepRight — this single routine realizes
// union, intersection, difference, and symmetric difference, which differ
// only in which operator and which unmatched-key policy they use.
func mergeContainers(left, right *Bitmap, op combiner, keepLeft, keepRight bool) ([]container, []uint16) {
	var outC []container
	var outK []uint16
	i, j := 0, 0

	for i < len(left.containers) && j < len(right.containers) {
		hi, hj := left.index[i], right.index[j]
		switch {
		case hi < hj:
			if keepLeft {
				outC = append(outC, left.containers[i].clone())
				outK = append(outK, hi)
			}
			i++
		case hi > hj:
			if keepRight {
				outC = append(outC, right.containers[j].clone())
				outK = append(outK, hj)
			}
			j++
		default:
			merged := op.combine(&left.containers[i], &right.containers[j])
			if !merged.isEmpty() {
				merged.key = hi
				merged.convert()
				outC = append(outC, merged)
				outK = append(outK, hi)
			}
			i++
			j++
		}
	}
	if keepLeft {
		for ; i < len(left.containers); i++ {
			outC = append(outC, left.containers[i].clone())
			outK = append(outK, left.index[i])
		}
	}
	if keepRight {
		for ; j < len(right.containers); j++ {
			outC = append(outC, right.containers[j].clone())
			outK = append(outK, right.index[j])
		}
	}
	return outC, outK
}

func orEmpty(other *Bitmap) *Bitmap {
	if other == nil {
		return New()
	}
	return other
}

// Union returns a new Bitmap containing every member of b or other.
func (b *Bitmap) Union(other *Bitmap) *Bitmap {
	c, k := mergeContainers(b, orEmpty(other), opOr, true, true)
	return &Bitmap{containers: c, index: k}
}

// UnionInPlace replaces b's contents with b ∪ other.
func (b *Bitmap) UnionInPlace(other *Bitmap) {
	c, k := mergeContainers(b, orEmpty(other), opOr, true, true)
	b.containers, b.index = c, k
	b.generation++
}

// Intersection returns a new Bitmap containing every member of both b and
// other.
func (b *Bitmap) Intersection(other *Bitmap) *Bitmap {
	c, k := mergeContainers(b, orEmpty(other), opAnd, false, false)
	return &Bitmap{containers: c, index: k}
}

// IntersectionInPlace replaces b's contents with b ∩ other.
func (b *Bitmap) IntersectionInPlace(other *Bitmap) {
	c, k := mergeContainers(b, orEmpty(other), opAnd, false, false)
	b.containers, b.index = c, k
	b.generation++
}

// Difference returns a new Bitmap containing members of b that are not
// members of other (b \ other).
func (b *Bitmap) Difference(other *Bitmap) *Bitmap {
	c, k := mergeContainers(b, orEmpty(other), opAndNot, true, false)
	return &Bitmap{containers: c, index: k}
}

// DifferenceInPlace replaces b's contents with b \ other.
func (b *Bitmap) DifferenceInPlace(other *Bitmap) {
	c, k := mergeContainers(b, orEmpty(other), opAndNot, true, false)
	b.containers, b.index = c, k
	b.generation++
}

// SymmetricDifference returns a new Bitmap containing members present in
// exactly one of b and other (b △ other).
func (b *Bitmap) SymmetricDifference(other *Bitmap) *Bitmap {
	c, k := mergeContainers(b, orEmpty(other), opXor, true, true)
	return &Bitmap{containers: c, index: k}
}

// SymmetricDifferenceInPlace replaces b's contents with b △ other.
func (b *Bitmap) SymmetricDifferenceInPlace(other *Bitmap) {
	c, k := mergeContainers(b, orEmpty(other), opXor, true, true)
	b.containers, b.index = c, k
	b.generation++
}

// IsDisjoint reports whether b and other share no members.
func (b *Bitmap) IsDisjoint(other *Bitmap) bool {
	other = orEmpty(other)
	i, j := 0, 0
	for i < len(b.containers) && j < len(other.containers) {
		hi, hj := b.index[i], other.index[j]
		switch {
		case hi < hj:
			i++
		case hi > hj:
			j++
		default:
			if !containersDisjoint(&b.containers[i], &other.containers[j]) {
				return false
			}
			i++
			j++
		}
	}
	return true
}

func containersDisjoint(a, c *container) bool {
	small, big := a, c
	if small.Size > big.Size {
		small, big = big, small
	}
	disjoint := true
	small.rangeAsc(func(v uint16) bool {
		if big.contains(v) {
			disjoint = false
			return false
		}
		return true
	})
	return disjoint
}

// IsSubset reports whether every member of b is also a member of other.
func (b *Bitmap) IsSubset(other *Bitmap) bool {
	other = orEmpty(other)
	if b.Len() > other.Len() {
		return false
	}
	i, j := 0, 0
	for i < len(b.containers) {
		if j >= len(other.containers) || b.index[i] < other.index[j] {
			return false // key present in b but absent (or skipped past) in other
		}
		if b.index[i] > other.index[j] {
			j++
			continue
		}
		ok := true
		b.containers[i].rangeAsc(func(v uint16) bool {
			if !other.containers[j].contains(v) {
				ok = false
				return false
			}
			return true
		})
		if !ok {
			return false
		}
		i++
		j++
	}
	return true
}

// IsSuperset reports whether every member of other is also a member of b.
func (b *Bitmap) IsSuperset(other *Bitmap) bool {
	return orEmpty(other).IsSubset(b)
}

// Equals reports whether b and other contain exactly the same members.
func (b *Bitmap) Equals(other *Bitmap) bool {
	other = orEmpty(other)
	if b.Len() != other.Len() || len(b.containers) != len(other.containers) {
		return false
	}
	for i := range b.containers {
		if b.index[i] != other.index[i] || b.containers[i].Size != other.containers[i].Size {
			return false
		}
		eq := true
		b.containers[i].rangeAsc(func(v uint16) bool {
			if !other.containers[i].contains(v) {
				eq = false
				return false
			}
			return true
		})
		if !eq {
			return false
		}
	}
	return true
}
