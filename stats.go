// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// Stats summarizes a Bitmap's internal shape, useful for diagnosing memory
// use and deciding whether an Optimize pass is worthwhile.
type Stats struct {
	Containers       int
	ArrayContainers  int
	BitmapContainers int
	RunContainers    int
	Cardinality      uint64
	SerializedBytes  int // estimate, see container.bytesEstimate
}

// Stats computes a Stats snapshot of b.
func (b *Bitmap) Stats() Stats {
	var s Stats
	s.Containers = len(b.containers)
	for i := range b.containers {
		c := &b.containers[i]
		switch c.Type {
		case typeArray:
			s.ArrayContainers++
		case typeBitmap:
			s.BitmapContainers++
		case typeRun:
			s.RunContainers++
		}
		s.Cardinality += uint64(c.Size)
		s.SerializedBytes += c.bytesEstimate()
	}
	s.SerializedBytes += headerBytes(b)
	return s
}
