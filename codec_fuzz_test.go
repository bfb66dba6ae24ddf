// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "testing"

// FuzzDeserialize feeds arbitrary byte strings to Deserialize, which must
// never panic: malformed input is always reported as an error, never a
// crash, per spec.md §7 ("no panics on external input after validation").
func FuzzDeserialize(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x30, 0x3B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add(rangeBitmap(0, 65_536).Serialize())
	f.Add(rangeBitmap(0, 10_000).Serialize())
	f.Add(FromValues([]uint32{1, 1 << 16, 1 << 31}).Serialize())

	f.Fuzz(func(t *testing.T, data []byte) {
		b, err := Deserialize(data)
		if err != nil {
			return
		}
		// A successfully parsed Bitmap must itself re-serialize and
		// re-parse without error: the reader never accepts a structure
		// the writer couldn't reproduce.
		again := b.Serialize()
		if _, err := Deserialize(again); err != nil {
			t.Fatalf("round-trip failed after accepting input: %v", err)
		}
	})
}
