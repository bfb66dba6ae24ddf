// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import "github.com/klauspost/cpuid/v2"

// HasWideWordSupport reports whether the running CPU supports AVX2. It is
// a probe only: the package has no vector kernels and no build tag that
// selects one, so Bitmap x Bitmap operations always run kelindar/bitmap's
// scalar word loops, whatever this reports.
func HasWideWordSupport() bool {
	return cpuid.CPU.Has(cpuid.AVX2)
}
