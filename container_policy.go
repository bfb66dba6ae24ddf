// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

// convert applies the cheap, mutation-time half of the §4.2 policy: Array
// and Bitmap swap across arrayLimit as cardinality crosses it. Run
// containers are left alone here — converting out of Run costs materializing
// every member, so that decision is deferred to optimize(), which callers
// invoke explicitly (and which the codec writer always invokes).
func (c *container) convert() {
	switch c.Type {
	case typeArray:
		if c.Size > arrayLimit {
			c.arrToBmp()
		}
	case typeBitmap:
		if c.Size <= arrayLimit {
			c.bmpToArr()
		}
	}
}

// optimize recomputes the cheapest representation for the container's
// current contents, per the §4.2 size-in-bytes estimate:
//
//	Array:  2 * cardinality
//	Bitmap: 8192
//	Run:    2 + 4 * run_count
//
// It is idempotent and safe to call on any representation at any time.
func (c *container) optimize() {
	c.fork()
	if c.Size == 0 {
		return
	}

	switch c.Type {
	case typeArray:
		runs := countRunsInArray(c.Data)
		c.settle(runs)
	case typeBitmap:
		runs := countRunsInBitmap(c.bmp())
		c.settle(runs)
	case typeRun:
		// Already authoritative on run count.
		c.settle(c.runCount())
	}
}

// settle converts c to whichever of Array/Bitmap/Run has the smallest
// §4.2 byte estimate given a known run count, breaking ties in favor of
// the current representation to avoid needless churn.
func (c *container) settle(runs int) {
	arrBytes := 2 * int(c.Size)
	bmpBytes := 8192
	runBytes := 2 + 4*runs

	best := c.Type
	bestBytes := c.bytesEstimate()

	if arrBytes < bestBytes {
		best, bestBytes = typeArray, arrBytes
	}
	if bmpBytes < bestBytes {
		best, bestBytes = typeBitmap, bmpBytes
	}
	if runBytes < bestBytes {
		best, bestBytes = typeRun, runBytes
	}

	if best == c.Type {
		return
	}

	switch {
	case c.Type == typeArray && best == typeBitmap:
		c.arrToBmp()
	case c.Type == typeArray && best == typeRun:
		c.arrToRun()
	case c.Type == typeBitmap && best == typeArray:
		c.bmpToArr()
	case c.Type == typeBitmap && best == typeRun:
		c.bmpToRun()
	case c.Type == typeRun && best == typeArray:
		c.runToArr()
	case c.Type == typeRun && best == typeBitmap:
		c.runToBmp()
	}
}

// countRunsInArray counts maximal consecutive runs in a sorted Array store.
func countRunsInArray(a []uint16) int {
	if len(a) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(a); i++ {
		if a[i] != a[i-1]+1 {
			runs++
		}
	}
	return runs
}
