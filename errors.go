// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package roaring

import (
	"errors"
	"strconv"
)

// Sentinel errors returned by the fallible entry points of the package.
// Pure operations (Insert, Remove, Contains, Len, iteration, set algebra)
// never fail; only input boundaries (range construction, sorted
// construction, deserialization) can.
var (
	// ErrInvalidInput is returned when constructor input violates a stated
	// precondition, e.g. FromSortedAscending given non-ascending values.
	ErrInvalidInput = errors.New("roaring: invalid input")

	// ErrRangeBounds is returned by InsertRange/RemoveRange/FlipRange when
	// the bounds are inverted or would overflow uint32.
	ErrRangeBounds = errors.New("roaring: invalid range bounds")

	// ErrDeserialize is returned by Deserialize when the byte stream fails
	// cookie, cardinality, ordering, or bounds validation.
	ErrDeserialize = errors.New("roaring: malformed serialized bitmap")
)

// deserializeError wraps ErrDeserialize with the byte offset and field
// that failed validation, for diagnostics only (not part of the contract).
type deserializeError struct {
	offset int
	field  string
	err    error
}

func (e *deserializeError) Error() string {
	return "roaring: " + e.field + " at offset " + strconv.Itoa(e.offset) + ": " + e.err.Error()
}

func (e *deserializeError) Unwrap() error { return ErrDeserialize }

func badField(offset int, field string, cause error) error {
	return &deserializeError{offset: offset, field: field, err: cause}
}
