// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package list

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyList is returned by operations that need at least one element
	// when called on an empty list.
	ErrEmptyList = errors.New("list is empty")
	// ErrInvalidPosition is returned by positional operations called with a
	// position outside of the valid range.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrValueNotFound is returned by search operations when no element matches
	// the searched value.
	ErrValueNotFound = errors.New("value not found")
)

// PositionError reports a position that is out of range for a positional
// operation. It wraps [ErrInvalidPosition].
type PositionError struct {
	Op       string // The operation that failed, e.g. "InsertAt"
	Position int    // The requested position
	Size     int    // The list size at the time of the call
}

func (e *PositionError) Error() string {
	valid := fmt.Sprintf("[0, %d)", e.Size)
	if e.Op == opInsertAt {
		valid = fmt.Sprintf("[0, %d]", e.Size)
	}
	return fmt.Sprintf("%s: %v: %d is not in %s", e.Op, ErrInvalidPosition, e.Position, valid)
}

func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

// Operation names used in error messages.
const (
	opPositionOf  = "PositionOf"
	opInsertAt    = "InsertAt"
	opRemoveFront = "RemoveFront"
	opRemoveAt    = "RemoveAt"
	opRemoveBack  = "RemoveBack"
	opRemove      = "Remove"
)

// opError decorates err with the name of the operation that produced it.
func opError(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
