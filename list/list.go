// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package list provides a generic singly linked list. The [List] interface
// describes the supported operation set and [Singly] is its implementation.
//
// Operations that cannot be carried out report one of [ErrEmptyList],
// [ErrInvalidPosition] or [ErrValueNotFound] (use [errors.Is] to inspect
// them); a failed operation never modifies the list.
//
// None of the types in this package are safe for concurrent use.
package list

// List is the set of operations offered by a linked list of comparable
// elements. Positions are zero-based, counted from the front of the list.
type List[T comparable] interface {
	// Len returns the number of elements in the list.
	Len() int
	// IsEmpty returns true if the list holds no element.
	IsEmpty() bool
	// Contains returns true if at least one element equals value.
	Contains(value T) bool
	// PositionOf returns the position of the first element equal to value.
	PositionOf(value T) (int, error)

	// InsertFront inserts value at position 0.
	InsertFront(value T)
	// InsertAt inserts value at the given position, in [0, Len()]. The element
	// previously at that position (and all following ones) move one position
	// later; position Len() appends to the list.
	InsertAt(position int, value T) error
	// InsertBack inserts value at position Len().
	InsertBack(value T)

	// RemoveFront removes and returns the element at position 0.
	RemoveFront() (T, error)
	// RemoveAt removes and returns the element at the given position, in
	// [0, Len()).
	RemoveAt(position int) (T, error)
	// RemoveBack removes and returns the element at position Len()-1.
	RemoveBack() (T, error)
	// Remove removes the first element equal to value.
	Remove(value T) error

	// Clear removes all elements from the list.
	Clear()
}

var _ List[int] = (*Singly[int])(nil)
