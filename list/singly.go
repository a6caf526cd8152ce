// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package list

import (
	"fmt"
	"strings"
)

type (
	// Singly is a singly linked list implementation of [List]. The zero value
	// is an empty list ready to use.
	Singly[T comparable] struct {
		head  *node[T] // The node at position 0, nil if the list is empty
		count int      // The number of nodes reachable from head
	}

	// node is a node in a [Singly] list.
	node[T comparable] struct {
		next  *node[T]
		value T
	}
)

// NewSingly creates a new, empty [Singly] list.
func NewSingly[T comparable]() *Singly[T] {
	return &Singly[T]{}
}

// Len returns the number of elements in the list.
func (l *Singly[T]) Len() int {
	return l.count
}

// IsEmpty returns true if the list has no element.
func (l *Singly[T]) IsEmpty() bool {
	return l.count == 0
}

// Contains returns true if the list holds an element equal to value.
func (l *Singly[T]) Contains(value T) bool {
	_, found := l.find(value)
	return found
}

// PositionOf returns the position of the first element equal to value. It
// returns [ErrEmptyList] if the list is empty, and [ErrValueNotFound] if no
// element matches.
func (l *Singly[T]) PositionOf(value T) (int, error) {
	if l.head == nil {
		return 0, opError(opPositionOf, ErrEmptyList)
	}
	pos, found := l.find(value)
	if !found {
		return 0, opError(opPositionOf, ErrValueNotFound)
	}
	return pos, nil
}

// InsertFront adds value at the front of the list.
func (l *Singly[T]) InsertFront(value T) {
	l.head = &node[T]{next: l.head, value: value}
	l.count++
}

// InsertAt adds value at the specified position, shifting the element
// currently there (if any) one position later. It returns a [*PositionError]
// if position is not in [0, Len()].
func (l *Singly[T]) InsertAt(position int, value T) error {
	if position < 0 || position > l.count {
		return &PositionError{Op: opInsertAt, Position: position, Size: l.count}
	}
	if position == 0 {
		l.InsertFront(value)
		return nil
	}

	prev := l.nodeAt(position - 1)
	prev.next = &node[T]{next: prev.next, value: value}
	l.count++
	return nil
}

// InsertBack adds value at the end of the list.
func (l *Singly[T]) InsertBack(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
		l.head = n
	} else {
		l.nodeAt(l.count - 1).next = n
	}
	l.count++
}

// RemoveFront removes the first element of the list and returns it. It returns
// [ErrEmptyList] if the list is empty.
func (l *Singly[T]) RemoveFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, opError(opRemoveFront, ErrEmptyList)
	}
	return l.unlink(nil, l.head), nil
}

// RemoveAt removes the element at the specified position and returns it. It
// returns a [*PositionError] if position is not in [0, Len()).
func (l *Singly[T]) RemoveAt(position int) (T, error) {
	if position < 0 || position >= l.count {
		var zero T
		return zero, &PositionError{Op: opRemoveAt, Position: position, Size: l.count}
	}
	if position == 0 {
		return l.unlink(nil, l.head), nil
	}

	prev := l.nodeAt(position - 1)
	return l.unlink(prev, prev.next), nil
}

// RemoveBack removes the last element of the list and returns it. It returns
// [ErrEmptyList] if the list is empty.
func (l *Singly[T]) RemoveBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, opError(opRemoveBack, ErrEmptyList)
	}

	var prev *node[T]
	last := l.head
	for last.next != nil {
		prev = last
		last = last.next
	}
	return l.unlink(prev, last), nil
}

// Remove removes the first element equal to value from the list. It returns
// [ErrEmptyList] if the list is empty, and [ErrValueNotFound] if no element
// matches.
func (l *Singly[T]) Remove(value T) error {
	if l.head == nil {
		return opError(opRemove, ErrEmptyList)
	}

	var prev *node[T]
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value == value {
			l.unlink(prev, n)
			return nil
		}
	}
	return opError(opRemove, ErrValueNotFound)
}

// Clear removes every element from the list, leaving it empty and ready for
// further use.
func (l *Singly[T]) Clear() {
	n := l.head
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.count = 0
}

// String returns the elements of the list formatted as "[a b c]".
func (l *Singly[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// find returns the position of the first node holding value, and whether one
// was found at all.
func (l *Singly[T]) find(value T) (int, bool) {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return pos, true
		}
		pos++
	}
	return 0, false
}

// nodeAt returns the node at the specified position, which must be in
// [0, Len()).
func (l *Singly[T]) nodeAt(position int) *node[T] {
	n := l.head
	for range position {
		n = n.next
	}
	return n
}

// unlink detaches n from the chain and returns its value. prev must be the
// node immediately before n, or nil if n is the head.
func (l *Singly[T]) unlink(prev, n *node[T]) T {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	n.next = nil
	l.count--
	return n.value
}
