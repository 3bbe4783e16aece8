// SPDX-License-Identifier: MIT
// Package linkedlist declares the node and list types and the sentinel
// errors returned by the checked merge variants.
package linkedlist

import "errors"

// Sentinel errors for linkedlist operations.
var (
	// ErrUnsorted is returned by MergeChecked when an input is not in
	// non-decreasing order.
	ErrUnsorted = errors.New("linkedlist: input list is not sorted")

	// ErrNilComparator is returned by MergeFuncChecked when compare is nil.
	ErrNilComparator = errors.New("linkedlist: compare function is nil")
)

// node is a single link of the chain. next is the only reference that
// keeps the successor reachable.
type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly linked list of T.
//
// Invariants:
//   - length equals the number of nodes reachable from head.
//   - length == 0 ⇔ head == nil && tail == nil.
//   - length > 0 ⇒ tail is length-1 hops from head and tail.next == nil.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	length int
	head   *node[T]
	tail   *node[T] // non-owning; only speeds up Append
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a list holding vs in order.
func FromSlice[T any](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.Append(v)
	}

	return l
}
