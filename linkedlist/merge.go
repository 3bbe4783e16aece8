// SPDX-License-Identifier: MIT
package linkedlist

import (
	"cmp"
	"fmt"
)

// Merge combines two non-decreasing lists into a new non-decreasing list.
//
// Nodes are moved, not copied: on return a and b are empty and every node
// they held belongs to the result. On equal values the element from a comes
// first. Sortedness of the inputs is a precondition and is not verified;
// see MergeChecked. A nil operand is treated as empty.
func Merge[T cmp.Ordered](a, b *List[T]) *List[T] {
	return MergeFunc(a, b, cmp.Compare[T])
}

// MergeFunc is Merge with a caller-supplied three-way comparator.
// compare(x, y) must return a negative number when x < y, zero when x == y
// and a positive number when x > y. The node from a is taken whenever
// compare(a, b) <= 0. MergeFunc panics if compare is nil.
func MergeFunc[T any](a, b *List[T], compare func(x, y T) int) *List[T] {
	if compare == nil {
		panic(ErrNilComparator)
	}
	out := New[T]()
	if a == nil {
		a = New[T]()
	}
	if b == nil {
		b = New[T]()
	}
	// Same list on both sides: hand its chain over once.
	if a == b {
		out.splice(a.takeAll())
		return out
	}

	for a.head != nil && b.head != nil {
		if compare(a.head.val, b.head.val) <= 0 {
			out.link(a.takeFront())
		} else {
			out.link(b.takeFront())
		}
	}
	// At most one side still has nodes; its tail is already ordered.
	out.splice(a.takeAll())
	out.splice(b.takeAll())

	return out
}

// MergeChecked verifies that a and b are non-decreasing before merging.
// If either is not, it returns an error wrapping ErrUnsorted and leaves both
// inputs untouched.
func MergeChecked[T cmp.Ordered](a, b *List[T]) (*List[T], error) {
	return MergeFuncChecked(a, b, cmp.Compare[T])
}

// MergeFuncChecked is MergeChecked with a caller-supplied comparator.
// Returns ErrNilComparator if compare is nil.
func MergeFuncChecked[T any](a, b *List[T], compare func(x, y T) int) (*List[T], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	if i := firstDescent(a, compare); i >= 0 {
		return nil, fmt.Errorf("%w: left operand descends at index %d", ErrUnsorted, i)
	}
	if i := firstDescent(b, compare); i >= 0 {
		return nil, fmt.Errorf("%w: right operand descends at index %d", ErrUnsorted, i)
	}

	return MergeFunc(a, b, compare), nil
}

// IsSorted reports whether l is in non-decreasing order.
func IsSorted[T cmp.Ordered](l *List[T]) bool {
	return firstDescent(l, cmp.Compare[T]) < 0
}

// IsSortedFunc reports whether l is in non-decreasing order under compare.
func IsSortedFunc[T any](l *List[T], compare func(x, y T) int) bool {
	return firstDescent(l, compare) < 0
}

// firstDescent returns the index of the first element that is smaller than
// its predecessor, or -1 if there is none.
func firstDescent[T any](l *List[T], compare func(x, y T) int) int {
	if l.Len() < 2 {
		return -1
	}
	i := 1
	for prev, cur := l.head, l.head.next; cur != nil; prev, cur = cur, cur.next {
		if compare(prev.val, cur.val) > 0 {
			return i
		}
		i++
	}

	return -1
}
