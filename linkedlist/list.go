// SPDX-License-Identifier: MIT
package linkedlist

import (
	"fmt"
	"iter"
	"strings"
)

// separator joins values in String.
const separator = ", "

// Append adds v at the tail in O(1).
func (l *List[T]) Append(v T) {
	n := &node[T]{val: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// Len returns the number of elements. A nil list has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.length
}

// Get returns a pointer to the value at zero-based position i.
// The pointer refers to the stored value, not a copy, and stays valid for
// as long as the node is alive. Returns (nil, false) if i < 0 or i >= Len().
func (l *List[T]) Get(i int) (*T, bool) {
	if i < 0 || i >= l.Len() {
		return nil, false
	}
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return &cur.val, true
}

// Values returns a copy of the elements from head to tail.
// An empty list yields nil.
func (l *List[T]) Values() []T {
	if l.Len() == 0 {
		return nil
	}
	out := make([]T, 0, l.length)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.val)
	}

	return out
}

// All yields (index, value) pairs from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		i := 0
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(i, cur.val) {
				return
			}
			i++
		}
	}
}

// String joins the values head→tail with ", ". An empty list renders as "".
func (l *List[T]) String() string {
	if l.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		if cur != l.head {
			sb.WriteString(separator)
		}
		fmt.Fprint(&sb, cur.val)
	}

	return sb.String()
}

// reset drops every reference the list holds. The nodes themselves are
// untouched so a caller that already took them keeps a valid chain.
func (l *List[T]) reset() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

// takeFront detaches the head node and returns it with next cleared.
// The caller must ensure the list is not empty.
func (l *List[T]) takeFront() *node[T] {
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	n.next = nil

	return n
}

// takeAll detaches the whole chain and leaves l empty.
func (l *List[T]) takeAll() (head, tail *node[T], length int) {
	head, tail, length = l.head, l.tail, l.length
	l.reset()

	return head, tail, length
}

// link appends a single detached node.
func (l *List[T]) link(n *node[T]) {
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// splice appends a detached chain of length nodes ending at tail.
func (l *List[T]) splice(head, tail *node[T], length int) {
	if head == nil {
		return
	}
	if l.tail == nil {
		l.head = head
	} else {
		l.tail.next = head
	}
	l.tail = tail
	l.length += length
}
