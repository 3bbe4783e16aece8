// SPDX-License-Identifier: MIT
package linkedlist

import "fmt"

// CheckInvariants walks l and reports the first broken structural invariant:
// length matches the reachable node count, head/tail are nil together, and
// tail is the last reachable node. Visible to linkedlist_test only.
func CheckInvariants[T any](l *List[T]) error {
	if l.length == 0 {
		if l.head != nil || l.tail != nil {
			return fmt.Errorf("empty list holds head=%v tail=%v", l.head != nil, l.tail != nil)
		}
		return nil
	}
	if l.head == nil || l.tail == nil {
		return fmt.Errorf("length %d but head=%v tail=%v", l.length, l.head != nil, l.tail != nil)
	}
	count := 1
	last := l.head
	for last.next != nil {
		last = last.next
		count++
		if count > l.length {
			return fmt.Errorf("more than %d reachable nodes (cycle or stale length)", l.length)
		}
	}
	if count != l.length {
		return fmt.Errorf("length %d but %d reachable nodes", l.length, count)
	}
	if last != l.tail {
		return fmt.Errorf("tail is not the last reachable node")
	}

	return nil
}

// NodeSet returns the identities of every node reachable from l.
func NodeSet[T any](l *List[T]) map[any]struct{} {
	out := make(map[any]struct{}, l.Len())
	if l == nil {
		return out
	}
	for cur := l.head; cur != nil; cur = cur.next {
		out[cur] = struct{}{}
	}

	return out
}
