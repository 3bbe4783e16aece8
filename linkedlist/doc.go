// SPDX-License-Identifier: MIT
// Package linkedlist provides a generic singly linked list with O(1) tail
// append, indexed lookup and an O(n+m) merge of two ascending lists.
//
// What
//
//   - List[T] keeps a head pointer, a tail pointer and a length counter.
//     The tail pointer exists only to make Append constant-time.
//   - Get(i) walks from head and returns a pointer into the node's storage,
//     so values are never copied on lookup.
//   - Merge(a, b) relinks the nodes of two non-decreasing lists into a new
//     non-decreasing list and leaves both inputs empty.
//   - String() renders "v0, v1, v2" (empty list ⇒ "").
//
// Merge contract
//
//	result := linkedlist.Merge(a, b)
//
//	  • a and b must each be sorted ascending; this is not checked
//	    (use MergeChecked to reject unsorted input with ErrUnsorted).
//	  • On equal values the element from a is taken first.
//	  • When one input runs out, the remainder of the other is spliced in
//	    a single step.
//	  • Afterwards a.Len() == 0 and b.Len() == 0; every node now belongs to
//	    result and only to result.
//
// Usage
//
//	a := linkedlist.FromSlice(1, 3, 5, 7)
//	b := linkedlist.FromSlice(2, 4, 6, 8)
//	m := linkedlist.Merge(a, b)
//	fmt.Println(m)          // 1, 2, 3, 4, 5, 6, 7, 8
//	v, ok := m.Get(3)       // *v == 4, ok == true
//	_, ok = m.Get(8)        // ok == false
//
// Types that do not satisfy cmp.Ordered can be merged with MergeFunc and a
// three-way comparator:
//
//	m := linkedlist.MergeFunc(a, b, func(x, y Job) int { return cmp.Compare(x.Due, y.Due) })
//
// Concurrency
//
//	A List is not safe for concurrent use. Callers that share a List across
//	goroutines must serialize access themselves.
//
// Complexity (n = a.Len(), m = b.Len())
//
//   - Append: O(1)
//   - Get:    O(i)
//   - Merge:  O(n+m) time, O(1) extra memory
//   - String: O(n)
package linkedlist
