// SPDX-License-Identifier: MIT
// Package lvlist is an in-memory ordered singly linked list with an
// allocation-free merge, plus a small CLI that drives it.
//
// 🚀 What is lvlist?
//
//	A generic List[T] with:
//		• O(1) tail append (head + non-owning tail pointer)
//		• indexed lookup returning a pointer into the stored value
//		• comma-joined rendering ("1, 2, 3")
//		• Merge(a, b): two ascending lists → one ascending list by
//		  relinking nodes; both inputs end up empty
//
// ✨ Guarantees
//
//   - Left-stable merge – on equal values the element from a comes first
//   - No copies – Merge moves nodes; pointers from Get stay valid
//   - Single owner – after Merge no node is reachable from two lists
//
// Layout:
//
//	linkedlist/       — List[T], Merge, MergeFunc, MergeChecked, JSON codec
//	internal/config/  — koanf-based settings for the CLI
//	internal/cli/     — cobra commands (merge, version)
//	cmd/listmerge/    — CLI entry point
//
// Quick example:
//
//	a := linkedlist.FromSlice(1, 3, 5, 7)
//	b := linkedlist.FromSlice(2, 4, 6, 8)
//	fmt.Println(linkedlist.Merge(a, b)) // 1, 2, 3, 4, 5, 6, 7, 8
//
//	go install github.com/katalvlaran/lvlist/cmd/listmerge@latest
package lvlist
