// SPDX-License-Identifier: MIT
package linkedlist

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the list as a JSON array, head first.
// An empty list encodes as [].
func (l *List[T]) MarshalJSON() ([]byte, error) {
	vs := l.Values()
	if vs == nil {
		vs = []T{}
	}

	return json.Marshal(vs)
}

// UnmarshalJSON decodes a JSON array and appends its elements in order.
// Existing elements are kept. JSON null is a no-op.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var vs []T
	if err := json.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("linkedlist: decode: %w", err)
	}
	for _, v := range vs {
		l.Append(v)
	}

	return nil
}
