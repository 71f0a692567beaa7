// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a present-or-absent value decoded from a JSON object key.
//
// A key missing from the payload leaves Set == false. A key present with a
// JSON null sets Set and Null; any other value sets Set and Value.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// IsZero reports whether the key was absent. It makes the omitzero tag
// option drop unset fields when encoding.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

// MarshalJSON implements [json.Marshaler]. Null and unset values encode as
// JSON null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}

	return json.Marshal(o.Value)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}

	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Present reports whether the key was supplied with a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}
