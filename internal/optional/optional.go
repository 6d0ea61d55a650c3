// Package optional models fields of partial-update requests.
//
// A Value distinguishes three JSON states that a plain pointer cannot:
//
//	{}                  -> absent: leave the field unchanged
//	{"field": null}     -> present and null: clear the field
//	{"field": "value"}  -> present with a value: overwrite the field
//
// encoding/json only calls UnmarshalJSON for keys that appear in the document,
// so a zero Value always means "absent".
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is a field that may be absent, explicitly null, or set.
type Value[T any] struct {
	present bool
	null    bool
	value   T
}

// Of returns a present, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{present: true, value: v}
}

// Null returns a present value that was explicitly null.
func Null[T any]() Value[T] {
	return Value[T]{present: true, null: true}
}

// Present reports whether the field appeared in the request.
func (v Value[T]) Present() bool { return v.present }

// IsNull reports whether the field appeared in the request as null.
func (v Value[T]) IsNull() bool { return v.present && v.null }

// Get returns the value and whether it is present and non-null.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.present && !v.null
}

// Ptr returns nil for null values and a pointer to a copy otherwise.
// Callers should check Present first.
func (v Value[T]) Ptr() *T {
	if !v.present || v.null {
		return nil
	}
	out := v.value
	return &out
}

// ApplyTo writes the value into dst when present. A null value clears dst.
func (v Value[T]) ApplyTo(dst **T) {
	if !v.present {
		return
	}
	*dst = v.Ptr()
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.null = true
		var zero T
		v.value = zero
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.value)
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.present || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
