// Package optional contains safer code to handle optional values.
//
// Every member of an operation input is an optional [Value]: the zero
// value is None, which means "not set" and is never serialized.
package optional

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"reflect"
)

// Value is an optional value. The zero value of this structure
// is equivalent to the one you get when calling [None].
type Value[T any] struct {
	// indirect is the indirect pointer to the value.
	indirect *T
}

// None constructs an empty value.
func None[T any]() Value[T] {
	return Value[T]{nil}
}

// Some constructs a some value unless T is a pointer and points to
// nil, in which case [Some] is equivalent to [None].
func Some[T any](value T) Value[T] {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Invalid:
		return None[T]()
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return None[T]()
		}
	}
	return Value[T]{&value}
}

// errIsNone is returned by Unwrap when the value is None.
var errIsNone = errors.New("is none")

// IsNone returns whether this [Value] is empty.
func (v Value[T]) IsNone() bool {
	return v.indirect == nil
}

// IsSome returns whether this [Value] has been set.
func (v Value[T]) IsSome() bool {
	return v.indirect != nil
}

// Unwrap returns the underlying value or panics. In case of
// panic, the value passed to panic is an error.
func (v Value[T]) Unwrap() T {
	if v.indirect == nil {
		panic(errIsNone)
	}
	return *v.indirect
}

// UnwrapOr returns the fallback if the [Value] is empty.
func (v Value[T]) UnwrapOr(fallback T) T {
	if v.indirect == nil {
		return fallback
	}
	return *v.indirect
}

// Set stores value into the [Value] using the same rules of [Some].
func (v *Value[T]) Set(value T) {
	*v = Some(value)
}

// Reset makes the [Value] empty.
func (v *Value[T]) Reset() {
	v.indirect = nil
}

// Map returns a [Value] containing fn applied to the underlying value, or
// an empty [Value] when v is empty. Use it to deep copy reference types.
func Map[T any](v Value[T], fn func(T) T) Value[T] {
	if v.indirect == nil {
		return None[T]()
	}
	return Some(fn(*v.indirect))
}

var _ json.Unmarshaler = &Value[int]{}

// UnmarshalJSON implements json.Unmarshaler. Note that a `null` JSON
// value always leads to an empty [Value].
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte(`null`)) {
		v.indirect = nil
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*v = Some(value)
	return nil
}

var _ json.Marshaler = Value[int]{}

// MarshalJSON implements json.Marshaler. An empty value serializes
// to `null` and otherwise we serialize the underling value.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if v.indirect == nil {
		return []byte(`null`), nil
	}
	return json.Marshal(*v.indirect)
}

var _ xml.Unmarshaler = &Value[int]{}

// UnmarshalXML implements xml.Unmarshaler. The element being present
// is enough for the [Value] to become set.
func (v *Value[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var value T
	if err := d.DecodeElement(&value, &start); err != nil {
		return err
	}
	*v = Some(value)
	return nil
}
