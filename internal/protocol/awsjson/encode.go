// Package awsjson implements the parts of the awsJson1_0, awsJson1_1
// and restJson1 protocols shared by the operation models.
package awsjson

import (
	"sort"
	"time"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	smithytime "github.com/aws/smithy-go/time"
)

// Document is the function type used by models to emit their members
// into the top-level JSON object of a payload.
type Document func(object *smithyjson.Object)

// MarshalPayload returns the JSON object produced by doc.
func MarshalPayload(doc Document) []byte {
	encoder := smithyjson.NewEncoder()
	object := encoder.Value.Object()
	doc(object)
	object.Close()
	return encoder.Bytes()
}

// Jsonizer is a nested value type knowing how to emit itself.
type Jsonizer interface {
	Jsonize(value smithyjson.Value)
}

// EncodeList emits list as a JSON array using fn for each element.
func EncodeList[T any](value smithyjson.Value, list []T, fn func(smithyjson.Value, T)) {
	array := value.Array()
	for _, entry := range list {
		fn(array.Value(), entry)
	}
	array.Close()
}

// EncodeStringList emits a list of strings.
func EncodeStringList(value smithyjson.Value, list []string) {
	EncodeList(value, list, func(v smithyjson.Value, s string) {
		v.String(s)
	})
}

// EncodeJsonizerList emits a list of nested value types.
func EncodeJsonizerList[T Jsonizer](value smithyjson.Value, list []T) {
	EncodeList(value, list, func(v smithyjson.Value, entry T) {
		entry.Jsonize(v)
	})
}

// EncodeStringMap emits a map of strings with keys in sorted order.
func EncodeStringMap(value smithyjson.Value, m map[string]string) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	object := value.Object()
	for _, key := range keys {
		object.Key(key).String(m[key])
	}
	object.Close()
}

// EncodeTimestamp emits t as epoch seconds.
func EncodeTimestamp(value smithyjson.Value, t time.Time) {
	value.Double(smithytime.FormatEpochSeconds(t))
}

// DecodeList converts the views of a JSON array using fn.
func DecodeList[T any](views []View, fn func(View) T) []T {
	out := make([]T, 0, len(views))
	for _, view := range views {
		out = append(out, fn(view))
	}
	return out
}

// DecodeStringList converts the views of a JSON array of strings.
func DecodeStringList(views []View) []string {
	return DecodeList(views, View.AsString)
}

// DecodeStringMap converts the members of a JSON object of strings.
func DecodeStringMap(views map[string]View) map[string]string {
	out := make(map[string]string, len(views))
	for key, view := range views {
		out[key] = view.AsString()
	}
	return out
}
