package awsjson

//
// Reading optional members of nested value types.
//

import (
	"time"

	"github.com/sdkmodels/awsmodels/internal/optional"
)

// Opt returns fn applied to the value at key, or None when the
// key is absent or null.
func Opt[T any](v View, key string, fn func(View) T) optional.Value[T] {
	if !v.ValueExists(key) {
		return optional.None[T]()
	}
	return optional.Some(fn(v.GetObject(key)))
}

// OptString is like [Opt] for strings.
func OptString(v View, key string) optional.Value[string] {
	return Opt(v, key, View.AsString)
}

// OptInteger is like [Opt] for int32.
func OptInteger(v View, key string) optional.Value[int32] {
	return Opt(v, key, View.AsInteger)
}

// OptInt64 is like [Opt] for int64.
func OptInt64(v View, key string) optional.Value[int64] {
	return Opt(v, key, View.AsInt64)
}

// OptBool is like [Opt] for bool.
func OptBool(v View, key string) optional.Value[bool] {
	return Opt(v, key, View.AsBool)
}

// OptTimestamp is like [Opt] for epoch-seconds timestamps.
func OptTimestamp(v View, key string) optional.Value[time.Time] {
	return Opt(v, key, View.AsTimestamp)
}

// OptBlob is like [Opt] for base64-encoded blobs.
func OptBlob(v View, key string) optional.Value[[]byte] {
	return Opt(v, key, View.AsBlob)
}

// OptStringList is like [Opt] for lists of strings.
func OptStringList(v View, key string) optional.Value[[]string] {
	return Opt(v, key, func(view View) []string {
		return DecodeStringList(view.AsArray())
	})
}
