// Package runtimex contains assertions for conditions that only a
// programming error can violate.
package runtimex

import "fmt"

// Assert panics with message unless cond holds.
func Assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}

// PanicIfNil panics with message when v is nil.
func PanicIfNil(v any, message string) {
	Assert(v != nil, message)
}

// PanicOnError panics with an error wrapping err, if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}
