package awsjson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOpt(t *testing.T) {
	view, err := Parse([]byte(`{"s":"","n":0,"b":false,"l":[],"null":null,"blob":"AQI="}`))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("present zero values are Some", func(t *testing.T) {
		if v := OptString(view, "s"); !v.IsSome() || v.Unwrap() != "" {
			t.Fatal("unexpected string", v)
		}
		if v := OptInteger(view, "n"); !v.IsSome() || v.Unwrap() != 0 {
			t.Fatal("unexpected integer", v)
		}
		if v := OptInt64(view, "n"); !v.IsSome() {
			t.Fatal("unexpected int64", v)
		}
		if v := OptBool(view, "b"); !v.IsSome() || v.Unwrap() {
			t.Fatal("unexpected bool", v)
		}
		if v := OptStringList(view, "l"); !v.IsSome() || len(v.Unwrap()) != 0 {
			t.Fatal("unexpected list", v)
		}
		if diff := cmp.Diff([]byte{1, 2}, OptBlob(view, "blob").Unwrap()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("null and absent values are None", func(t *testing.T) {
		if OptString(view, "null").IsSome() || OptString(view, "missing").IsSome() {
			t.Fatal("expected None")
		}
		if OptTimestamp(view, "missing").IsSome() {
			t.Fatal("expected None")
		}
	})
}
