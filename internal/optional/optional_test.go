package optional

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValue(t *testing.T) {
	t.Run("the zero value is None", func(t *testing.T) {
		var v Value[string]
		if !v.IsNone() || v.IsSome() {
			t.Fatal("expected an empty value")
		}
		if v.UnwrapOr("fallback") != "fallback" {
			t.Fatal("expected the fallback")
		}
	})

	t.Run("Some keeps zero values", func(t *testing.T) {
		v := Some(false)
		if !v.IsSome() || v.Unwrap() {
			t.Fatal("expected Some(false)")
		}
	})

	t.Run("Some of a nil pointer is None", func(t *testing.T) {
		var ptr *int
		if Some(ptr).IsSome() {
			t.Fatal("expected None")
		}
		var iface error
		if Some(iface).IsSome() {
			t.Fatal("expected None")
		}
	})

	t.Run("Unwrap panics with an error on None", func(t *testing.T) {
		var recovered any
		func() {
			defer func() { recovered = recover() }()
			None[int]().Unwrap()
		}()
		if err, ok := recovered.(error); !ok || !errors.Is(err, errIsNone) {
			t.Fatal("unexpected panic value", recovered)
		}
	})

	t.Run("Set and Reset", func(t *testing.T) {
		var v Value[int64]
		v.Set(30)
		if v.Unwrap() != 30 {
			t.Fatal("Set did not store the value")
		}
		v.Reset()
		if v.IsSome() {
			t.Fatal("Reset did not clear the value")
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("copies slices", func(t *testing.T) {
		orig := Some([]string{"a", "b"})
		clone := Map(orig, slices.Clone[[]string])
		clone.Unwrap()[0] = "changed"
		if orig.Unwrap()[0] != "a" {
			t.Fatal("the clone shares the backing array")
		}
	})

	t.Run("keeps None", func(t *testing.T) {
		if Map(None[[]string](), slices.Clone[[]string]).IsSome() {
			t.Fatal("expected None")
		}
	})
}

func TestJSON(t *testing.T) {
	type input struct {
		Name    Value[string] `json:"name"`
		Workers Value[int]    `json:"workers"`
	}

	t.Run("None marshals as null", func(t *testing.T) {
		data, err := json.Marshal(input{Name: Some("x")})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(`{"name":"x","workers":null}`, string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("null and missing keys unmarshal as None", func(t *testing.T) {
		var in input
		if err := json.Unmarshal([]byte(`{"name":null}`), &in); err != nil {
			t.Fatal(err)
		}
		if in.Name.IsSome() || in.Workers.IsSome() {
			t.Fatal("expected None", in)
		}
	})

	t.Run("present keys unmarshal as Some", func(t *testing.T) {
		var in input
		if err := json.Unmarshal([]byte(`{"workers":0}`), &in); err != nil {
			t.Fatal(err)
		}
		if in.Workers.UnwrapOr(-1) != 0 {
			t.Fatal("expected Some(0)", in)
		}
	})

	t.Run("type mismatches fail", func(t *testing.T) {
		var in input
		if err := json.Unmarshal([]byte(`{"workers":"four"}`), &in); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestUnmarshalXML(t *testing.T) {
	type config struct {
		BlockPublicAcls  Value[bool] `xml:"BlockPublicAcls"`
		IgnorePublicAcls Value[bool] `xml:"IgnorePublicAcls"`
	}
	var c config
	if err := xml.Unmarshal([]byte(`<C><BlockPublicAcls>false</BlockPublicAcls></C>`), &c); err != nil {
		t.Fatal(err)
	}
	if c.BlockPublicAcls.UnwrapOr(true) || c.IgnorePublicAcls.IsSome() {
		t.Fatal("unexpected config", c)
	}
}
