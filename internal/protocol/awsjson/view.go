package awsjson

//
// Read-only view over a parsed JSON document.
//

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/aws/smithy-go"
	smithytime "github.com/aws/smithy-go/time"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
)

// View is a read-only view over a parsed JSON value. The zero value
// is a view over JSON null. Getters never fail: missing keys and type
// mismatches yield the zero value of the requested type.
type View struct {
	value any
}

// Parse parses data into a [View]. An empty (or blank) document is
// treated as the empty object, since several operations return no body.
func Parse(data []byte) (View, error) {
	if len(bytes.TrimSpace(data)) <= 0 {
		return View{map[string]any{}}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return View{}, &smithy.DeserializationError{Err: err, Snapshot: snapshot(data)}
	}
	return View{value}, nil
}

// ParseResponse is like [Parse] but operates on the body of resp.
func ParseResponse(resp *awsapi.Response) (View, error) {
	return Parse(resp.Body)
}

// snapshot returns a bounded prefix of data for error reporting.
func snapshot(data []byte) []byte {
	const maxSnapshot = 1024
	if len(data) > maxSnapshot {
		data = data[:maxSnapshot]
	}
	return append([]byte{}, data...)
}

// NewView constructs a [View] over a value obtained by decoding
// JSON into an `any` (maps, slices, strings, bools, numbers, nil).
func NewView(value any) View {
	return View{value}
}

// Raw returns the underlying value.
func (v View) Raw() any {
	return v.value
}

// IsNull returns whether the view is over JSON null.
func (v View) IsNull() bool {
	return v.value == nil
}

// IsObject returns whether the view is over a JSON object.
func (v View) IsObject() bool {
	_, ok := v.value.(map[string]any)
	return ok
}

// IsList returns whether the view is over a JSON array.
func (v View) IsList() bool {
	_, ok := v.value.([]any)
	return ok
}

// KeyExists returns whether key is present, even if null.
func (v View) KeyExists(key string) bool {
	m, ok := v.value.(map[string]any)
	if !ok {
		return false
	}
	_, found := m[key]
	return found
}

// ValueExists returns whether key is present and not null.
func (v View) ValueExists(key string) bool {
	m, ok := v.value.(map[string]any)
	if !ok {
		return false
	}
	value, found := m[key]
	return found && value != nil
}

// GetObject returns a view over the value at key.
func (v View) GetObject(key string) View {
	m, _ := v.value.(map[string]any)
	return View{m[key]}
}

// GetString returns the string at key.
func (v View) GetString(key string) string {
	return v.GetObject(key).AsString()
}

// GetInteger returns the int32 at key.
func (v View) GetInteger(key string) int32 {
	return v.GetObject(key).AsInteger()
}

// GetInt64 returns the int64 at key.
func (v View) GetInt64(key string) int64 {
	return v.GetObject(key).AsInt64()
}

// GetBool returns the bool at key.
func (v View) GetBool(key string) bool {
	return v.GetObject(key).AsBool()
}

// GetDouble returns the float64 at key.
func (v View) GetDouble(key string) float64 {
	return v.GetObject(key).AsDouble()
}

// GetTimestamp returns the epoch-seconds timestamp at key.
func (v View) GetTimestamp(key string) time.Time {
	return v.GetObject(key).AsTimestamp()
}

// GetBlob returns the base64-encoded blob at key.
func (v View) GetBlob(key string) []byte {
	return v.GetObject(key).AsBlob()
}

// GetArray returns views over the elements of the array at key.
func (v View) GetArray(key string) []View {
	return v.GetObject(key).AsArray()
}

// GetAllObjects returns views over the members of the object at key.
func (v View) GetAllObjects(key string) map[string]View {
	return v.GetObject(key).AsObject()
}

// AsString returns the string the view is over.
func (v View) AsString() string {
	s, _ := v.value.(string)
	return s
}

// AsInteger returns the number the view is over as an int32.
func (v View) AsInteger() int32 {
	n := v.AsInt64()
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0
	}
	return int32(n)
}

// AsInt64 returns the number the view is over as an int64.
func (v View) AsInt64() int64 {
	switch n := v.value.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, _ := n.Float64()
		return int64(f)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// AsDouble returns the number the view is over as a float64.
func (v View) AsDouble() float64 {
	switch n := v.value.(type) {
	case json.Number:
		f, _ := n.Float64()
		return f
	case float64:
		return n
	default:
		return 0
	}
}

// AsBool returns the bool the view is over.
func (v View) AsBool() bool {
	b, _ := v.value.(bool)
	return b
}

// AsTimestamp interprets the number the view is over as epoch seconds.
func (v View) AsTimestamp() time.Time {
	if v.value == nil {
		return time.Time{}
	}
	return smithytime.ParseEpochSeconds(v.AsDouble())
}

// AsBlob decodes the base64 string the view is over.
func (v View) AsBlob() []byte {
	data, err := base64.StdEncoding.DecodeString(v.AsString())
	if err != nil {
		return nil
	}
	return data
}

// AsArray returns views over the elements of the array the view is over.
func (v View) AsArray() []View {
	list, _ := v.value.([]any)
	out := make([]View, 0, len(list))
	for _, entry := range list {
		out = append(out, View{entry})
	}
	return out
}

// AsObject returns views over the members of the object the view is over.
func (v View) AsObject() map[string]View {
	m, _ := v.value.(map[string]any)
	out := make(map[string]View, len(m))
	for key, entry := range m {
		out[key] = View{entry}
	}
	return out
}

// Keys returns the sorted keys of the object the view is over.
func (v View) Keys() []string {
	m, _ := v.value.(map[string]any)
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
