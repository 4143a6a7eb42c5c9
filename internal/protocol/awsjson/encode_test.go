package awsjson

import (
	"testing"
	"time"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/google/go-cmp/cmp"
)

type pair struct {
	name string
}

func (p pair) Jsonize(value smithyjson.Value) {
	object := value.Object()
	object.Key("Name").String(p.name)
	object.Close()
}

func TestMarshalPayload(t *testing.T) {
	t.Run("without members", func(t *testing.T) {
		got := MarshalPayload(func(object *smithyjson.Object) {})
		if diff := cmp.Diff("{}", string(got)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with every supported kind of member", func(t *testing.T) {
		got := MarshalPayload(func(object *smithyjson.Object) {
			object.Key("s").String("x")
			EncodeStringList(object.Key("l"), []string{"a", "b"})
			EncodeStringMap(object.Key("m"), map[string]string{"z": "1", "a": "2"})
			EncodeTimestamp(object.Key("t"), time.Unix(1700000000, 0))
			EncodeJsonizerList(object.Key("p"), []pair{{"one"}, {"two"}})
		})
		expect := `{"s":"x","l":["a","b"],"m":{"a":"2","z":"1"},"t":1700000000,` +
			`"p":[{"Name":"one"},{"Name":"two"}]}`
		if diff := cmp.Diff(expect, string(got)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an empty list", func(t *testing.T) {
		got := MarshalPayload(func(object *smithyjson.Object) {
			EncodeStringList(object.Key("l"), nil)
		})
		if diff := cmp.Diff(`{"l":[]}`, string(got)); diff != "" {
			t.Fatal(diff)
		}
	})
}
