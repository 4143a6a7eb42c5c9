package awsquery

import (
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/google/go-cmp/cmp"
)

func TestMarshalBody(t *testing.T) {
	t.Run("with Action and Version only", func(t *testing.T) {
		got, err := MarshalBody("DescribeDBInstances", "2014-10-31", func(object *query.Object) {})
		if err != nil {
			t.Fatal(err)
		}
		expect := "Action=DescribeDBInstances&Version=2014-10-31"
		if diff := cmp.Diff(expect, string(got)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with nested and flattened lists", func(t *testing.T) {
		got, err := MarshalBody("Op", "2016-11-15", func(object *query.Object) {
			EncodeStringList(object.Key("Names"), "member", []string{"a", "b c"})
			EncodeStringList(object.FlatKey("ResourceId"), "member", []string{"i-1"})
			EncodeList(object.FlatKey("Tag"), "item", []string{"k"}, func(v query.Value, s string) {
				v.Object().Key("Key").String(s)
			})
		})
		if err != nil {
			t.Fatal(err)
		}
		expect := "Action=Op&Names.member.1=a&Names.member.2=b+c&ResourceId.1=i-1&Tag.1.Key=k&Version=2016-11-15"
		if diff := cmp.Diff(expect, string(got)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an empty list", func(t *testing.T) {
		got, err := MarshalBody("Op", "1", func(object *query.Object) {
			EncodeStringList(object.Key("Names"), "member", nil)
		})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("Action=Op&Names=&Version=1", string(got)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestDumpBodyToURL(t *testing.T) {
	t.Run("on success", func(t *testing.T) {
		u := &url.URL{Scheme: "https", Host: "rds.amazonaws.com", Path: "/", RawQuery: "old=1"}
		if err := DumpBodyToURL([]byte("Action=Op&Version=1"), u); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("https://rds.amazonaws.com/?Action=Op&Version=1", u.String()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("with an invalid body", func(t *testing.T) {
		u := &url.URL{}
		if err := DumpBodyToURL([]byte("a=%zz"), u); err == nil {
			t.Fatal("expected an error")
		}
	})
}
