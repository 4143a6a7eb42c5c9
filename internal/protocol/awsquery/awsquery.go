// Package awsquery implements the request side of the awsQuery and
// ec2Query protocols.
//
// Both protocols send a form-encoded body holding the Action and Version
// parameters plus the operation members. They differ in how lists are
// named: awsQuery nests members below a location name (Filters.Filter.1)
// while ec2Query flattens them (Tag.1).
package awsquery

import (
	"bytes"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/aws/smithy-go"
)

// Document is the function type used by models to emit their members.
type Document func(object *query.Object)

// MarshalBody returns the form-encoded body for the given action and
// version, with members emitted by doc.
func MarshalBody(action, version string, doc Document) ([]byte, error) {
	body := &bytes.Buffer{}
	encoder := query.NewEncoder(body)
	object := encoder.Object()
	object.Key("Action").String(action)
	object.Key("Version").String(version)
	doc(object)
	if err := encoder.Encode(); err != nil {
		return nil, &smithy.SerializationError{Err: err}
	}
	return body.Bytes(), nil
}

// DumpBodyToURL replaces the query of u with the form-encoded body,
// allowing query protocols to be invoked using GET.
func DumpBodyToURL(body []byte, u *url.URL) error {
	if _, err := url.ParseQuery(string(body)); err != nil {
		return &smithy.SerializationError{Err: err}
	}
	u.RawQuery = string(body)
	return nil
}

// EncodeStringList emits a list of strings. An empty list is emitted as
// "Name=". Lists below a key obtained with FlatKey ignore memberName and
// number their elements directly (e.g., "ResourceId.1").
func EncodeStringList(value query.Value, memberName string, list []string) {
	array := value.Array(memberName)
	for _, entry := range list {
		array.Value().String(entry)
	}
}

// EncodeList emits list using fn for each element.
func EncodeList[T any](value query.Value, memberName string, list []T, fn func(query.Value, T)) {
	array := value.Array(memberName)
	for _, entry := range list {
		fn(array.Value(), entry)
	}
}
