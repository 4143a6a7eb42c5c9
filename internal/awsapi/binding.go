package awsapi

import (
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/optional"
)

// BindLabel sets the URI label name to value, failing when value is unset
// or empty since a URI label cannot be omitted.
func BindLabel(encoder *httpbinding.Encoder, name string, value optional.Value[string]) error {
	if value.UnwrapOr("") == "" {
		return &smithy.SerializationError{Err: fmt.Errorf("input member %s must not be empty", name)}
	}
	if err := encoder.SetURI(name).String(value.Unwrap()); err != nil {
		return &smithy.SerializationError{Err: err}
	}
	return nil
}
