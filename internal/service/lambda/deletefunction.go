package lambda

//
// DeleteFunction
//

import (
	"net/http"
	"net/url"

	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// DeleteFunctionInput is the input of DeleteFunction.
type DeleteFunctionInput struct {
	FunctionName optional.Value[string]

	// Qualifier selects the version to delete. Aliases are not accepted.
	Qualifier optional.Value[string]
}

var (
	_ awsapi.Request           = &DeleteFunctionInput{}
	_ awsapi.HTTPBinder        = &DeleteFunctionInput{}
	_ awsapi.QueryStringBinder = &DeleteFunctionInput{}
)

// SetFunctionName sets FunctionName and returns the receiver.
func (in *DeleteFunctionInput) SetFunctionName(v string) *DeleteFunctionInput {
	in.FunctionName = optional.Some(v)
	return in
}

// SetQualifier sets Qualifier and returns the receiver.
func (in *DeleteFunctionInput) SetQualifier(v string) *DeleteFunctionInput {
	in.Qualifier = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *DeleteFunctionInput) ServiceRequestName() string {
	return "DeleteFunction"
}

// SerializePayload implements awsapi.Request.
func (in *DeleteFunctionInput) SerializePayload() ([]byte, error) {
	return nil, nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *DeleteFunctionInput) HTTPMethod() string {
	return http.MethodDelete
}

// RequestURI implements awsapi.HTTPBinder.
func (in *DeleteFunctionInput) RequestURI() string {
	return "/2015-03-31/functions/{FunctionName}"
}

// BindURI implements awsapi.HTTPBinder.
func (in *DeleteFunctionInput) BindURI(encoder *httpbinding.Encoder) error {
	return awsapi.BindLabel(encoder, "FunctionName", in.FunctionName)
}

// AddQueryStringParameters implements awsapi.QueryStringBinder.
func (in *DeleteFunctionInput) AddQueryStringParameters(query url.Values) {
	if in.Qualifier.IsSome() {
		query.Set("Qualifier", in.Qualifier.Unwrap())
	}
}

// Clone implements awsapi.Request.
func (in *DeleteFunctionInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// DeleteFunctionOutput is the output of DeleteFunction.
type DeleteFunctionOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &DeleteFunctionOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *DeleteFunctionOutput) UnmarshalResponse(resp *awsapi.Response) error {
	_, err := awsjson.ParseResponse(resp)
	return err
}
