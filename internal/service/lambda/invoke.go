package lambda

//
// Invoke
//

import (
	"net/http"
	"net/url"
	"slices"

	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
)

// InvokeInput is the input of Invoke.
type InvokeInput struct {
	// FunctionName is the name, ARN or partial ARN of the function.
	FunctionName optional.Value[string]

	// InvocationType defaults to RequestResponse on the service side.
	InvocationType optional.Value[InvocationType]

	// LogType set to Tail includes the execution log in the response.
	LogType optional.Value[LogType]

	// ClientContext is base64-encoded data passed to the function context.
	ClientContext optional.Value[string]

	// Payload is the JSON input of the function, sent as is.
	Payload optional.Value[[]byte]

	// Qualifier selects a version or alias.
	Qualifier optional.Value[string]
}

var (
	_ awsapi.Request           = &InvokeInput{}
	_ awsapi.HTTPBinder        = &InvokeInput{}
	_ awsapi.QueryStringBinder = &InvokeInput{}
	_ awsapi.HeaderBinder      = &InvokeInput{}
)

// SetFunctionName sets FunctionName and returns the receiver.
func (in *InvokeInput) SetFunctionName(v string) *InvokeInput {
	in.FunctionName = optional.Some(v)
	return in
}

// SetInvocationType sets InvocationType and returns the receiver.
func (in *InvokeInput) SetInvocationType(v InvocationType) *InvokeInput {
	in.InvocationType = optional.Some(v)
	return in
}

// SetLogType sets LogType and returns the receiver.
func (in *InvokeInput) SetLogType(v LogType) *InvokeInput {
	in.LogType = optional.Some(v)
	return in
}

// SetClientContext sets ClientContext and returns the receiver.
func (in *InvokeInput) SetClientContext(v string) *InvokeInput {
	in.ClientContext = optional.Some(v)
	return in
}

// SetPayload sets Payload and returns the receiver.
func (in *InvokeInput) SetPayload(v []byte) *InvokeInput {
	in.Payload = optional.Some(v)
	return in
}

// SetQualifier sets Qualifier and returns the receiver.
func (in *InvokeInput) SetQualifier(v string) *InvokeInput {
	in.Qualifier = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *InvokeInput) ServiceRequestName() string {
	return "Invoke"
}

// SerializePayload implements awsapi.Request. The body is the payload itself.
func (in *InvokeInput) SerializePayload() ([]byte, error) {
	return in.Payload.UnwrapOr(nil), nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *InvokeInput) HTTPMethod() string {
	return http.MethodPost
}

// RequestURI implements awsapi.HTTPBinder.
func (in *InvokeInput) RequestURI() string {
	return "/2015-03-31/functions/{FunctionName}/invocations"
}

// BindURI implements awsapi.HTTPBinder.
func (in *InvokeInput) BindURI(encoder *httpbinding.Encoder) error {
	return awsapi.BindLabel(encoder, "FunctionName", in.FunctionName)
}

// AddQueryStringParameters implements awsapi.QueryStringBinder.
func (in *InvokeInput) AddQueryStringParameters(query url.Values) {
	if in.Qualifier.IsSome() {
		query.Set("Qualifier", in.Qualifier.Unwrap())
	}
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *InvokeInput) RequestSpecificHeaders() http.Header {
	headers := http.Header{}
	if in.InvocationType.IsSome() {
		headers.Set("X-Amz-Invocation-Type", string(in.InvocationType.Unwrap()))
	}
	if in.LogType.IsSome() {
		headers.Set("X-Amz-Log-Type", string(in.LogType.Unwrap()))
	}
	if in.ClientContext.IsSome() {
		headers.Set("X-Amz-Client-Context", in.ClientContext.Unwrap())
	}
	if len(in.Payload.UnwrapOr(nil)) > 0 {
		headers.Set("Content-Type", "application/octet-stream")
	}
	return headers
}

// Clone implements awsapi.Request.
func (in *InvokeInput) Clone() awsapi.Request {
	out := *in
	out.Payload = optional.Map(in.Payload, slices.Clone[[]byte])
	return &out
}

// InvokeOutput is the output of Invoke.
type InvokeOutput struct {
	awsapi.ResultMetadata

	// StatusCode is the HTTP status code: 200 for RequestResponse, 202 for
	// Event and 204 for DryRun.
	StatusCode int32

	// FunctionError is set when the function raised an error.
	FunctionError string

	// LogResult is the base64-encoded tail of the execution log.
	LogResult string

	// ExecutedVersion is the version of the function that was executed.
	ExecutedVersion string

	// Payload is the response of the function, or the error object.
	Payload []byte
}

var _ awsapi.Result = &InvokeOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *InvokeOutput) UnmarshalResponse(resp *awsapi.Response) error {
	out.StatusCode = int32(resp.StatusCode)
	out.FunctionError = resp.Header.Get("X-Amz-Function-Error")
	out.LogResult = resp.Header.Get("X-Amz-Log-Result")
	out.ExecutedVersion = resp.Header.Get("X-Amz-Executed-Version")
	out.Payload = resp.Body
	return nil
}
