package athena

//
// StartQueryExecution
//

import (
	"net/http"
	"slices"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// StartQueryExecutionInput is the input of StartQueryExecution.
type StartQueryExecutionInput struct {
	// QueryString is the SQL statement to run.
	QueryString optional.Value[string]

	// ClientRequestToken makes the call idempotent. The client fills it
	// when the caller leaves it unset.
	ClientRequestToken optional.Value[string]

	QueryExecutionContext optional.Value[QueryExecutionContext]
	ResultConfiguration   optional.Value[ResultConfiguration]
	WorkGroup             optional.Value[string]

	// ExecutionParameters are bound positionally to the ? markers.
	ExecutionParameters optional.Value[[]string]
}

var (
	_ awsapi.Request           = &StartQueryExecutionInput{}
	_ awsapi.HeaderBinder      = &StartQueryExecutionInput{}
	_ awsapi.IdempotentRequest = &StartQueryExecutionInput{}
)

// SetQueryString sets QueryString and returns the receiver.
func (in *StartQueryExecutionInput) SetQueryString(v string) *StartQueryExecutionInput {
	in.QueryString = optional.Some(v)
	return in
}

// SetClientRequestToken sets ClientRequestToken and returns the receiver.
func (in *StartQueryExecutionInput) SetClientRequestToken(v string) *StartQueryExecutionInput {
	in.ClientRequestToken = optional.Some(v)
	return in
}

// SetQueryExecutionContext sets QueryExecutionContext and returns the receiver.
func (in *StartQueryExecutionInput) SetQueryExecutionContext(v QueryExecutionContext) *StartQueryExecutionInput {
	in.QueryExecutionContext = optional.Some(v)
	return in
}

// SetResultConfiguration sets ResultConfiguration and returns the receiver.
func (in *StartQueryExecutionInput) SetResultConfiguration(v ResultConfiguration) *StartQueryExecutionInput {
	in.ResultConfiguration = optional.Some(v)
	return in
}

// SetWorkGroup sets WorkGroup and returns the receiver.
func (in *StartQueryExecutionInput) SetWorkGroup(v string) *StartQueryExecutionInput {
	in.WorkGroup = optional.Some(v)
	return in
}

// SetExecutionParameters sets ExecutionParameters and returns the receiver.
func (in *StartQueryExecutionInput) SetExecutionParameters(v []string) *StartQueryExecutionInput {
	in.ExecutionParameters = optional.Some(v)
	return in
}

// AddExecutionParameters appends to ExecutionParameters and returns the receiver.
func (in *StartQueryExecutionInput) AddExecutionParameters(v ...string) *StartQueryExecutionInput {
	in.ExecutionParameters = optional.Some(append(in.ExecutionParameters.UnwrapOr(nil), v...))
	return in
}

// FillIdempotencyToken implements awsapi.IdempotentRequest.
func (in *StartQueryExecutionInput) FillIdempotencyToken(token func() string) {
	if in.ClientRequestToken.IsNone() {
		in.ClientRequestToken = optional.Some(token())
	}
}

// ServiceRequestName implements awsapi.Request.
func (in *StartQueryExecutionInput) ServiceRequestName() string {
	return "StartQueryExecution"
}

// SerializePayload implements awsapi.Request.
func (in *StartQueryExecutionInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.QueryString.IsSome() {
			object.Key("QueryString").String(in.QueryString.Unwrap())
		}
		if in.ClientRequestToken.IsSome() {
			object.Key("ClientRequestToken").String(in.ClientRequestToken.Unwrap())
		}
		if in.QueryExecutionContext.IsSome() {
			in.QueryExecutionContext.Unwrap().Jsonize(object.Key("QueryExecutionContext"))
		}
		if in.ResultConfiguration.IsSome() {
			in.ResultConfiguration.Unwrap().Jsonize(object.Key("ResultConfiguration"))
		}
		if in.WorkGroup.IsSome() {
			object.Key("WorkGroup").String(in.WorkGroup.Unwrap())
		}
		if in.ExecutionParameters.IsSome() {
			awsjson.EncodeStringList(object.Key("ExecutionParameters"), in.ExecutionParameters.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *StartQueryExecutionInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *StartQueryExecutionInput) Clone() awsapi.Request {
	out := *in
	out.ExecutionParameters = optional.Map(in.ExecutionParameters, slices.Clone[[]string])
	return &out
}

// StartQueryExecutionOutput is the output of StartQueryExecution.
type StartQueryExecutionOutput struct {
	awsapi.ResultMetadata

	// QueryExecutionID identifies the started execution.
	QueryExecutionID string
}

var _ awsapi.Result = &StartQueryExecutionOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *StartQueryExecutionOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	out.QueryExecutionID = view.GetString("QueryExecutionId")
	return nil
}
