package athena

//
// StopQueryExecution
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// StopQueryExecutionInput is the input of StopQueryExecution.
type StopQueryExecutionInput struct {
	QueryExecutionID optional.Value[string]
}

var _ awsapi.Request = &StopQueryExecutionInput{}

// SetQueryExecutionID sets QueryExecutionID and returns the receiver.
func (in *StopQueryExecutionInput) SetQueryExecutionID(v string) *StopQueryExecutionInput {
	in.QueryExecutionID = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *StopQueryExecutionInput) ServiceRequestName() string {
	return "StopQueryExecution"
}

// SerializePayload implements awsapi.Request.
func (in *StopQueryExecutionInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.QueryExecutionID.IsSome() {
			object.Key("QueryExecutionId").String(in.QueryExecutionID.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *StopQueryExecutionInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *StopQueryExecutionInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// StopQueryExecutionOutput is the output of StopQueryExecution.
type StopQueryExecutionOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &StopQueryExecutionOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *StopQueryExecutionOutput) UnmarshalResponse(resp *awsapi.Response) error {
	_, err := awsjson.ParseResponse(resp)
	return err
}
