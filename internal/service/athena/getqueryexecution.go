package athena

//
// GetQueryExecution
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// GetQueryExecutionInput is the input of GetQueryExecution.
type GetQueryExecutionInput struct {
	QueryExecutionID optional.Value[string]
}

var _ awsapi.Request = &GetQueryExecutionInput{}

// SetQueryExecutionID sets QueryExecutionID and returns the receiver.
func (in *GetQueryExecutionInput) SetQueryExecutionID(v string) *GetQueryExecutionInput {
	in.QueryExecutionID = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *GetQueryExecutionInput) ServiceRequestName() string {
	return "GetQueryExecution"
}

// SerializePayload implements awsapi.Request.
func (in *GetQueryExecutionInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.QueryExecutionID.IsSome() {
			object.Key("QueryExecutionId").String(in.QueryExecutionID.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *GetQueryExecutionInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *GetQueryExecutionInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// GetQueryExecutionOutput is the output of GetQueryExecution.
type GetQueryExecutionOutput struct {
	awsapi.ResultMetadata

	QueryExecution QueryExecution
}

var _ awsapi.Result = &GetQueryExecutionOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *GetQueryExecutionOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	if view.ValueExists("QueryExecution") {
		out.QueryExecution = NewQueryExecutionFromView(view.GetObject("QueryExecution"))
	}
	return nil
}
