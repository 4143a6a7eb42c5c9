package cognitoidp

//
// DeleteResourceServer
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// DeleteResourceServerInput is the input of DeleteResourceServer.
type DeleteResourceServerInput struct {
	UserPoolID optional.Value[string]
	Identifier optional.Value[string]
}

var _ awsapi.Request = &DeleteResourceServerInput{}

// SetUserPoolID sets UserPoolID and returns the receiver.
func (in *DeleteResourceServerInput) SetUserPoolID(v string) *DeleteResourceServerInput {
	in.UserPoolID = optional.Some(v)
	return in
}

// SetIdentifier sets Identifier and returns the receiver.
func (in *DeleteResourceServerInput) SetIdentifier(v string) *DeleteResourceServerInput {
	in.Identifier = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *DeleteResourceServerInput) ServiceRequestName() string {
	return "DeleteResourceServer"
}

// SerializePayload implements awsapi.Request.
func (in *DeleteResourceServerInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.UserPoolID.IsSome() {
			object.Key("UserPoolId").String(in.UserPoolID.Unwrap())
		}
		if in.Identifier.IsSome() {
			object.Key("Identifier").String(in.Identifier.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *DeleteResourceServerInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *DeleteResourceServerInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// DeleteResourceServerOutput is the output of DeleteResourceServer.
type DeleteResourceServerOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &DeleteResourceServerOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *DeleteResourceServerOutput) UnmarshalResponse(resp *awsapi.Response) error {
	_, err := awsjson.ParseResponse(resp)
	return err
}
