package cognitoidp

//
// CreateResourceServer
//

import (
	"net/http"
	"slices"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// CreateResourceServerInput is the input of CreateResourceServer.
type CreateResourceServerInput struct {
	// UserPoolID is the user pool owning the resource server.
	UserPoolID optional.Value[string]

	// Identifier uniquely identifies the resource server (e.g., "https://api.example.com").
	Identifier optional.Value[string]

	// Name is a friendly name for the resource server.
	Name optional.Value[string]

	// Scopes lists the scopes exposed by the resource server.
	Scopes optional.Value[[]ResourceServerScopeType]
}

var _ awsapi.Request = &CreateResourceServerInput{}

// SetUserPoolID sets UserPoolID and returns the receiver.
func (in *CreateResourceServerInput) SetUserPoolID(v string) *CreateResourceServerInput {
	in.UserPoolID = optional.Some(v)
	return in
}

// SetIdentifier sets Identifier and returns the receiver.
func (in *CreateResourceServerInput) SetIdentifier(v string) *CreateResourceServerInput {
	in.Identifier = optional.Some(v)
	return in
}

// SetName sets Name and returns the receiver.
func (in *CreateResourceServerInput) SetName(v string) *CreateResourceServerInput {
	in.Name = optional.Some(v)
	return in
}

// SetScopes sets Scopes and returns the receiver.
func (in *CreateResourceServerInput) SetScopes(v []ResourceServerScopeType) *CreateResourceServerInput {
	in.Scopes = optional.Some(v)
	return in
}

// AddScopes appends to Scopes and returns the receiver.
func (in *CreateResourceServerInput) AddScopes(v ...ResourceServerScopeType) *CreateResourceServerInput {
	in.Scopes = optional.Some(append(in.Scopes.UnwrapOr(nil), v...))
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *CreateResourceServerInput) ServiceRequestName() string {
	return "CreateResourceServer"
}

// SerializePayload implements awsapi.Request.
func (in *CreateResourceServerInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.UserPoolID.IsSome() {
			object.Key("UserPoolId").String(in.UserPoolID.Unwrap())
		}
		if in.Identifier.IsSome() {
			object.Key("Identifier").String(in.Identifier.Unwrap())
		}
		if in.Name.IsSome() {
			object.Key("Name").String(in.Name.Unwrap())
		}
		if in.Scopes.IsSome() {
			awsjson.EncodeJsonizerList(object.Key("Scopes"), in.Scopes.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *CreateResourceServerInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *CreateResourceServerInput) Clone() awsapi.Request {
	out := *in
	out.Scopes = optional.Map(in.Scopes, slices.Clone[[]ResourceServerScopeType])
	return &out
}

// CreateResourceServerOutput is the output of CreateResourceServer.
type CreateResourceServerOutput struct {
	awsapi.ResultMetadata

	// ResourceServer describes the new resource server.
	ResourceServer ResourceServerType
}

var _ awsapi.Result = &CreateResourceServerOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *CreateResourceServerOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	if view.ValueExists("ResourceServer") {
		out.ResourceServer.UnmarshalView(view.GetObject("ResourceServer"))
	}
	return nil
}
