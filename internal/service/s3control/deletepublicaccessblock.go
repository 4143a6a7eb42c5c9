package s3control

//
// DeletePublicAccessBlock
//

import (
	"net/http"

	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// DeletePublicAccessBlockInput is the input of DeletePublicAccessBlock.
type DeletePublicAccessBlockInput struct {
	// AccountID is sent in the x-amz-account-id header.
	AccountID optional.Value[string]
}

var (
	_ awsapi.Request      = &DeletePublicAccessBlockInput{}
	_ awsapi.HTTPBinder   = &DeletePublicAccessBlockInput{}
	_ awsapi.HeaderBinder = &DeletePublicAccessBlockInput{}
)

// SetAccountID sets AccountID and returns the receiver.
func (in *DeletePublicAccessBlockInput) SetAccountID(v string) *DeletePublicAccessBlockInput {
	in.AccountID = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *DeletePublicAccessBlockInput) ServiceRequestName() string {
	return "DeletePublicAccessBlock"
}

// SerializePayload implements awsapi.Request.
func (in *DeletePublicAccessBlockInput) SerializePayload() ([]byte, error) {
	return nil, nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *DeletePublicAccessBlockInput) HTTPMethod() string {
	return http.MethodDelete
}

// RequestURI implements awsapi.HTTPBinder.
func (in *DeletePublicAccessBlockInput) RequestURI() string {
	return publicAccessBlockURI
}

// BindURI implements awsapi.HTTPBinder.
func (in *DeletePublicAccessBlockInput) BindURI(encoder *httpbinding.Encoder) error {
	return nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *DeletePublicAccessBlockInput) RequestSpecificHeaders() http.Header {
	return accountHeaders(in.AccountID)
}

// Clone implements awsapi.Request.
func (in *DeletePublicAccessBlockInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// DeletePublicAccessBlockOutput is the output of DeletePublicAccessBlock.
type DeletePublicAccessBlockOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &DeletePublicAccessBlockOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *DeletePublicAccessBlockOutput) UnmarshalResponse(resp *awsapi.Response) error {
	var doc struct{}
	return awsxml.Unmarshal(resp, &doc)
}
