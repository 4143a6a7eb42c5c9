package s3control

//
// GetPublicAccessBlock
//

import (
	"net/http"

	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// GetPublicAccessBlockInput is the input of GetPublicAccessBlock.
type GetPublicAccessBlockInput struct {
	// AccountID is sent in the x-amz-account-id header.
	AccountID optional.Value[string]
}

var (
	_ awsapi.Request      = &GetPublicAccessBlockInput{}
	_ awsapi.HTTPBinder   = &GetPublicAccessBlockInput{}
	_ awsapi.HeaderBinder = &GetPublicAccessBlockInput{}
)

// SetAccountID sets AccountID and returns the receiver.
func (in *GetPublicAccessBlockInput) SetAccountID(v string) *GetPublicAccessBlockInput {
	in.AccountID = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *GetPublicAccessBlockInput) ServiceRequestName() string {
	return "GetPublicAccessBlock"
}

// SerializePayload implements awsapi.Request.
func (in *GetPublicAccessBlockInput) SerializePayload() ([]byte, error) {
	return nil, nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *GetPublicAccessBlockInput) HTTPMethod() string {
	return http.MethodGet
}

// RequestURI implements awsapi.HTTPBinder.
func (in *GetPublicAccessBlockInput) RequestURI() string {
	return publicAccessBlockURI
}

// BindURI implements awsapi.HTTPBinder.
func (in *GetPublicAccessBlockInput) BindURI(encoder *httpbinding.Encoder) error {
	return nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *GetPublicAccessBlockInput) RequestSpecificHeaders() http.Header {
	return accountHeaders(in.AccountID)
}

// Clone implements awsapi.Request.
func (in *GetPublicAccessBlockInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// GetPublicAccessBlockOutput is the output of GetPublicAccessBlock.
type GetPublicAccessBlockOutput struct {
	awsapi.ResultMetadata

	PublicAccessBlockConfiguration PublicAccessBlockConfiguration
}

var _ awsapi.Result = &GetPublicAccessBlockOutput{}

// UnmarshalResponse implements awsapi.Result. The body is the
// configuration element itself.
func (out *GetPublicAccessBlockOutput) UnmarshalResponse(resp *awsapi.Response) error {
	return awsxml.Unmarshal(resp, &out.PublicAccessBlockConfiguration)
}
