package s3control

//
// PutPublicAccessBlock
//

import (
	"bytes"
	"net/http"

	smithyxml "github.com/aws/smithy-go/encoding/xml"
	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// PutPublicAccessBlockInput is the input of PutPublicAccessBlock.
type PutPublicAccessBlockInput struct {
	// AccountID is sent in the x-amz-account-id header.
	AccountID optional.Value[string]

	PublicAccessBlockConfiguration optional.Value[PublicAccessBlockConfiguration]
}

var (
	_ awsapi.Request      = &PutPublicAccessBlockInput{}
	_ awsapi.HTTPBinder   = &PutPublicAccessBlockInput{}
	_ awsapi.HeaderBinder = &PutPublicAccessBlockInput{}
)

// SetAccountID sets AccountID and returns the receiver.
func (in *PutPublicAccessBlockInput) SetAccountID(v string) *PutPublicAccessBlockInput {
	in.AccountID = optional.Some(v)
	return in
}

// SetPublicAccessBlockConfiguration sets PublicAccessBlockConfiguration
// and returns the receiver.
func (in *PutPublicAccessBlockInput) SetPublicAccessBlockConfiguration(v PublicAccessBlockConfiguration) *PutPublicAccessBlockInput {
	in.PublicAccessBlockConfiguration = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *PutPublicAccessBlockInput) ServiceRequestName() string {
	return "PutPublicAccessBlock"
}

// SerializePayload implements awsapi.Request. The configuration is the
// root element of the body, qualified with the service namespace.
func (in *PutPublicAccessBlockInput) SerializePayload() ([]byte, error) {
	if in.PublicAccessBlockConfiguration.IsNone() {
		return nil, nil
	}
	encoder := smithyxml.NewEncoder(bytes.NewBuffer(nil))
	root := encoder.RootElement(smithyxml.StartElement{
		Name: smithyxml.Name{Local: "PublicAccessBlockConfiguration"},
		Attr: []smithyxml.Attr{
			smithyxml.NewNamespaceAttribute("", ServiceMetadata.XMLNamespace),
		},
	})
	config := in.PublicAccessBlockConfiguration.Unwrap()
	config.serialize(root)
	root.Close()
	return encoder.Bytes(), nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *PutPublicAccessBlockInput) HTTPMethod() string {
	return http.MethodPut
}

// RequestURI implements awsapi.HTTPBinder.
func (in *PutPublicAccessBlockInput) RequestURI() string {
	return publicAccessBlockURI
}

// BindURI implements awsapi.HTTPBinder.
func (in *PutPublicAccessBlockInput) BindURI(encoder *httpbinding.Encoder) error {
	return nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *PutPublicAccessBlockInput) RequestSpecificHeaders() http.Header {
	return accountHeaders(in.AccountID)
}

// Clone implements awsapi.Request.
func (in *PutPublicAccessBlockInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// PutPublicAccessBlockOutput is the output of PutPublicAccessBlock.
type PutPublicAccessBlockOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &PutPublicAccessBlockOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *PutPublicAccessBlockOutput) UnmarshalResponse(resp *awsapi.Response) error {
	var doc struct{}
	return awsxml.Unmarshal(resp, &doc)
}
