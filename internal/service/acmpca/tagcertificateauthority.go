package acmpca

//
// TagCertificateAuthority
//

import (
	"net/http"
	"slices"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// TagCertificateAuthorityInput is the input of TagCertificateAuthority.
type TagCertificateAuthorityInput struct {
	CertificateAuthorityArn optional.Value[string]

	// Tags contains at most 50 tags.
	Tags optional.Value[[]Tag]
}

var _ awsapi.Request = &TagCertificateAuthorityInput{}

// SetCertificateAuthorityArn sets CertificateAuthorityArn and returns the receiver.
func (in *TagCertificateAuthorityInput) SetCertificateAuthorityArn(v string) *TagCertificateAuthorityInput {
	in.CertificateAuthorityArn = optional.Some(v)
	return in
}

// SetTags sets Tags and returns the receiver.
func (in *TagCertificateAuthorityInput) SetTags(v []Tag) *TagCertificateAuthorityInput {
	in.Tags = optional.Some(v)
	return in
}

// AddTags appends to Tags and returns the receiver.
func (in *TagCertificateAuthorityInput) AddTags(v ...Tag) *TagCertificateAuthorityInput {
	in.Tags = optional.Some(append(in.Tags.UnwrapOr(nil), v...))
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *TagCertificateAuthorityInput) ServiceRequestName() string {
	return "TagCertificateAuthority"
}

// SerializePayload implements awsapi.Request.
func (in *TagCertificateAuthorityInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.CertificateAuthorityArn.IsSome() {
			object.Key("CertificateAuthorityArn").String(in.CertificateAuthorityArn.Unwrap())
		}
		if in.Tags.IsSome() {
			awsjson.EncodeJsonizerList(object.Key("Tags"), in.Tags.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *TagCertificateAuthorityInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *TagCertificateAuthorityInput) Clone() awsapi.Request {
	out := *in
	out.Tags = optional.Map(in.Tags, slices.Clone[[]Tag])
	return &out
}

// TagCertificateAuthorityOutput is the output of TagCertificateAuthority.
type TagCertificateAuthorityOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &TagCertificateAuthorityOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *TagCertificateAuthorityOutput) UnmarshalResponse(resp *awsapi.Response) error {
	_, err := awsjson.ParseResponse(resp)
	return err
}
