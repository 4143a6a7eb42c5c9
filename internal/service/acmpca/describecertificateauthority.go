package acmpca

//
// DescribeCertificateAuthority
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// DescribeCertificateAuthorityInput is the input of DescribeCertificateAuthority.
type DescribeCertificateAuthorityInput struct {
	CertificateAuthorityArn optional.Value[string]
}

var _ awsapi.Request = &DescribeCertificateAuthorityInput{}

// SetCertificateAuthorityArn sets CertificateAuthorityArn and returns the receiver.
func (in *DescribeCertificateAuthorityInput) SetCertificateAuthorityArn(v string) *DescribeCertificateAuthorityInput {
	in.CertificateAuthorityArn = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *DescribeCertificateAuthorityInput) ServiceRequestName() string {
	return "DescribeCertificateAuthority"
}

// SerializePayload implements awsapi.Request.
func (in *DescribeCertificateAuthorityInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.CertificateAuthorityArn.IsSome() {
			object.Key("CertificateAuthorityArn").String(in.CertificateAuthorityArn.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *DescribeCertificateAuthorityInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *DescribeCertificateAuthorityInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// DescribeCertificateAuthorityOutput is the output of DescribeCertificateAuthority.
type DescribeCertificateAuthorityOutput struct {
	awsapi.ResultMetadata

	CertificateAuthority CertificateAuthority
}

var _ awsapi.Result = &DescribeCertificateAuthorityOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *DescribeCertificateAuthorityOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	if view.ValueExists("CertificateAuthority") {
		out.CertificateAuthority = NewCertificateAuthorityFromView(view.GetObject("CertificateAuthority"))
	}
	return nil
}
