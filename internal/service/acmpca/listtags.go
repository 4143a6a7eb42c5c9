package acmpca

//
// ListTags
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// ListTagsInput is the input of ListTags.
type ListTagsInput struct {
	CertificateAuthorityArn optional.Value[string]
	MaxResults              optional.Value[int32]
	NextToken               optional.Value[string]
}

var _ awsapi.Request = &ListTagsInput{}

// SetCertificateAuthorityArn sets CertificateAuthorityArn and returns the receiver.
func (in *ListTagsInput) SetCertificateAuthorityArn(v string) *ListTagsInput {
	in.CertificateAuthorityArn = optional.Some(v)
	return in
}

// SetMaxResults sets MaxResults and returns the receiver.
func (in *ListTagsInput) SetMaxResults(v int32) *ListTagsInput {
	in.MaxResults = optional.Some(v)
	return in
}

// SetNextToken sets NextToken and returns the receiver.
func (in *ListTagsInput) SetNextToken(v string) *ListTagsInput {
	in.NextToken = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *ListTagsInput) ServiceRequestName() string {
	return "ListTags"
}

// SerializePayload implements awsapi.Request.
func (in *ListTagsInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.CertificateAuthorityArn.IsSome() {
			object.Key("CertificateAuthorityArn").String(in.CertificateAuthorityArn.Unwrap())
		}
		if in.MaxResults.IsSome() {
			object.Key("MaxResults").Integer(in.MaxResults.Unwrap())
		}
		if in.NextToken.IsSome() {
			object.Key("NextToken").String(in.NextToken.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *ListTagsInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *ListTagsInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// ListTagsOutput is the output of ListTags.
type ListTagsOutput struct {
	awsapi.ResultMetadata

	Tags []Tag

	// NextToken is set when there are more tags to fetch.
	NextToken string
}

var _ awsapi.Result = &ListTagsOutput{}

// AddTags appends to Tags and returns the receiver.
func (out *ListTagsOutput) AddTags(v ...Tag) *ListTagsOutput {
	out.Tags = append(out.Tags, v...)
	return out
}

// UnmarshalResponse implements awsapi.Result.
func (out *ListTagsOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	for _, entry := range view.GetArray("Tags") {
		out.AddTags(NewTagFromView(entry))
	}
	out.NextToken = view.GetString("NextToken")
	return nil
}
