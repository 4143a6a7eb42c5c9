package ec2

//
// CreateTags
//

import (
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsquery"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// CreateTagsInput is the input of CreateTags.
type CreateTagsInput struct {
	taggingRequest
}

var (
	_ awsapi.Request   = &CreateTagsInput{}
	_ awsapi.URLDumper = &CreateTagsInput{}
)

// SetDryRun sets DryRun and returns the receiver.
func (in *CreateTagsInput) SetDryRun(v bool) *CreateTagsInput {
	in.DryRun = optional.Some(v)
	return in
}

// SetResources sets Resources and returns the receiver.
func (in *CreateTagsInput) SetResources(v []string) *CreateTagsInput {
	in.Resources = optional.Some(v)
	return in
}

// AddResources appends to Resources and returns the receiver.
func (in *CreateTagsInput) AddResources(v ...string) *CreateTagsInput {
	in.Resources = optional.Some(append(in.Resources.UnwrapOr(nil), v...))
	return in
}

// SetTags sets Tags and returns the receiver.
func (in *CreateTagsInput) SetTags(v []Tag) *CreateTagsInput {
	in.Tags = optional.Some(v)
	return in
}

// AddTags appends to Tags and returns the receiver.
func (in *CreateTagsInput) AddTags(v ...Tag) *CreateTagsInput {
	in.Tags = optional.Some(append(in.Tags.UnwrapOr(nil), v...))
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *CreateTagsInput) ServiceRequestName() string {
	return "CreateTags"
}

// SerializePayload implements awsapi.Request.
func (in *CreateTagsInput) SerializePayload() ([]byte, error) {
	return awsquery.MarshalBody(in.ServiceRequestName(), ServiceMetadata.APIVersion, func(object *query.Object) {
		in.taggingRequest.serialize(object)
	})
}

// DumpBodyToURL implements awsapi.URLDumper.
func (in *CreateTagsInput) DumpBodyToURL(u *url.URL) error {
	body, err := in.SerializePayload()
	if err != nil {
		return err
	}
	return awsquery.DumpBodyToURL(body, u)
}

// Clone implements awsapi.Request.
func (in *CreateTagsInput) Clone() awsapi.Request {
	return &CreateTagsInput{taggingRequest: in.taggingRequest.clone()}
}

// CreateTagsOutput is the output of CreateTags.
type CreateTagsOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &CreateTagsOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *CreateTagsOutput) UnmarshalResponse(resp *awsapi.Response) error {
	var doc struct{}
	return awsxml.Unmarshal(resp, &doc)
}
