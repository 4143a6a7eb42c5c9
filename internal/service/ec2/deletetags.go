package ec2

//
// DeleteTags
//

import (
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsquery"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// DeleteTagsInput is the input of DeleteTags. A tag without Value deletes the
// tag regardless of its value, and no tags at all deletes every tag.
type DeleteTagsInput struct {
	taggingRequest
}

var (
	_ awsapi.Request   = &DeleteTagsInput{}
	_ awsapi.URLDumper = &DeleteTagsInput{}
)

// SetDryRun sets DryRun and returns the receiver.
func (in *DeleteTagsInput) SetDryRun(v bool) *DeleteTagsInput {
	in.DryRun = optional.Some(v)
	return in
}

// SetResources sets Resources and returns the receiver.
func (in *DeleteTagsInput) SetResources(v []string) *DeleteTagsInput {
	in.Resources = optional.Some(v)
	return in
}

// AddResources appends to Resources and returns the receiver.
func (in *DeleteTagsInput) AddResources(v ...string) *DeleteTagsInput {
	in.Resources = optional.Some(append(in.Resources.UnwrapOr(nil), v...))
	return in
}

// SetTags sets Tags and returns the receiver.
func (in *DeleteTagsInput) SetTags(v []Tag) *DeleteTagsInput {
	in.Tags = optional.Some(v)
	return in
}

// AddTags appends to Tags and returns the receiver.
func (in *DeleteTagsInput) AddTags(v ...Tag) *DeleteTagsInput {
	in.Tags = optional.Some(append(in.Tags.UnwrapOr(nil), v...))
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *DeleteTagsInput) ServiceRequestName() string {
	return "DeleteTags"
}

// SerializePayload implements awsapi.Request.
func (in *DeleteTagsInput) SerializePayload() ([]byte, error) {
	return awsquery.MarshalBody(in.ServiceRequestName(), ServiceMetadata.APIVersion, func(object *query.Object) {
		in.taggingRequest.serialize(object)
	})
}

// DumpBodyToURL implements awsapi.URLDumper.
func (in *DeleteTagsInput) DumpBodyToURL(u *url.URL) error {
	body, err := in.SerializePayload()
	if err != nil {
		return err
	}
	return awsquery.DumpBodyToURL(body, u)
}

// Clone implements awsapi.Request.
func (in *DeleteTagsInput) Clone() awsapi.Request {
	return &DeleteTagsInput{taggingRequest: in.taggingRequest.clone()}
}

// DeleteTagsOutput is the output of DeleteTags.
type DeleteTagsOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &DeleteTagsOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *DeleteTagsOutput) UnmarshalResponse(resp *awsapi.Response) error {
	var doc struct{}
	return awsxml.Unmarshal(resp, &doc)
}
