package lambda

//
// TagResource and ListTags
//

import (
	"maps"
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// TagResourceInput is the input of TagResource.
type TagResourceInput struct {
	// Resource is the ARN of the function.
	Resource optional.Value[string]

	// Tags contains the tags to add.
	Tags optional.Value[map[string]string]
}

var (
	_ awsapi.Request    = &TagResourceInput{}
	_ awsapi.HTTPBinder = &TagResourceInput{}
)

// SetResource sets Resource and returns the receiver.
func (in *TagResourceInput) SetResource(v string) *TagResourceInput {
	in.Resource = optional.Some(v)
	return in
}

// SetTags sets Tags and returns the receiver.
func (in *TagResourceInput) SetTags(v map[string]string) *TagResourceInput {
	in.Tags = optional.Some(v)
	return in
}

// AddTags adds the key and value to Tags and returns the receiver.
func (in *TagResourceInput) AddTags(key, value string) *TagResourceInput {
	tags := in.Tags.UnwrapOr(nil)
	if tags == nil {
		tags = map[string]string{}
	}
	tags[key] = value
	in.Tags = optional.Some(tags)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *TagResourceInput) ServiceRequestName() string {
	return "TagResource"
}

// SerializePayload implements awsapi.Request.
func (in *TagResourceInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.Tags.IsSome() {
			awsjson.EncodeStringMap(object.Key("Tags"), in.Tags.Unwrap())
		}
	}), nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *TagResourceInput) HTTPMethod() string {
	return http.MethodPost
}

// RequestURI implements awsapi.HTTPBinder.
func (in *TagResourceInput) RequestURI() string {
	return "/2017-03-31/tags/{ARN}"
}

// BindURI implements awsapi.HTTPBinder.
func (in *TagResourceInput) BindURI(encoder *httpbinding.Encoder) error {
	return awsapi.BindLabel(encoder, "ARN", in.Resource)
}

// Clone implements awsapi.Request.
func (in *TagResourceInput) Clone() awsapi.Request {
	out := *in
	out.Tags = optional.Map(in.Tags, maps.Clone[map[string]string])
	return &out
}

// TagResourceOutput is the output of TagResource.
type TagResourceOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &TagResourceOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *TagResourceOutput) UnmarshalResponse(resp *awsapi.Response) error {
	_, err := awsjson.ParseResponse(resp)
	return err
}

// ListTagsInput is the input of ListTags.
type ListTagsInput struct {
	// Resource is the ARN of the function.
	Resource optional.Value[string]
}

var (
	_ awsapi.Request    = &ListTagsInput{}
	_ awsapi.HTTPBinder = &ListTagsInput{}
)

// SetResource sets Resource and returns the receiver.
func (in *ListTagsInput) SetResource(v string) *ListTagsInput {
	in.Resource = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *ListTagsInput) ServiceRequestName() string {
	return "ListTags"
}

// SerializePayload implements awsapi.Request.
func (in *ListTagsInput) SerializePayload() ([]byte, error) {
	return nil, nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *ListTagsInput) HTTPMethod() string {
	return http.MethodGet
}

// RequestURI implements awsapi.HTTPBinder.
func (in *ListTagsInput) RequestURI() string {
	return "/2017-03-31/tags/{ARN}"
}

// BindURI implements awsapi.HTTPBinder.
func (in *ListTagsInput) BindURI(encoder *httpbinding.Encoder) error {
	return awsapi.BindLabel(encoder, "ARN", in.Resource)
}

// Clone implements awsapi.Request.
func (in *ListTagsInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// ListTagsOutput is the output of ListTags.
type ListTagsOutput struct {
	awsapi.ResultMetadata

	// Tags contains the tags of the function.
	Tags map[string]string
}

var _ awsapi.Result = &ListTagsOutput{}

// AddTags adds the key and value to Tags and returns the receiver.
func (out *ListTagsOutput) AddTags(key, value string) *ListTagsOutput {
	if out.Tags == nil {
		out.Tags = map[string]string{}
	}
	out.Tags[key] = value
	return out
}

// UnmarshalResponse implements awsapi.Result.
func (out *ListTagsOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	for key, value := range view.GetAllObjects("Tags") {
		out.AddTags(key, value.AsString())
	}
	return nil
}
