package ec2

import (
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsquery"
)

// Tag is a key-value pair attached to a resource.
type Tag struct {
	Key   optional.Value[string]
	Value optional.Value[string]
}

// SetKey sets Key and returns the receiver.
func (t *Tag) SetKey(v string) *Tag {
	t.Key = optional.Some(v)
	return t
}

// SetValue sets Value and returns the receiver.
func (t *Tag) SetValue(v string) *Tag {
	t.Value = optional.Some(v)
	return t
}

func (t Tag) serialize(value query.Value) {
	object := value.Object()
	if t.Key.IsSome() {
		object.Key("Key").String(t.Key.Unwrap())
	}
	if t.Value.IsSome() {
		object.Key("Value").String(t.Value.Unwrap())
	}
}

// taggingRequest contains the members shared by CreateTags and DeleteTags.
type taggingRequest struct {
	// DryRun checks the permissions without performing the action.
	DryRun optional.Value[bool]

	// Resources contains the IDs of the resources.
	Resources optional.Value[[]string]

	// Tags contains the tags.
	Tags optional.Value[[]Tag]
}

// serialize emits the members using the ec2Query flattened lists. Empty
// lists are omitted.
func (r *taggingRequest) serialize(object *query.Object) {
	if r.DryRun.IsSome() {
		object.Key("DryRun").Boolean(r.DryRun.Unwrap())
	}
	if resources := r.Resources.UnwrapOr(nil); len(resources) > 0 {
		awsquery.EncodeStringList(object.FlatKey("ResourceId"), "ResourceId", resources)
	}
	if tags := r.Tags.UnwrapOr(nil); len(tags) > 0 {
		awsquery.EncodeList(object.FlatKey("Tag"), "Tag", tags, func(value query.Value, tag Tag) {
			tag.serialize(value)
		})
	}
}

func (r taggingRequest) clone() taggingRequest {
	r.Resources = optional.Map(r.Resources, slices.Clone[[]string])
	r.Tags = optional.Map(r.Tags, slices.Clone[[]Tag])
	return r
}
