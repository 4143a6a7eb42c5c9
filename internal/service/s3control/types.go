package s3control

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	smithyxml "github.com/aws/smithy-go/encoding/xml"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

const publicAccessBlockURI = "/v20180820/configuration/publicAccessBlock"

// PublicAccessBlockConfiguration controls public access to the buckets
// of an account. Unset members are left to the service default.
type PublicAccessBlockConfiguration struct {
	BlockPublicAcls       optional.Value[bool] `xml:"BlockPublicAcls"`
	IgnorePublicAcls      optional.Value[bool] `xml:"IgnorePublicAcls"`
	BlockPublicPolicy     optional.Value[bool] `xml:"BlockPublicPolicy"`
	RestrictPublicBuckets optional.Value[bool] `xml:"RestrictPublicBuckets"`
}

// SetBlockPublicAcls sets BlockPublicAcls and returns the receiver.
func (c *PublicAccessBlockConfiguration) SetBlockPublicAcls(v bool) *PublicAccessBlockConfiguration {
	c.BlockPublicAcls = optional.Some(v)
	return c
}

// SetIgnorePublicAcls sets IgnorePublicAcls and returns the receiver.
func (c *PublicAccessBlockConfiguration) SetIgnorePublicAcls(v bool) *PublicAccessBlockConfiguration {
	c.IgnorePublicAcls = optional.Some(v)
	return c
}

// SetBlockPublicPolicy sets BlockPublicPolicy and returns the receiver.
func (c *PublicAccessBlockConfiguration) SetBlockPublicPolicy(v bool) *PublicAccessBlockConfiguration {
	c.BlockPublicPolicy = optional.Some(v)
	return c
}

// SetRestrictPublicBuckets sets RestrictPublicBuckets and returns the receiver.
func (c *PublicAccessBlockConfiguration) SetRestrictPublicBuckets(v bool) *PublicAccessBlockConfiguration {
	c.RestrictPublicBuckets = optional.Some(v)
	return c
}

type boolMember struct {
	name  string
	value optional.Value[bool]
}

// members returns the members in wire order.
func (c *PublicAccessBlockConfiguration) members() []boolMember {
	return []boolMember{
		{"BlockPublicAcls", c.BlockPublicAcls},
		{"IgnorePublicAcls", c.IgnorePublicAcls},
		{"BlockPublicPolicy", c.BlockPublicPolicy},
		{"RestrictPublicBuckets", c.RestrictPublicBuckets},
	}
}

// serialize emits the members that have been set as children of value.
func (c *PublicAccessBlockConfiguration) serialize(value smithyxml.Value) {
	for _, member := range c.members() {
		if member.value.IsSome() {
			value.MemberElement(smithyxml.StartElement{
				Name: smithyxml.Name{Local: member.name},
			}).Boolean(member.value.Unwrap())
		}
	}
}

// Jsonize emits the members that have been set.
func (c PublicAccessBlockConfiguration) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	for _, member := range c.members() {
		if member.value.IsSome() {
			object.Key(member.name).Boolean(member.value.Unwrap())
		}
	}
}

// NewPublicAccessBlockConfigurationFromView constructs a
// PublicAccessBlockConfiguration from view.
func NewPublicAccessBlockConfigurationFromView(view awsjson.View) PublicAccessBlockConfiguration {
	return PublicAccessBlockConfiguration{
		BlockPublicAcls:       awsjson.OptBool(view, "BlockPublicAcls"),
		IgnorePublicAcls:      awsjson.OptBool(view, "IgnorePublicAcls"),
		BlockPublicPolicy:     awsjson.OptBool(view, "BlockPublicPolicy"),
		RestrictPublicBuckets: awsjson.OptBool(view, "RestrictPublicBuckets"),
	}
}

// accountHeaders returns the x-amz-account-id header every operation sends.
func accountHeaders(accountID optional.Value[string]) http.Header {
	headers := http.Header{}
	if accountID.IsSome() {
		headers.Set("X-Amz-Account-Id", accountID.Unwrap())
	}
	return headers
}
