package rds

import (
	"encoding/xml"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsquery"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// Filter selects resources by name and values.
type Filter struct {
	Name   optional.Value[string]
	Values optional.Value[[]string]
}

// SetName sets Name and returns the receiver.
func (f *Filter) SetName(v string) *Filter {
	f.Name = optional.Some(v)
	return f
}

// SetValues sets Values and returns the receiver.
func (f *Filter) SetValues(v []string) *Filter {
	f.Values = optional.Some(v)
	return f
}

// AddValues appends to Values and returns the receiver.
func (f *Filter) AddValues(v ...string) *Filter {
	f.Values = optional.Some(append(f.Values.UnwrapOr(nil), v...))
	return f
}

func (f Filter) serialize(value query.Value) {
	object := value.Object()
	if f.Name.IsSome() {
		object.Key("Name").String(f.Name.Unwrap())
	}
	if f.Values.IsSome() {
		awsquery.EncodeStringList(object.Key("Values"), "Value", f.Values.Unwrap())
	}
}

func cloneFilters(list []Filter) []Filter {
	out := slices.Clone(list)
	for idx := range out {
		out[idx].Values = optional.Map(out[idx].Values, slices.Clone[[]string])
	}
	return out
}

// DBInstanceRole is an IAM role associated with a DB instance.
type DBInstanceRole struct {
	RoleArn     optional.Value[string] `xml:"RoleArn"`
	FeatureName optional.Value[string] `xml:"FeatureName"`

	// Status is one of ACTIVE, PENDING or INVALID.
	Status optional.Value[string] `xml:"Status"`
}

// DBInstanceRoleList is the list of roles of a DB instance.
type DBInstanceRoleList []DBInstanceRole

// UnmarshalXML implements xml.Unmarshaler.
func (l *DBInstanceRoleList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return awsxml.DecodeList(d, start, (*[]DBInstanceRole)(l))
}

// DBInstance describes a DB instance.
type DBInstance struct {
	DBInstanceIdentifier optional.Value[string]             `xml:"DBInstanceIdentifier"`
	DBInstanceClass      optional.Value[string]             `xml:"DBInstanceClass"`
	Engine               optional.Value[string]             `xml:"Engine"`
	DBInstanceStatus     optional.Value[string]             `xml:"DBInstanceStatus"`
	AllocatedStorage     optional.Value[int32]              `xml:"AllocatedStorage"`
	InstanceCreateTime   optional.Value[time.Time]          `xml:"InstanceCreateTime"`
	AssociatedRoles      optional.Value[DBInstanceRoleList] `xml:"AssociatedRoles"`
}

// DBInstanceList is a list of DB instances.
type DBInstanceList []DBInstance

// UnmarshalXML implements xml.Unmarshaler.
func (l *DBInstanceList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return awsxml.DecodeList(d, start, (*[]DBInstance)(l))
}
