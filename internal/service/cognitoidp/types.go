package cognitoidp

import (
	"time"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// ResourceServerScopeType is a scope exposed by a resource server.
type ResourceServerScopeType struct {
	ScopeName        optional.Value[string]
	ScopeDescription optional.Value[string]
}

// SetScopeName sets ScopeName and returns the receiver.
func (s *ResourceServerScopeType) SetScopeName(v string) *ResourceServerScopeType {
	s.ScopeName = optional.Some(v)
	return s
}

// SetScopeDescription sets ScopeDescription and returns the receiver.
func (s *ResourceServerScopeType) SetScopeDescription(v string) *ResourceServerScopeType {
	s.ScopeDescription = optional.Some(v)
	return s
}

// Jsonize emits the members that have been set.
func (s ResourceServerScopeType) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if s.ScopeName.IsSome() {
		object.Key("ScopeName").String(s.ScopeName.Unwrap())
	}
	if s.ScopeDescription.IsSome() {
		object.Key("ScopeDescription").String(s.ScopeDescription.Unwrap())
	}
}

// NewResourceServerScopeTypeFromView constructs a ResourceServerScopeType from view.
func NewResourceServerScopeTypeFromView(view awsjson.View) ResourceServerScopeType {
	return ResourceServerScopeType{
		ScopeName:        awsjson.OptString(view, "ScopeName"),
		ScopeDescription: awsjson.OptString(view, "ScopeDescription"),
	}
}

func decodeScopes(view awsjson.View) []ResourceServerScopeType {
	return awsjson.DecodeList(view.AsArray(), NewResourceServerScopeTypeFromView)
}

// ResourceServerType describes a resource server.
type ResourceServerType struct {
	UserPoolID optional.Value[string]
	Identifier optional.Value[string]
	Name       optional.Value[string]
	Scopes     optional.Value[[]ResourceServerScopeType]
}

// SetUserPoolID sets UserPoolID and returns the receiver.
func (r *ResourceServerType) SetUserPoolID(v string) *ResourceServerType {
	r.UserPoolID = optional.Some(v)
	return r
}

// SetIdentifier sets Identifier and returns the receiver.
func (r *ResourceServerType) SetIdentifier(v string) *ResourceServerType {
	r.Identifier = optional.Some(v)
	return r
}

// SetName sets Name and returns the receiver.
func (r *ResourceServerType) SetName(v string) *ResourceServerType {
	r.Name = optional.Some(v)
	return r
}

// SetScopes sets Scopes and returns the receiver.
func (r *ResourceServerType) SetScopes(v []ResourceServerScopeType) *ResourceServerType {
	r.Scopes = optional.Some(v)
	return r
}

// AddScopes appends to Scopes and returns the receiver.
func (r *ResourceServerType) AddScopes(v ...ResourceServerScopeType) *ResourceServerType {
	r.Scopes = optional.Some(append(r.Scopes.UnwrapOr(nil), v...))
	return r
}

// Jsonize emits the members that have been set.
func (r ResourceServerType) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if r.UserPoolID.IsSome() {
		object.Key("UserPoolId").String(r.UserPoolID.Unwrap())
	}
	if r.Identifier.IsSome() {
		object.Key("Identifier").String(r.Identifier.Unwrap())
	}
	if r.Name.IsSome() {
		object.Key("Name").String(r.Name.Unwrap())
	}
	if r.Scopes.IsSome() {
		awsjson.EncodeJsonizerList(object.Key("Scopes"), r.Scopes.Unwrap())
	}
}

// UnmarshalView fills the members present in view.
func (r *ResourceServerType) UnmarshalView(view awsjson.View) {
	r.UserPoolID = awsjson.OptString(view, "UserPoolId")
	r.Identifier = awsjson.OptString(view, "Identifier")
	r.Name = awsjson.OptString(view, "Name")
	r.Scopes = awsjson.Opt(view, "Scopes", decodeScopes)
}

// AttributeType is a name-value pair describing a user or a device.
type AttributeType struct {
	Name  optional.Value[string]
	Value optional.Value[string]
}

// SetName sets Name and returns the receiver.
func (a *AttributeType) SetName(v string) *AttributeType {
	a.Name = optional.Some(v)
	return a
}

// SetValue sets Value and returns the receiver.
func (a *AttributeType) SetValue(v string) *AttributeType {
	a.Value = optional.Some(v)
	return a
}

// Jsonize emits the members that have been set.
func (a AttributeType) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if a.Name.IsSome() {
		object.Key("Name").String(a.Name.Unwrap())
	}
	if a.Value.IsSome() {
		object.Key("Value").String(a.Value.Unwrap())
	}
}

// NewAttributeTypeFromView constructs an AttributeType from view.
func NewAttributeTypeFromView(view awsjson.View) AttributeType {
	return AttributeType{
		Name:  awsjson.OptString(view, "Name"),
		Value: awsjson.OptString(view, "Value"),
	}
}

// DeviceType describes a device remembered for a user.
type DeviceType struct {
	DeviceKey                   optional.Value[string]
	DeviceAttributes            optional.Value[[]AttributeType]
	DeviceCreateDate            optional.Value[time.Time]
	DeviceLastModifiedDate      optional.Value[time.Time]
	DeviceLastAuthenticatedDate optional.Value[time.Time]
}

// SetDeviceKey sets DeviceKey and returns the receiver.
func (d *DeviceType) SetDeviceKey(v string) *DeviceType {
	d.DeviceKey = optional.Some(v)
	return d
}

// SetDeviceAttributes sets DeviceAttributes and returns the receiver.
func (d *DeviceType) SetDeviceAttributes(v []AttributeType) *DeviceType {
	d.DeviceAttributes = optional.Some(v)
	return d
}

// AddDeviceAttributes appends to DeviceAttributes and returns the receiver.
func (d *DeviceType) AddDeviceAttributes(v ...AttributeType) *DeviceType {
	d.DeviceAttributes = optional.Some(append(d.DeviceAttributes.UnwrapOr(nil), v...))
	return d
}

// SetDeviceCreateDate sets DeviceCreateDate and returns the receiver.
func (d *DeviceType) SetDeviceCreateDate(v time.Time) *DeviceType {
	d.DeviceCreateDate = optional.Some(v)
	return d
}

// SetDeviceLastModifiedDate sets DeviceLastModifiedDate and returns the receiver.
func (d *DeviceType) SetDeviceLastModifiedDate(v time.Time) *DeviceType {
	d.DeviceLastModifiedDate = optional.Some(v)
	return d
}

// SetDeviceLastAuthenticatedDate sets DeviceLastAuthenticatedDate and returns the receiver.
func (d *DeviceType) SetDeviceLastAuthenticatedDate(v time.Time) *DeviceType {
	d.DeviceLastAuthenticatedDate = optional.Some(v)
	return d
}

// Jsonize emits the members that have been set.
func (d DeviceType) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if d.DeviceKey.IsSome() {
		object.Key("DeviceKey").String(d.DeviceKey.Unwrap())
	}
	if d.DeviceAttributes.IsSome() {
		awsjson.EncodeJsonizerList(object.Key("DeviceAttributes"), d.DeviceAttributes.Unwrap())
	}
	if d.DeviceCreateDate.IsSome() {
		awsjson.EncodeTimestamp(object.Key("DeviceCreateDate"), d.DeviceCreateDate.Unwrap())
	}
	if d.DeviceLastModifiedDate.IsSome() {
		awsjson.EncodeTimestamp(object.Key("DeviceLastModifiedDate"), d.DeviceLastModifiedDate.Unwrap())
	}
	if d.DeviceLastAuthenticatedDate.IsSome() {
		awsjson.EncodeTimestamp(object.Key("DeviceLastAuthenticatedDate"), d.DeviceLastAuthenticatedDate.Unwrap())
	}
}

// NewDeviceTypeFromView constructs a DeviceType from view.
func NewDeviceTypeFromView(view awsjson.View) DeviceType {
	return DeviceType{
		DeviceKey: awsjson.OptString(view, "DeviceKey"),
		DeviceAttributes: awsjson.Opt(view, "DeviceAttributes", func(v awsjson.View) []AttributeType {
			return awsjson.DecodeList(v.AsArray(), NewAttributeTypeFromView)
		}),
		DeviceCreateDate:            awsjson.OptTimestamp(view, "DeviceCreateDate"),
		DeviceLastModifiedDate:      awsjson.OptTimestamp(view, "DeviceLastModifiedDate"),
		DeviceLastAuthenticatedDate: awsjson.OptTimestamp(view, "DeviceLastAuthenticatedDate"),
	}
}
