package codedeploy

import (
	"time"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// MinimumHealthyHostsType tells how to interpret MinimumHealthyHosts.Value.
type MinimumHealthyHostsType string

const (
	MinimumHealthyHostsTypeHostCount    = MinimumHealthyHostsType("HOST_COUNT")
	MinimumHealthyHostsTypeFleetPercent = MinimumHealthyHostsType("FLEET_PERCENT")
)

// ComputePlatform is the platform a deployment targets.
type ComputePlatform string

const (
	ComputePlatformServer = ComputePlatform("Server")
	ComputePlatformLambda = ComputePlatform("Lambda")
	ComputePlatformECS    = ComputePlatform("ECS")
)

// MinimumHealthyHosts is the minimum number (or percentage) of instances
// that must remain healthy during a deployment.
type MinimumHealthyHosts struct {
	Type  optional.Value[MinimumHealthyHostsType]
	Value optional.Value[int32]
}

// SetType sets Type and returns the receiver.
func (m *MinimumHealthyHosts) SetType(v MinimumHealthyHostsType) *MinimumHealthyHosts {
	m.Type = optional.Some(v)
	return m
}

// SetValue sets Value and returns the receiver.
func (m *MinimumHealthyHosts) SetValue(v int32) *MinimumHealthyHosts {
	m.Value = optional.Some(v)
	return m
}

// Jsonize emits the members that have been set.
func (m MinimumHealthyHosts) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if m.Type.IsSome() {
		object.Key("type").String(string(m.Type.Unwrap()))
	}
	if m.Value.IsSome() {
		object.Key("value").Integer(m.Value.Unwrap())
	}
}

// UnmarshalView fills the members present in view.
func (m *MinimumHealthyHosts) UnmarshalView(view awsjson.View) {
	m.Type = awsjson.Opt(view, "type", func(v awsjson.View) MinimumHealthyHostsType {
		return MinimumHealthyHostsType(v.AsString())
	})
	m.Value = awsjson.OptInteger(view, "value")
}

// NewMinimumHealthyHostsFromView constructs a MinimumHealthyHosts from view.
func NewMinimumHealthyHostsFromView(view awsjson.View) MinimumHealthyHosts {
	var m MinimumHealthyHosts
	m.UnmarshalView(view)
	return m
}

// DeploymentConfigInfo describes a deployment configuration.
type DeploymentConfigInfo struct {
	DeploymentConfigID   optional.Value[string]
	DeploymentConfigName optional.Value[string]
	MinimumHealthyHosts  optional.Value[MinimumHealthyHosts]
	CreateTime           optional.Value[time.Time]
	ComputePlatform      optional.Value[ComputePlatform]
}

// SetDeploymentConfigID sets DeploymentConfigID and returns the receiver.
func (d *DeploymentConfigInfo) SetDeploymentConfigID(v string) *DeploymentConfigInfo {
	d.DeploymentConfigID = optional.Some(v)
	return d
}

// SetDeploymentConfigName sets DeploymentConfigName and returns the receiver.
func (d *DeploymentConfigInfo) SetDeploymentConfigName(v string) *DeploymentConfigInfo {
	d.DeploymentConfigName = optional.Some(v)
	return d
}

// SetMinimumHealthyHosts sets MinimumHealthyHosts and returns the receiver.
func (d *DeploymentConfigInfo) SetMinimumHealthyHosts(v MinimumHealthyHosts) *DeploymentConfigInfo {
	d.MinimumHealthyHosts = optional.Some(v)
	return d
}

// SetCreateTime sets CreateTime and returns the receiver.
func (d *DeploymentConfigInfo) SetCreateTime(v time.Time) *DeploymentConfigInfo {
	d.CreateTime = optional.Some(v)
	return d
}

// SetComputePlatform sets ComputePlatform and returns the receiver.
func (d *DeploymentConfigInfo) SetComputePlatform(v ComputePlatform) *DeploymentConfigInfo {
	d.ComputePlatform = optional.Some(v)
	return d
}

// Jsonize emits the members that have been set.
func (d DeploymentConfigInfo) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if d.DeploymentConfigID.IsSome() {
		object.Key("deploymentConfigId").String(d.DeploymentConfigID.Unwrap())
	}
	if d.DeploymentConfigName.IsSome() {
		object.Key("deploymentConfigName").String(d.DeploymentConfigName.Unwrap())
	}
	if d.MinimumHealthyHosts.IsSome() {
		d.MinimumHealthyHosts.Unwrap().Jsonize(object.Key("minimumHealthyHosts"))
	}
	if d.CreateTime.IsSome() {
		awsjson.EncodeTimestamp(object.Key("createTime"), d.CreateTime.Unwrap())
	}
	if d.ComputePlatform.IsSome() {
		object.Key("computePlatform").String(string(d.ComputePlatform.Unwrap()))
	}
}

// UnmarshalView fills the members present in view.
func (d *DeploymentConfigInfo) UnmarshalView(view awsjson.View) {
	d.DeploymentConfigID = awsjson.OptString(view, "deploymentConfigId")
	d.DeploymentConfigName = awsjson.OptString(view, "deploymentConfigName")
	d.MinimumHealthyHosts = awsjson.Opt(view, "minimumHealthyHosts", NewMinimumHealthyHostsFromView)
	d.CreateTime = awsjson.OptTimestamp(view, "createTime")
	d.ComputePlatform = awsjson.Opt(view, "computePlatform", func(v awsjson.View) ComputePlatform {
		return ComputePlatform(v.AsString())
	})
}
