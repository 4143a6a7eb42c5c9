package lambda

import (
	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// InvocationType selects how a function is invoked.
type InvocationType string

const (
	InvocationTypeRequestResponse = InvocationType("RequestResponse")
	InvocationTypeEvent           = InvocationType("Event")
	InvocationTypeDryRun          = InvocationType("DryRun")
)

// LogType selects whether the execution log is returned.
type LogType string

const (
	LogTypeNone = LogType("None")
	LogTypeTail = LogType("Tail")
)

// Architecture is an instruction set architecture.
type Architecture string

const (
	ArchitectureX8664 = Architecture("x86_64")
	ArchitectureArm64 = Architecture("arm64")
)

// LayerVersionsListItem describes a version of a layer.
type LayerVersionsListItem struct {
	LayerVersionArn         optional.Value[string]
	Version                 optional.Value[int64]
	Description             optional.Value[string]
	CreatedDate             optional.Value[string]
	CompatibleRuntimes      optional.Value[[]string]
	LicenseInfo             optional.Value[string]
	CompatibleArchitectures optional.Value[[]Architecture]
}

// SetLayerVersionArn sets LayerVersionArn and returns the receiver.
func (l *LayerVersionsListItem) SetLayerVersionArn(v string) *LayerVersionsListItem {
	l.LayerVersionArn = optional.Some(v)
	return l
}

// SetVersion sets Version and returns the receiver.
func (l *LayerVersionsListItem) SetVersion(v int64) *LayerVersionsListItem {
	l.Version = optional.Some(v)
	return l
}

// SetDescription sets Description and returns the receiver.
func (l *LayerVersionsListItem) SetDescription(v string) *LayerVersionsListItem {
	l.Description = optional.Some(v)
	return l
}

// SetCreatedDate sets CreatedDate and returns the receiver.
func (l *LayerVersionsListItem) SetCreatedDate(v string) *LayerVersionsListItem {
	l.CreatedDate = optional.Some(v)
	return l
}

// AddCompatibleRuntimes appends to CompatibleRuntimes and returns the receiver.
func (l *LayerVersionsListItem) AddCompatibleRuntimes(v ...string) *LayerVersionsListItem {
	l.CompatibleRuntimes = optional.Some(append(l.CompatibleRuntimes.UnwrapOr(nil), v...))
	return l
}

// SetLicenseInfo sets LicenseInfo and returns the receiver.
func (l *LayerVersionsListItem) SetLicenseInfo(v string) *LayerVersionsListItem {
	l.LicenseInfo = optional.Some(v)
	return l
}

// AddCompatibleArchitectures appends to CompatibleArchitectures and returns the receiver.
func (l *LayerVersionsListItem) AddCompatibleArchitectures(v ...Architecture) *LayerVersionsListItem {
	l.CompatibleArchitectures = optional.Some(append(l.CompatibleArchitectures.UnwrapOr(nil), v...))
	return l
}

// Jsonize emits the members that have been set.
func (l LayerVersionsListItem) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if l.LayerVersionArn.IsSome() {
		object.Key("LayerVersionArn").String(l.LayerVersionArn.Unwrap())
	}
	if l.Version.IsSome() {
		object.Key("Version").Long(l.Version.Unwrap())
	}
	if l.Description.IsSome() {
		object.Key("Description").String(l.Description.Unwrap())
	}
	if l.CreatedDate.IsSome() {
		object.Key("CreatedDate").String(l.CreatedDate.Unwrap())
	}
	if l.CompatibleRuntimes.IsSome() {
		awsjson.EncodeStringList(object.Key("CompatibleRuntimes"), l.CompatibleRuntimes.Unwrap())
	}
	if l.LicenseInfo.IsSome() {
		object.Key("LicenseInfo").String(l.LicenseInfo.Unwrap())
	}
	if l.CompatibleArchitectures.IsSome() {
		awsjson.EncodeList(object.Key("CompatibleArchitectures"), l.CompatibleArchitectures.Unwrap(),
			func(v smithyjson.Value, arch Architecture) {
				v.String(string(arch))
			})
	}
}

// NewLayerVersionsListItemFromView constructs a LayerVersionsListItem from view.
func NewLayerVersionsListItemFromView(view awsjson.View) LayerVersionsListItem {
	return LayerVersionsListItem{
		LayerVersionArn:    awsjson.OptString(view, "LayerVersionArn"),
		Version:            awsjson.OptInt64(view, "Version"),
		Description:        awsjson.OptString(view, "Description"),
		CreatedDate:        awsjson.OptString(view, "CreatedDate"),
		CompatibleRuntimes: awsjson.OptStringList(view, "CompatibleRuntimes"),
		LicenseInfo:        awsjson.OptString(view, "LicenseInfo"),
		CompatibleArchitectures: awsjson.Opt(view, "CompatibleArchitectures", func(v awsjson.View) []Architecture {
			return awsjson.DecodeList(v.AsArray(), func(entry awsjson.View) Architecture {
				return Architecture(entry.AsString())
			})
		}),
	}
}

// LayersListItem describes a layer and its latest matching version.
type LayersListItem struct {
	LayerName             optional.Value[string]
	LayerArn              optional.Value[string]
	LatestMatchingVersion optional.Value[LayerVersionsListItem]
}

// SetLayerName sets LayerName and returns the receiver.
func (l *LayersListItem) SetLayerName(v string) *LayersListItem {
	l.LayerName = optional.Some(v)
	return l
}

// SetLayerArn sets LayerArn and returns the receiver.
func (l *LayersListItem) SetLayerArn(v string) *LayersListItem {
	l.LayerArn = optional.Some(v)
	return l
}

// SetLatestMatchingVersion sets LatestMatchingVersion and returns the receiver.
func (l *LayersListItem) SetLatestMatchingVersion(v LayerVersionsListItem) *LayersListItem {
	l.LatestMatchingVersion = optional.Some(v)
	return l
}

// Jsonize emits the members that have been set.
func (l LayersListItem) Jsonize(value smithyjson.Value) {
	object := value.Object()
	defer object.Close()
	if l.LayerName.IsSome() {
		object.Key("LayerName").String(l.LayerName.Unwrap())
	}
	if l.LayerArn.IsSome() {
		object.Key("LayerArn").String(l.LayerArn.Unwrap())
	}
	if l.LatestMatchingVersion.IsSome() {
		l.LatestMatchingVersion.Unwrap().Jsonize(object.Key("LatestMatchingVersion"))
	}
}

// NewLayersListItemFromView constructs a LayersListItem from view.
func NewLayersListItemFromView(view awsjson.View) LayersListItem {
	return LayersListItem{
		LayerName:             awsjson.OptString(view, "LayerName"),
		LayerArn:              awsjson.OptString(view, "LayerArn"),
		LatestMatchingVersion: awsjson.Opt(view, "LatestMatchingVersion", NewLayerVersionsListItemFromView),
	}
}
