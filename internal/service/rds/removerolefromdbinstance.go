package rds

//
// RemoveRoleFromDBInstance
//

import (
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsquery"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// RemoveRoleFromDBInstanceInput is the input of RemoveRoleFromDBInstance.
type RemoveRoleFromDBInstanceInput struct {
	DBInstanceIdentifier optional.Value[string]
	RoleArn              optional.Value[string]
	FeatureName          optional.Value[string]
}

var (
	_ awsapi.Request   = &RemoveRoleFromDBInstanceInput{}
	_ awsapi.URLDumper = &RemoveRoleFromDBInstanceInput{}
)

// SetDBInstanceIdentifier sets DBInstanceIdentifier and returns the receiver.
func (in *RemoveRoleFromDBInstanceInput) SetDBInstanceIdentifier(v string) *RemoveRoleFromDBInstanceInput {
	in.DBInstanceIdentifier = optional.Some(v)
	return in
}

// SetRoleArn sets RoleArn and returns the receiver.
func (in *RemoveRoleFromDBInstanceInput) SetRoleArn(v string) *RemoveRoleFromDBInstanceInput {
	in.RoleArn = optional.Some(v)
	return in
}

// SetFeatureName sets FeatureName and returns the receiver.
func (in *RemoveRoleFromDBInstanceInput) SetFeatureName(v string) *RemoveRoleFromDBInstanceInput {
	in.FeatureName = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *RemoveRoleFromDBInstanceInput) ServiceRequestName() string {
	return "RemoveRoleFromDBInstance"
}

// SerializePayload implements awsapi.Request.
func (in *RemoveRoleFromDBInstanceInput) SerializePayload() ([]byte, error) {
	return awsquery.MarshalBody(in.ServiceRequestName(), ServiceMetadata.APIVersion, func(object *query.Object) {
		if in.DBInstanceIdentifier.IsSome() {
			object.Key("DBInstanceIdentifier").String(in.DBInstanceIdentifier.Unwrap())
		}
		if in.RoleArn.IsSome() {
			object.Key("RoleArn").String(in.RoleArn.Unwrap())
		}
		if in.FeatureName.IsSome() {
			object.Key("FeatureName").String(in.FeatureName.Unwrap())
		}
	})
}

// DumpBodyToURL implements awsapi.URLDumper.
func (in *RemoveRoleFromDBInstanceInput) DumpBodyToURL(u *url.URL) error {
	body, err := in.SerializePayload()
	if err != nil {
		return err
	}
	return awsquery.DumpBodyToURL(body, u)
}

// Clone implements awsapi.Request.
func (in *RemoveRoleFromDBInstanceInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// RemoveRoleFromDBInstanceOutput is the output of RemoveRoleFromDBInstance.
type RemoveRoleFromDBInstanceOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &RemoveRoleFromDBInstanceOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *RemoveRoleFromDBInstanceOutput) UnmarshalResponse(resp *awsapi.Response) error {
	var doc struct{}
	return awsxml.Unmarshal(resp, &doc)
}
