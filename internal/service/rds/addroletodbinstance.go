package rds

//
// AddRoleToDBInstance
//

import (
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsquery"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// AddRoleToDBInstanceInput is the input of AddRoleToDBInstance.
type AddRoleToDBInstanceInput struct {
	// DBInstanceIdentifier is the name of the DB instance.
	DBInstanceIdentifier optional.Value[string]

	// RoleArn is the ARN of the IAM role to associate.
	RoleArn optional.Value[string]

	// FeatureName is the feature the role is for (e.g., "s3Import").
	FeatureName optional.Value[string]
}

var (
	_ awsapi.Request   = &AddRoleToDBInstanceInput{}
	_ awsapi.URLDumper = &AddRoleToDBInstanceInput{}
)

// SetDBInstanceIdentifier sets DBInstanceIdentifier and returns the receiver.
func (in *AddRoleToDBInstanceInput) SetDBInstanceIdentifier(v string) *AddRoleToDBInstanceInput {
	in.DBInstanceIdentifier = optional.Some(v)
	return in
}

// SetRoleArn sets RoleArn and returns the receiver.
func (in *AddRoleToDBInstanceInput) SetRoleArn(v string) *AddRoleToDBInstanceInput {
	in.RoleArn = optional.Some(v)
	return in
}

// SetFeatureName sets FeatureName and returns the receiver.
func (in *AddRoleToDBInstanceInput) SetFeatureName(v string) *AddRoleToDBInstanceInput {
	in.FeatureName = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *AddRoleToDBInstanceInput) ServiceRequestName() string {
	return "AddRoleToDBInstance"
}

// SerializePayload implements awsapi.Request.
func (in *AddRoleToDBInstanceInput) SerializePayload() ([]byte, error) {
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
func (in *AddRoleToDBInstanceInput) DumpBodyToURL(u *url.URL) error {
	body, err := in.SerializePayload()
	if err != nil {
		return err
	}
	return awsquery.DumpBodyToURL(body, u)
}

// Clone implements awsapi.Request.
func (in *AddRoleToDBInstanceInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// AddRoleToDBInstanceOutput is the output of AddRoleToDBInstance.
type AddRoleToDBInstanceOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &AddRoleToDBInstanceOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *AddRoleToDBInstanceOutput) UnmarshalResponse(resp *awsapi.Response) error {
	var doc struct{}
	return awsxml.Unmarshal(resp, &doc)
}
