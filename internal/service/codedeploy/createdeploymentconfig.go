package codedeploy

//
// CreateDeploymentConfig
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// CreateDeploymentConfigInput is the input of CreateDeploymentConfig.
type CreateDeploymentConfigInput struct {
	// DeploymentConfigName is the name of the deployment configuration to create.
	DeploymentConfigName optional.Value[string]

	// MinimumHealthyHosts is the minimum number of healthy instances.
	MinimumHealthyHosts optional.Value[MinimumHealthyHosts]

	// ComputePlatform is the destination platform.
	ComputePlatform optional.Value[ComputePlatform]
}

var _ awsapi.Request = &CreateDeploymentConfigInput{}

// SetDeploymentConfigName sets DeploymentConfigName and returns the receiver.
func (in *CreateDeploymentConfigInput) SetDeploymentConfigName(v string) *CreateDeploymentConfigInput {
	in.DeploymentConfigName = optional.Some(v)
	return in
}

// SetMinimumHealthyHosts sets MinimumHealthyHosts and returns the receiver.
func (in *CreateDeploymentConfigInput) SetMinimumHealthyHosts(v MinimumHealthyHosts) *CreateDeploymentConfigInput {
	in.MinimumHealthyHosts = optional.Some(v)
	return in
}

// SetComputePlatform sets ComputePlatform and returns the receiver.
func (in *CreateDeploymentConfigInput) SetComputePlatform(v ComputePlatform) *CreateDeploymentConfigInput {
	in.ComputePlatform = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *CreateDeploymentConfigInput) ServiceRequestName() string {
	return "CreateDeploymentConfig"
}

// SerializePayload implements awsapi.Request.
func (in *CreateDeploymentConfigInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.DeploymentConfigName.IsSome() {
			object.Key("deploymentConfigName").String(in.DeploymentConfigName.Unwrap())
		}
		if in.MinimumHealthyHosts.IsSome() {
			in.MinimumHealthyHosts.Unwrap().Jsonize(object.Key("minimumHealthyHosts"))
		}
		if in.ComputePlatform.IsSome() {
			object.Key("computePlatform").String(string(in.ComputePlatform.Unwrap()))
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *CreateDeploymentConfigInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *CreateDeploymentConfigInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// CreateDeploymentConfigOutput is the output of CreateDeploymentConfig.
type CreateDeploymentConfigOutput struct {
	awsapi.ResultMetadata

	// DeploymentConfigID is the unique ID of the new deployment configuration.
	DeploymentConfigID string
}

var _ awsapi.Result = &CreateDeploymentConfigOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *CreateDeploymentConfigOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	out.DeploymentConfigID = view.GetString("deploymentConfigId")
	return nil
}
