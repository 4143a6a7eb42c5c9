package codedeploy

//
// GetDeploymentConfig
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// GetDeploymentConfigInput is the input of GetDeploymentConfig.
type GetDeploymentConfigInput struct {
	// DeploymentConfigName is the name of a deployment configuration.
	DeploymentConfigName optional.Value[string]
}

var _ awsapi.Request = &GetDeploymentConfigInput{}

// SetDeploymentConfigName sets DeploymentConfigName and returns the receiver.
func (in *GetDeploymentConfigInput) SetDeploymentConfigName(v string) *GetDeploymentConfigInput {
	in.DeploymentConfigName = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *GetDeploymentConfigInput) ServiceRequestName() string {
	return "GetDeploymentConfig"
}

// SerializePayload implements awsapi.Request.
func (in *GetDeploymentConfigInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.DeploymentConfigName.IsSome() {
			object.Key("deploymentConfigName").String(in.DeploymentConfigName.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *GetDeploymentConfigInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *GetDeploymentConfigInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// GetDeploymentConfigOutput is the output of GetDeploymentConfig.
type GetDeploymentConfigOutput struct {
	awsapi.ResultMetadata

	// DeploymentConfigInfo describes the deployment configuration.
	DeploymentConfigInfo DeploymentConfigInfo
}

var _ awsapi.Result = &GetDeploymentConfigOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *GetDeploymentConfigOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	if view.ValueExists("deploymentConfigInfo") {
		out.DeploymentConfigInfo.UnmarshalView(view.GetObject("deploymentConfigInfo"))
	}
	return nil
}
