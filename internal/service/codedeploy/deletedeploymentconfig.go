package codedeploy

//
// DeleteDeploymentConfig
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// DeleteDeploymentConfigInput is the input of DeleteDeploymentConfig.
type DeleteDeploymentConfigInput struct {
	DeploymentConfigName optional.Value[string]
}

var _ awsapi.Request = &DeleteDeploymentConfigInput{}

// SetDeploymentConfigName sets DeploymentConfigName and returns the receiver.
func (in *DeleteDeploymentConfigInput) SetDeploymentConfigName(v string) *DeleteDeploymentConfigInput {
	in.DeploymentConfigName = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *DeleteDeploymentConfigInput) ServiceRequestName() string {
	return "DeleteDeploymentConfig"
}

// SerializePayload implements awsapi.Request.
func (in *DeleteDeploymentConfigInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.DeploymentConfigName.IsSome() {
			object.Key("deploymentConfigName").String(in.DeploymentConfigName.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *DeleteDeploymentConfigInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *DeleteDeploymentConfigInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// DeleteDeploymentConfigOutput is the output of DeleteDeploymentConfig.
type DeleteDeploymentConfigOutput struct {
	awsapi.ResultMetadata
}

var _ awsapi.Result = &DeleteDeploymentConfigOutput{}

// UnmarshalResponse implements awsapi.Result.
func (out *DeleteDeploymentConfigOutput) UnmarshalResponse(resp *awsapi.Response) error {
	_, err := awsjson.ParseResponse(resp)
	return err
}
