package codedeploy

//
// ListDeploymentConfigs
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// ListDeploymentConfigsInput is the input of ListDeploymentConfigs.
type ListDeploymentConfigsInput struct {
	// NextToken is the token returned by a previous call.
	NextToken optional.Value[string]
}

var _ awsapi.Request = &ListDeploymentConfigsInput{}

// SetNextToken sets NextToken and returns the receiver.
func (in *ListDeploymentConfigsInput) SetNextToken(v string) *ListDeploymentConfigsInput {
	in.NextToken = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *ListDeploymentConfigsInput) ServiceRequestName() string {
	return "ListDeploymentConfigs"
}

// SerializePayload implements awsapi.Request.
func (in *ListDeploymentConfigsInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.NextToken.IsSome() {
			object.Key("nextToken").String(in.NextToken.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *ListDeploymentConfigsInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *ListDeploymentConfigsInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// ListDeploymentConfigsOutput is the output of ListDeploymentConfigs.
type ListDeploymentConfigsOutput struct {
	awsapi.ResultMetadata

	// DeploymentConfigsList contains the names of the deployment configurations.
	DeploymentConfigsList []string

	// NextToken is set when there are more results to fetch.
	NextToken string
}

var _ awsapi.Result = &ListDeploymentConfigsOutput{}

// AddDeploymentConfigsList appends to DeploymentConfigsList and returns the receiver.
func (out *ListDeploymentConfigsOutput) AddDeploymentConfigsList(v ...string) *ListDeploymentConfigsOutput {
	out.DeploymentConfigsList = append(out.DeploymentConfigsList, v...)
	return out
}

// UnmarshalResponse implements awsapi.Result.
func (out *ListDeploymentConfigsOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	for _, entry := range view.GetArray("deploymentConfigsList") {
		out.AddDeploymentConfigsList(entry.AsString())
	}
	out.NextToken = view.GetString("nextToken")
	return nil
}
