// Package codedeploy contains the operation models and the client for
// AWS CodeDeploy deployment configurations.
package codedeploy

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes AWS CodeDeploy.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "CodeDeploy",
	SigningName:  "codedeploy",
	APIVersion:   "2014-10-06",
	Protocol:     awsapi.ProtocolJSON,
	JSONVersion:  "1.1",
	TargetPrefix: "CodeDeploy_20141006",
}

// Client is the AWS CodeDeploy client.
type Client struct {
	core *awsclient.Client
}

// New creates a new [*Client].
func New(config awsclient.Config) *Client {
	return &Client{core: awsclient.New(ServiceMetadata, config)}
}

// Core returns the underlying client core.
func (c *Client) Core() *awsclient.Client {
	return c.core
}

// GetDeploymentConfig gets information about a deployment configuration.
func (c *Client) GetDeploymentConfig(ctx context.Context, in *GetDeploymentConfigInput) (*GetDeploymentConfigOutput, error) {
	if in == nil {
		in = &GetDeploymentConfigInput{}
	}
	out := &GetDeploymentConfigOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDeploymentConfigs lists the deployment configurations.
func (c *Client) ListDeploymentConfigs(ctx context.Context, in *ListDeploymentConfigsInput) (*ListDeploymentConfigsOutput, error) {
	if in == nil {
		in = &ListDeploymentConfigsInput{}
	}
	out := &ListDeploymentConfigsOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDeploymentConfig creates a deployment configuration.
func (c *Client) CreateDeploymentConfig(ctx context.Context, in *CreateDeploymentConfigInput) (*CreateDeploymentConfigOutput, error) {
	if in == nil {
		in = &CreateDeploymentConfigInput{}
	}
	out := &CreateDeploymentConfigOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteDeploymentConfig deletes a deployment configuration.
func (c *Client) DeleteDeploymentConfig(ctx context.Context, in *DeleteDeploymentConfigInput) (*DeleteDeploymentConfigOutput, error) {
	if in == nil {
		in = &DeleteDeploymentConfigInput{}
	}
	out := &DeleteDeploymentConfigOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
