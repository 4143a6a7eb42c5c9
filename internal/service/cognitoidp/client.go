// Package cognitoidp contains the operation models and the client for
// the Amazon Cognito user pools API.
package cognitoidp

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes Amazon Cognito Identity Provider.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "Cognito Identity Provider",
	SigningName:  "cognito-idp",
	APIVersion:   "2016-04-18",
	Protocol:     awsapi.ProtocolJSON,
	JSONVersion:  "1.1",
	TargetPrefix: "AWSCognitoIdentityProviderService",
}

// Client is the Amazon Cognito Identity Provider client.
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

// CreateResourceServer creates a resource server in a user pool.
func (c *Client) CreateResourceServer(ctx context.Context, in *CreateResourceServerInput) (*CreateResourceServerOutput, error) {
	if in == nil {
		in = &CreateResourceServerInput{}
	}
	out := &CreateResourceServerOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteResourceServer deletes a resource server.
func (c *Client) DeleteResourceServer(ctx context.Context, in *DeleteResourceServerInput) (*DeleteResourceServerOutput, error) {
	if in == nil {
		in = &DeleteResourceServerInput{}
	}
	out := &DeleteResourceServerOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDevices lists the devices remembered for the user owning the access token.
func (c *Client) ListDevices(ctx context.Context, in *ListDevicesInput) (*ListDevicesOutput, error) {
	if in == nil {
		in = &ListDevicesInput{}
	}
	out := &ListDevicesOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
