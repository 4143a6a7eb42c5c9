// Package s3control contains the operation models and the client for
// the account-level Amazon S3 Control API.
package s3control

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes AWS S3 Control.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "S3 Control",
	SigningName:  "s3",
	APIVersion:   "2018-08-20",
	Protocol:     awsapi.ProtocolRESTXML,
	XMLNamespace: "http://awss3control.amazonaws.com/doc/2018-08-20/",
}

// Client is the AWS S3 Control client.
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

// GetPublicAccessBlock returns the public access block of an account.
func (c *Client) GetPublicAccessBlock(ctx context.Context, in *GetPublicAccessBlockInput) (*GetPublicAccessBlockOutput, error) {
	if in == nil {
		in = &GetPublicAccessBlockInput{}
	}
	out := &GetPublicAccessBlockOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// PutPublicAccessBlock replaces the public access block of an account.
func (c *Client) PutPublicAccessBlock(ctx context.Context, in *PutPublicAccessBlockInput) (*PutPublicAccessBlockOutput, error) {
	if in == nil {
		in = &PutPublicAccessBlockInput{}
	}
	out := &PutPublicAccessBlockOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeletePublicAccessBlock removes the public access block of an account.
func (c *Client) DeletePublicAccessBlock(ctx context.Context, in *DeletePublicAccessBlockInput) (*DeletePublicAccessBlockOutput, error) {
	if in == nil {
		in = &DeletePublicAccessBlockInput{}
	}
	out := &DeletePublicAccessBlockOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
