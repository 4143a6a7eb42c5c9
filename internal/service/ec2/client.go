// Package ec2 contains the operation models and the client for the
// Amazon EC2 tagging API, which uses the ec2Query protocol.
package ec2

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes Amazon EC2.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "EC2",
	SigningName:  "ec2",
	APIVersion:   "2016-11-15",
	Protocol:     awsapi.ProtocolEC2Query,
	XMLNamespace: "http://ec2.amazonaws.com/doc/2016-11-15",
}

// Client is the Amazon EC2 client.
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

// CreateTags adds or overwrites tags on the given resources.
func (c *Client) CreateTags(ctx context.Context, in *CreateTagsInput) (*CreateTagsOutput, error) {
	if in == nil {
		in = &CreateTagsInput{}
	}
	out := &CreateTagsOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTags deletes tags from the given resources.
func (c *Client) DeleteTags(ctx context.Context, in *DeleteTagsInput) (*DeleteTagsOutput, error) {
	if in == nil {
		in = &DeleteTagsInput{}
	}
	out := &DeleteTagsOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
