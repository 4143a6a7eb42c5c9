// Package lambda contains the operation models and the client for the
// AWS Lambda API, which uses the restJson1 protocol.
package lambda

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes AWS Lambda.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:   "Lambda",
	SigningName: "lambda",
	APIVersion:  "2015-03-31",
	Protocol:    awsapi.ProtocolRESTJSON,
}

// Client is the AWS Lambda client.
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

// ListLayers lists the layers, optionally filtered by runtime and architecture.
func (c *Client) ListLayers(ctx context.Context, in *ListLayersInput) (*ListLayersOutput, error) {
	if in == nil {
		in = &ListLayersInput{}
	}
	out := &ListLayersOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Invoke invokes a function.
func (c *Client) Invoke(ctx context.Context, in *InvokeInput) (*InvokeOutput, error) {
	if in == nil {
		in = &InvokeInput{}
	}
	out := &InvokeOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteFunction deletes a function or one of its versions.
func (c *Client) DeleteFunction(ctx context.Context, in *DeleteFunctionInput) (*DeleteFunctionOutput, error) {
	if in == nil {
		in = &DeleteFunctionInput{}
	}
	out := &DeleteFunctionOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// TagResource adds tags to a function.
func (c *Client) TagResource(ctx context.Context, in *TagResourceInput) (*TagResourceOutput, error) {
	if in == nil {
		in = &TagResourceInput{}
	}
	out := &TagResourceOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTags returns the tags of a function.
func (c *Client) ListTags(ctx context.Context, in *ListTagsInput) (*ListTagsOutput, error) {
	if in == nil {
		in = &ListTagsInput{}
	}
	out := &ListTagsOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
