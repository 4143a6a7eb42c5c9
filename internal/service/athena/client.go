// Package athena contains the operation models and the client for the
// Amazon Athena query execution API.
package athena

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes Amazon Athena.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "Athena",
	SigningName:  "athena",
	APIVersion:   "2017-05-18",
	Protocol:     awsapi.ProtocolJSON,
	JSONVersion:  "1.1",
	TargetPrefix: "AmazonAthena",
}

// Client is the Amazon Athena client.
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

// StartQueryExecution runs a query. When ClientRequestToken is not set,
// the client generates one, so retrying the same input is safe.
func (c *Client) StartQueryExecution(ctx context.Context, in *StartQueryExecutionInput) (*StartQueryExecutionOutput, error) {
	if in == nil {
		in = &StartQueryExecutionInput{}
	}
	out := &StartQueryExecutionOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQueryExecution returns information about a query execution.
func (c *Client) GetQueryExecution(ctx context.Context, in *GetQueryExecutionInput) (*GetQueryExecutionOutput, error) {
	if in == nil {
		in = &GetQueryExecutionInput{}
	}
	out := &GetQueryExecutionOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// StopQueryExecution stops a query execution.
func (c *Client) StopQueryExecution(ctx context.Context, in *StopQueryExecutionInput) (*StopQueryExecutionOutput, error) {
	if in == nil {
		in = &StopQueryExecutionInput{}
	}
	out := &StopQueryExecutionOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
