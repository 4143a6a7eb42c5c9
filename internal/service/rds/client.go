// Package rds contains the operation models and the client for the
// Amazon Relational Database Service API, which uses the awsQuery protocol.
package rds

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes Amazon RDS.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "RDS",
	SigningName:  "rds",
	APIVersion:   "2014-10-31",
	Protocol:     awsapi.ProtocolQuery,
	XMLNamespace: "http://rds.amazonaws.com/doc/2014-10-31/",
}

// Client is the Amazon RDS client.
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

// AddRoleToDBInstance associates an IAM role with a DB instance.
func (c *Client) AddRoleToDBInstance(ctx context.Context, in *AddRoleToDBInstanceInput) (*AddRoleToDBInstanceOutput, error) {
	if in == nil {
		in = &AddRoleToDBInstanceInput{}
	}
	out := &AddRoleToDBInstanceOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveRoleFromDBInstance disassociates an IAM role from a DB instance.
func (c *Client) RemoveRoleFromDBInstance(ctx context.Context, in *RemoveRoleFromDBInstanceInput) (*RemoveRoleFromDBInstanceOutput, error) {
	if in == nil {
		in = &RemoveRoleFromDBInstanceInput{}
	}
	out := &RemoveRoleFromDBInstanceOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DescribeDBInstances describes provisioned DB instances.
func (c *Client) DescribeDBInstances(ctx context.Context, in *DescribeDBInstancesInput) (*DescribeDBInstancesOutput, error) {
	if in == nil {
		in = &DescribeDBInstancesInput{}
	}
	out := &DescribeDBInstancesOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
