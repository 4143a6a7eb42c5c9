// Package qldbsession contains the operation models and the client for
// the Amazon QLDB session API.
//
// Besides the synchronous [*Client.SendCommand], the client offers
// [*Client.SendCommandAsync] and [*Client.SendCommandCallable], which run
// the call on the configured executor. Both take a private copy of the
// input, so callers may reuse it as soon as the method returns.
package qldbsession

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes Amazon QLDB Session.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "QLDB Session",
	SigningName:  "qldb",
	APIVersion:   "2019-07-11",
	Protocol:     awsapi.ProtocolJSON,
	JSONVersion:  "1.0",
	TargetPrefix: "QLDBSession",
}

// Client is the Amazon QLDB Session client.
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

// SendCommand sends a command to a ledger.
func (c *Client) SendCommand(ctx context.Context, in *SendCommandInput) (*SendCommandOutput, error) {
	if in == nil {
		in = &SendCommandInput{}
	}
	out := &SendCommandOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendCommandHandler receives the outcome of [*Client.SendCommandAsync].
type SendCommandHandler func(ctx context.Context, in *SendCommandInput, out *SendCommandOutput, err error)

// SendCommandAsync runs SendCommand on the executor and invokes handler
// with its outcome. The handler receives the copy of the input that was sent.
func (c *Client) SendCommandAsync(ctx context.Context, in *SendCommandInput, handler SendCommandHandler) {
	in = snapshot(in)
	awsclient.SubmitAsync(ctx, c.core, func(ctx context.Context) (*SendCommandOutput, error) {
		return c.SendCommand(ctx, in)
	}, func(ctx context.Context, out *SendCommandOutput, err error) {
		handler(ctx, in, out, err)
	})
}

// SendCommandCallable runs SendCommand on the executor and returns a
// future for its outcome.
func (c *Client) SendCommandCallable(ctx context.Context, in *SendCommandInput) *awsclient.Future[*SendCommandOutput] {
	in = snapshot(in)
	return awsclient.SubmitCallable(ctx, c.core, func(ctx context.Context) (*SendCommandOutput, error) {
		return c.SendCommand(ctx, in)
	})
}

func snapshot(in *SendCommandInput) *SendCommandInput {
	if in == nil {
		return &SendCommandInput{}
	}
	return in.Clone().(*SendCommandInput)
}
