// Package acmpca contains the operation models and the client for the
// AWS Private Certificate Authority API.
package acmpca

import (
	"context"

	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

// ServiceMetadata describes AWS Private CA.
var ServiceMetadata = &awsapi.ServiceMetadata{
	ServiceID:    "ACM PCA",
	SigningName:  "acm-pca",
	APIVersion:   "2017-08-22",
	Protocol:     awsapi.ProtocolJSON,
	JSONVersion:  "1.1",
	TargetPrefix: "ACMPrivateCA",
}

// Client is the AWS Private CA client.
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

// TagCertificateAuthority adds tags to a private CA.
func (c *Client) TagCertificateAuthority(ctx context.Context, in *TagCertificateAuthorityInput) (*TagCertificateAuthorityOutput, error) {
	if in == nil {
		in = &TagCertificateAuthorityInput{}
	}
	out := &TagCertificateAuthorityOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTags lists the tags of a private CA.
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

// DescribeCertificateAuthority describes a private CA.
func (c *Client) DescribeCertificateAuthority(ctx context.Context, in *DescribeCertificateAuthorityInput) (*DescribeCertificateAuthorityOutput, error) {
	if in == nil {
		in = &DescribeCertificateAuthorityInput{}
	}
	out := &DescribeCertificateAuthorityOutput{}
	if err := c.core.Invoke(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
