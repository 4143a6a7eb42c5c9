// Package awsclient contains the client core shared by the service clients.
//
// The core turns an [awsapi.Request] into an HTTP request according to the
// protocol of the service, performs exactly one attempt, and either fills
// an [awsapi.Result] or returns an error.
//
// Errors returned by [*Client.Invoke] are always *smithy.OperationError
// values. When the service answered with an error status, the wrapped error
// is an *awshttp.ResponseError whose own wrapped error is the
// *smithy.GenericAPIError decoded from the response.
package awsclient

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/logx"
	"github.com/sdkmodels/awsmodels/internal/model"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
	"github.com/sdkmodels/awsmodels/internal/runtimex"
)

// Client is the client core. A client is safe for concurrent use.
type Client struct {
	config   Config
	logger   model.Logger
	metadata *awsapi.ServiceMetadata
}

// New creates a new [*Client] for the service described by md.
func New(md *awsapi.ServiceMetadata, config Config) *Client {
	runtimex.PanicIfNil(md, "awsclient: passed nil service metadata")
	return &Client{
		config:   config,
		logger:   logx.NewPrefixLogger(strings.ToLower(md.ServiceID), config.Logger),
		metadata: md,
	}
}

// Metadata returns the metadata of the service.
func (c *Client) Metadata() *awsapi.ServiceMetadata {
	return c.metadata
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Invoke sends req and fills res with the response.
func (c *Client) Invoke(ctx context.Context, req awsapi.Request, res awsapi.Result) (err error) {
	operation := req.ServiceRequestName()
	t0 := time.Now()
	defer func() {
		c.config.Metrics.observe(c.metadata.ServiceID, operation, err, time.Since(t0))
		c.logger.Debugf("%s: %s", operation, model.ErrorToStringOrOK(err))
	}()

	ctx, cancel := context.WithTimeout(ctx, c.config.timeout())
	defer cancel()

	if err := c.invoke(ctx, req, res); err != nil {
		return &smithy.OperationError{
			ServiceID:     c.metadata.ServiceID,
			OperationName: operation,
			Err:           err,
		}
	}
	return nil
}

func (c *Client) invoke(ctx context.Context, req awsapi.Request, res awsapi.Result) error {
	request, err := c.BuildHTTPRequest(ctx, req)
	if err != nil {
		return err
	}
	c.logger.Debugf("%s: %s %s", req.ServiceRequestName(), request.Method, request.URL.String())

	response, err := c.config.httpClient().Do(request)
	if err != nil {
		return &smithyhttp.RequestSendError{Err: err}
	}
	defer response.Body.Close()

	// Implementation note: always read and log the response body since
	// it's quite useful to see the response on API error.
	reader := io.LimitReader(response.Body, c.config.maxBodySize())
	data, err := io.ReadAll(reader)
	if err != nil {
		return &smithyhttp.RequestSendError{Err: err}
	}
	c.logger.Debugf("%s: response status %d, body length %d bytes",
		req.ServiceRequestName(), response.StatusCode, len(data))
	if c.config.LogBody {
		c.logger.Debugf("%s: response body: %s", req.ServiceRequestName(), string(data))
	}

	resp := &awsapi.Response{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       data,
	}
	requestID := c.requestID(resp)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		apiErr, bodyRequestID := c.decodeError(resp)
		if requestID == "" {
			requestID = bodyRequestID
		}
		return &awshttp.ResponseError{
			ResponseError: &smithyhttp.ResponseError{
				Response: &smithyhttp.Response{Response: response},
				Err:      apiErr,
			},
			RequestID: requestID,
		}
	}

	c.checkContentType(resp)
	if err := res.UnmarshalResponse(resp); err != nil {
		return err
	}
	if setter, ok := res.(awsapi.RequestIDSetter); ok {
		setter.SetRequestID(requestID)
	}
	return nil
}

func (c *Client) isXML() bool {
	switch c.metadata.Protocol {
	case awsapi.ProtocolQuery, awsapi.ProtocolEC2Query, awsapi.ProtocolRESTXML:
		return true
	default:
		return false
	}
}

func (c *Client) requestID(resp *awsapi.Response) string {
	if id := resp.Header.Get(model.HTTPHeaderRequestID); id != "" {
		return id
	}
	if id := resp.Header.Get(model.HTTPHeaderS3RequestID); id != "" {
		return id
	}
	if c.isXML() {
		return awsxml.RequestID(resp)
	}
	return ""
}

func (c *Client) decodeError(resp *awsapi.Response) (*smithy.GenericAPIError, string) {
	if c.isXML() {
		return awsxml.DecodeError(resp)
	}
	return awsjson.DecodeError(resp), ""
}

// goodContentTypeForJSON tracks known-good content-types for JSON. If the content-type
// is not in this map, we emit a warning message.
var goodContentTypeForJSON = map[string]bool{
	"application/json":           true,
	"application/x-amz-json-1.0": true,
	"application/x-amz-json-1.1": true,
}

func (c *Client) checkContentType(resp *awsapi.Response) {
	if c.metadata.Protocol != awsapi.ProtocolJSON || len(resp.Body) <= 0 {
		return
	}
	ctype := resp.Header.Get("Content-Type")
	if idx := strings.Index(ctype, ";"); idx >= 0 {
		ctype = ctype[:idx]
	}
	if !goodContentTypeForJSON[ctype] {
		c.logger.Warnf("unexpected content-type: %s", ctype)
		// fallthrough
	}
}

// APIError returns the service error wrapped by err, if any.
func APIError(err error) (smithy.APIError, bool) {
	var apiErr smithy.APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
