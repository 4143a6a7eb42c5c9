package awsclient

//
// Building HTTP requests from operation inputs.
//

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/encoding/httpbinding"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/model"
)

// prepare returns the request that is actually going to be serialized. When
// the request carries an idempotency token we work on a clone so that the
// caller's value is not modified.
func (c *Client) prepare(req awsapi.Request) awsapi.Request {
	if _, ok := req.(awsapi.IdempotentRequest); !ok {
		return req
	}
	clone := req.Clone()
	clone.(awsapi.IdempotentRequest).FillIdempotencyToken(c.config.idempotencyToken)
	return clone
}

// BuildHTTPRequest serializes req into an HTTP request for the configured
// endpoint without sending it. Serialization failures are returned as
// *smithy.SerializationError.
func (c *Client) BuildHTTPRequest(ctx context.Context, req awsapi.Request) (*http.Request, error) {
	req = c.prepare(req)
	payload, err := req.SerializePayload()
	if err != nil {
		return nil, asSerializationError(err)
	}
	URL, err := url.Parse(c.config.Endpoint)
	if err != nil {
		return nil, err
	}

	var (
		method  = http.MethodPost
		path    = "/"
		query   = ""
		headers = http.Header{}
	)

	switch c.metadata.Protocol {
	case awsapi.ProtocolRESTJSON, awsapi.ProtocolRESTXML:
		binder, ok := req.(awsapi.HTTPBinder)
		if !ok {
			return nil, &smithy.SerializationError{
				Err: fmt.Errorf("%s: missing HTTP bindings", req.ServiceRequestName()),
			}
		}
		method = binder.HTTPMethod()
		path, query = httpbinding.SplitURI(binder.RequestURI())
	}

	encoder, err := httpbinding.NewEncoder(path, query, headers)
	if err != nil {
		return nil, &smithy.SerializationError{Err: err}
	}
	if binder, ok := req.(awsapi.HTTPBinder); ok {
		if err := binder.BindURI(encoder); err != nil {
			return nil, asSerializationError(err)
		}
	}
	if binder, ok := req.(awsapi.QueryStringBinder); ok {
		values := url.Values{}
		binder.AddQueryStringParameters(values)
		for key, list := range values {
			for _, value := range list {
				encoder.AddQuery(key).String(value)
			}
		}
	}
	if binder, ok := req.(awsapi.HeaderBinder); ok {
		for key, list := range binder.RequestSpecificHeaders() {
			for _, value := range list {
				encoder.AddHeader(key).String(value)
			}
		}
	}
	if len(payload) > 0 && !encoder.HasHeader("Content-Type") {
		encoder.SetHeader("Content-Type").String(c.metadata.ContentType())
	}
	encoder.SetHeader("User-Agent").String(c.config.userAgent())
	encoder.SetHeader(model.HTTPHeaderInvocationID).String(uuid.NewString())

	var body io.Reader
	if len(payload) > 0 {
		body = bytes.NewReader(payload)
		c.logger.Debugf("%s: request body length: %d", req.ServiceRequestName(), len(payload))
		if c.config.LogBody {
			c.logger.Debugf("%s: request body: %s", req.ServiceRequestName(), string(payload))
		}
	}
	request, err := http.NewRequestWithContext(ctx, method, URL.String(), body)
	if err != nil {
		return nil, err
	}
	if request, err = encoder.Encode(request); err != nil {
		return nil, &smithy.SerializationError{Err: err}
	}
	request.URL.Path = smithyhttp.JoinPath(URL.Path, request.URL.Path)
	request.URL.RawPath = smithyhttp.JoinPath(URL.EscapedPath(), request.URL.RawPath)
	request.URL.RawQuery = smithyhttp.JoinRawQuery(URL.RawQuery, request.URL.RawQuery)

	if dumper, ok := req.(awsapi.URLDumper); ok && c.config.QueryUseGET {
		if err := dumper.DumpBodyToURL(request.URL); err != nil {
			return nil, asSerializationError(err)
		}
		request.Method = http.MethodGet
		request.Body, request.GetBody, request.ContentLength = nil, nil, 0
		request.Header.Del("Content-Type")
	}

	if c.config.Signer != nil {
		if err := c.config.Signer.SignHTTP(ctx, request, c.metadata); err != nil {
			return nil, err
		}
	}
	return request, nil
}

// asSerializationError wraps err unless it already is a *smithy.SerializationError.
func asSerializationError(err error) error {
	if _, ok := err.(*smithy.SerializationError); ok {
		return err
	}
	return &smithy.SerializationError{Err: err}
}
