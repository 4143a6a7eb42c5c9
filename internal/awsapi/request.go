package awsapi

//
// Operation inputs
//

import (
	"net/http"
	"net/url"

	"github.com/aws/smithy-go/encoding/httpbinding"
)

// Request is the input of an AWS API operation.
type Request interface {
	// ServiceRequestName returns the operation name (e.g., "GetDeploymentConfig").
	ServiceRequestName() string

	// SerializePayload returns the request body containing only the
	// members that have been set. An empty slice means no body.
	SerializePayload() ([]byte, error)

	// Clone returns a deep copy of the request.
	Clone() Request
}

// HeaderBinder is a [Request] contributing request-specific headers
// (e.g., X-Amz-Target, or members bound to headers).
type HeaderBinder interface {
	RequestSpecificHeaders() http.Header
}

// QueryStringBinder is a [Request] with members bound to the URL query.
type QueryStringBinder interface {
	AddQueryStringParameters(query url.Values)
}

// HTTPBinder is a [Request] of a REST protocol, bound to a specific
// method and URI template with labels (e.g., "/functions/{FunctionName}").
type HTTPBinder interface {
	// HTTPMethod returns the method (e.g., "GET").
	HTTPMethod() string

	// RequestURI returns the URI template, which may contain a fixed query.
	RequestURI() string

	// BindURI sets the URI labels. It fails with a
	// *smithy.SerializationError when a label is unset or empty.
	BindURI(encoder *httpbinding.Encoder) error
}

// URLDumper is a [Request] whose form body can be moved into the URL
// query, allowing query protocols to issue GET requests.
type URLDumper interface {
	DumpBodyToURL(u *url.URL) error
}

// IdempotentRequest is a [Request] with an idempotency-token member. The
// implementation only sets the member using token when it is unset.
type IdempotentRequest interface {
	FillIdempotencyToken(token func() string)
}
