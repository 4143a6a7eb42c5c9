package model

//
// Common HTTP definitions.
//

import "net/http"

// HTTPClient is the HTTP client used by the service clients. The
// standard library *http.Client implements this interface.
type HTTPClient interface {
	// Do sends the request and returns the response.
	Do(req *http.Request) (*http.Response, error)
}

const (
	// HTTPHeaderRequestID is the header carrying the AWS request id for
	// JSON and query protocols.
	HTTPHeaderRequestID = "X-Amzn-Requestid"

	// HTTPHeaderS3RequestID is the header carrying the request id for
	// S3-derived REST-XML services.
	HTTPHeaderS3RequestID = "X-Amz-Request-Id"

	// HTTPHeaderInvocationID carries a random id identifying a single call.
	HTTPHeaderInvocationID = "Amz-Sdk-Invocation-Id"

	// HTTPHeaderTarget is the header naming the operation in the JSON protocols.
	HTTPHeaderTarget = "X-Amz-Target"

	// HTTPHeaderErrorType carries the error code in the JSON protocols.
	HTTPHeaderErrorType = "X-Amzn-Errortype"
)
