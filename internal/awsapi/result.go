package awsapi

//
// Operation outputs
//

import "net/http"

// Response is the protocol-independent view of an HTTP response handed
// to a [Result] for parsing.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Header contains the response headers.
	Header http.Header

	// Body is the whole response body.
	Body []byte
}

// Result is the output of an AWS API operation.
type Result interface {
	// UnmarshalResponse fills the result from the given response.
	UnmarshalResponse(resp *Response) error
}

// ResultMetadata is embedded by every result.
type ResultMetadata struct {
	// RequestID is the id assigned to the request by the service.
	RequestID string
}

// SetRequestID sets the RequestID field.
func (md *ResultMetadata) SetRequestID(id string) {
	md.RequestID = id
}

// RequestIDSetter is implemented by the results embedding [ResultMetadata].
type RequestIDSetter interface {
	SetRequestID(id string)
}
