package awsapi

import (
	"net/http"

	"github.com/sdkmodels/awsmodels/internal/model"
)

// Protocol is the wire protocol of a service.
type Protocol string

const (
	// ProtocolJSON is awsJson1_0 or awsJson1_1 (see ServiceMetadata.JSONVersion).
	ProtocolJSON = Protocol("json")

	// ProtocolRESTJSON is restJson1.
	ProtocolRESTJSON = Protocol("rest-json")

	// ProtocolRESTXML is restXml.
	ProtocolRESTXML = Protocol("rest-xml")

	// ProtocolQuery is awsQuery.
	ProtocolQuery = Protocol("query")

	// ProtocolEC2Query is ec2Query.
	ProtocolEC2Query = Protocol("ec2")
)

// ServiceMetadata describes a service.
type ServiceMetadata struct {
	// ServiceID is the service id (e.g., "CodeDeploy").
	ServiceID string

	// SigningName is the name used in the credential scope.
	SigningName string

	// APIVersion is the API version (e.g., "2014-10-06").
	APIVersion string

	// Protocol is the wire protocol.
	Protocol Protocol

	// JSONVersion is the JSON protocol version (e.g., "1.1"),
	// only meaningful for ProtocolJSON.
	JSONVersion string

	// TargetPrefix is the X-Amz-Target prefix, only meaningful
	// for ProtocolJSON.
	TargetPrefix string

	// XMLNamespace is the namespace of XML payloads, if any.
	XMLNamespace string
}

// ContentType returns the Content-Type for a request body of this service.
func (md *ServiceMetadata) ContentType() string {
	switch md.Protocol {
	case ProtocolJSON:
		return "application/x-amz-json-" + md.JSONVersion
	case ProtocolQuery, ProtocolEC2Query:
		return "application/x-www-form-urlencoded"
	case ProtocolRESTXML:
		return "application/xml"
	default:
		return "application/json"
	}
}

// Target returns the X-Amz-Target header value for the given operation.
func (md *ServiceMetadata) Target(operation string) string {
	return md.TargetPrefix + "." + operation
}

// TargetHeader returns the headers naming operation in the JSON protocols.
func (md *ServiceMetadata) TargetHeader(operation string) http.Header {
	return http.Header{model.HTTPHeaderTarget: {md.Target(operation)}}
}
