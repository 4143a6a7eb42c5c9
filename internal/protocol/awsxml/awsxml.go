// Package awsxml implements the response side of the awsQuery, ec2Query
// and restXml protocols.
package awsxml

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/aws/smithy-go"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/model"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// Unmarshal decodes the XML body of resp into v. An empty body leaves
// v untouched, since several operations return no body.
func Unmarshal(resp *awsapi.Response, v any) error {
	if len(bytes.TrimSpace(resp.Body)) <= 0 {
		return nil
	}
	if err := xml.Unmarshal(resp.Body, v); err != nil {
		return &smithy.DeserializationError{Err: err, Snapshot: snapshot(resp.Body)}
	}
	return nil
}

func snapshot(data []byte) []byte {
	const maxSnapshot = 1024
	if len(data) > maxSnapshot {
		data = data[:maxSnapshot]
	}
	return append([]byte{}, data...)
}

// errorFields contains the fields of an XML error document we care about.
type errorFields struct {
	Code      string
	Message   string
	RequestID string
}

// scanErrorFields walks the XML document collecting the first Code,
// Message and RequestId elements, accepting the RequestID and requestId
// spellings as well. This covers the awsQuery shape
// (<ErrorResponse><Error>...), the ec2Query shape
// (<Response><Errors><Error>...) and the restXml shapes.
func scanErrorFields(body []byte) (*errorFields, error) {
	out := &errorFields{}
	decoder := xml.NewDecoder(bytes.NewReader(body))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		var target *string
		switch start.Name.Local {
		case "Code":
			target = &out.Code
		case "Message":
			target = &out.Message
		case "RequestId", "RequestID", "requestId":
			target = &out.RequestID
		default:
			continue
		}
		var text string
		if err := decoder.DecodeElement(&text, &start); err != nil {
			return nil, err
		}
		if *target == "" {
			*target = text
		}
	}
}

// DecodeError decodes the service error contained in resp and returns it
// along with the request id found in the body, if any.
func DecodeError(resp *awsapi.Response) (*smithy.GenericAPIError, string) {
	apiErr := &smithy.GenericAPIError{
		Code:  "UnknownError",
		Fault: awsjson.FaultForStatus(resp.StatusCode),
	}
	fields, err := scanErrorFields(resp.Body)
	if err != nil {
		return apiErr, ""
	}
	if fields.Code != "" {
		apiErr.Code = fields.Code
	}
	apiErr.Message = fields.Message
	return apiErr, fields.RequestID
}

// RequestID returns the request id in the headers of resp or, for
// query protocols, in the ResponseMetadata element of the body.
func RequestID(resp *awsapi.Response) string {
	if id := resp.Header.Get(model.HTTPHeaderRequestID); id != "" {
		return id
	}
	if id := resp.Header.Get(model.HTTPHeaderS3RequestID); id != "" {
		return id
	}
	fields, err := scanErrorFields(resp.Body)
	if err != nil {
		return ""
	}
	return fields.RequestID
}

// wrappedList matches every child element regardless of its name.
type wrappedList[T any] struct {
	Items []T `xml:",any"`
}

// DecodeList decodes the members of the wrapped list start into out.
// A list without members yields an empty, non-nil slice.
func DecodeList[T any](d *xml.Decoder, start xml.StartElement, out *[]T) error {
	var list wrappedList[T]
	if err := d.DecodeElement(&list, &start); err != nil {
		return err
	}
	if list.Items == nil {
		list.Items = []T{}
	}
	*out = list.Items
	return nil
}
