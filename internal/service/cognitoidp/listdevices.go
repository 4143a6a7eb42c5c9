package cognitoidp

//
// ListDevices
//

import (
	"net/http"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// ListDevicesInput is the input of ListDevices.
type ListDevicesInput struct {
	// AccessToken identifies the user whose devices are listed.
	AccessToken optional.Value[string]

	// Limit is the maximum number of devices to return.
	Limit optional.Value[int32]

	// PaginationToken is the token returned by a previous call.
	PaginationToken optional.Value[string]
}

var _ awsapi.Request = &ListDevicesInput{}

// SetAccessToken sets AccessToken and returns the receiver.
func (in *ListDevicesInput) SetAccessToken(v string) *ListDevicesInput {
	in.AccessToken = optional.Some(v)
	return in
}

// SetLimit sets Limit and returns the receiver.
func (in *ListDevicesInput) SetLimit(v int32) *ListDevicesInput {
	in.Limit = optional.Some(v)
	return in
}

// SetPaginationToken sets PaginationToken and returns the receiver.
func (in *ListDevicesInput) SetPaginationToken(v string) *ListDevicesInput {
	in.PaginationToken = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *ListDevicesInput) ServiceRequestName() string {
	return "ListDevices"
}

// SerializePayload implements awsapi.Request.
func (in *ListDevicesInput) SerializePayload() ([]byte, error) {
	return awsjson.MarshalPayload(func(object *smithyjson.Object) {
		if in.AccessToken.IsSome() {
			object.Key("AccessToken").String(in.AccessToken.Unwrap())
		}
		if in.Limit.IsSome() {
			object.Key("Limit").Integer(in.Limit.Unwrap())
		}
		if in.PaginationToken.IsSome() {
			object.Key("PaginationToken").String(in.PaginationToken.Unwrap())
		}
	}), nil
}

// RequestSpecificHeaders implements awsapi.HeaderBinder.
func (in *ListDevicesInput) RequestSpecificHeaders() http.Header {
	return ServiceMetadata.TargetHeader(in.ServiceRequestName())
}

// Clone implements awsapi.Request.
func (in *ListDevicesInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// ListDevicesOutput is the output of ListDevices.
type ListDevicesOutput struct {
	awsapi.ResultMetadata

	// Devices contains the devices, in the order returned by the service.
	Devices []DeviceType

	// PaginationToken is set when there are more devices to fetch.
	PaginationToken string
}

var _ awsapi.Result = &ListDevicesOutput{}

// AddDevices appends to Devices and returns the receiver.
func (out *ListDevicesOutput) AddDevices(v ...DeviceType) *ListDevicesOutput {
	out.Devices = append(out.Devices, v...)
	return out
}

// UnmarshalResponse implements awsapi.Result.
func (out *ListDevicesOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	for _, entry := range view.GetArray("Devices") {
		out.AddDevices(NewDeviceTypeFromView(entry))
	}
	out.PaginationToken = view.GetString("PaginationToken")
	return nil
}
