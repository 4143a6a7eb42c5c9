package lambda

//
// ListLayers
//

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/aws/smithy-go/encoding/httpbinding"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

// ListLayersInput is the input of ListLayers.
type ListLayersInput struct {
	// CompatibleRuntime restricts the output to the layers supporting a runtime.
	CompatibleRuntime optional.Value[string]

	// CompatibleArchitecture restricts the output to the layers supporting an architecture.
	CompatibleArchitecture optional.Value[Architecture]

	// Marker is the token returned by a previous call.
	Marker optional.Value[string]

	// MaxItems is the maximum number of layers to return.
	MaxItems optional.Value[int32]
}

var (
	_ awsapi.Request           = &ListLayersInput{}
	_ awsapi.HTTPBinder        = &ListLayersInput{}
	_ awsapi.QueryStringBinder = &ListLayersInput{}
)

// SetCompatibleRuntime sets CompatibleRuntime and returns the receiver.
func (in *ListLayersInput) SetCompatibleRuntime(v string) *ListLayersInput {
	in.CompatibleRuntime = optional.Some(v)
	return in
}

// SetCompatibleArchitecture sets CompatibleArchitecture and returns the receiver.
func (in *ListLayersInput) SetCompatibleArchitecture(v Architecture) *ListLayersInput {
	in.CompatibleArchitecture = optional.Some(v)
	return in
}

// SetMarker sets Marker and returns the receiver.
func (in *ListLayersInput) SetMarker(v string) *ListLayersInput {
	in.Marker = optional.Some(v)
	return in
}

// SetMaxItems sets MaxItems and returns the receiver.
func (in *ListLayersInput) SetMaxItems(v int32) *ListLayersInput {
	in.MaxItems = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *ListLayersInput) ServiceRequestName() string {
	return "ListLayers"
}

// SerializePayload implements awsapi.Request. All the members are
// bound to the query string.
func (in *ListLayersInput) SerializePayload() ([]byte, error) {
	return nil, nil
}

// HTTPMethod implements awsapi.HTTPBinder.
func (in *ListLayersInput) HTTPMethod() string {
	return http.MethodGet
}

// RequestURI implements awsapi.HTTPBinder.
func (in *ListLayersInput) RequestURI() string {
	return "/2018-10-31/layers"
}

// BindURI implements awsapi.HTTPBinder.
func (in *ListLayersInput) BindURI(encoder *httpbinding.Encoder) error {
	return nil
}

// AddQueryStringParameters implements awsapi.QueryStringBinder.
func (in *ListLayersInput) AddQueryStringParameters(query url.Values) {
	if in.CompatibleRuntime.IsSome() {
		query.Set("CompatibleRuntime", in.CompatibleRuntime.Unwrap())
	}
	if in.CompatibleArchitecture.IsSome() {
		query.Set("CompatibleArchitecture", string(in.CompatibleArchitecture.Unwrap()))
	}
	if in.Marker.IsSome() {
		query.Set("Marker", in.Marker.Unwrap())
	}
	if in.MaxItems.IsSome() {
		query.Set("MaxItems", strconv.FormatInt(int64(in.MaxItems.Unwrap()), 10))
	}
}

// Clone implements awsapi.Request.
func (in *ListLayersInput) Clone() awsapi.Request {
	out := *in
	return &out
}

// ListLayersOutput is the output of ListLayers.
type ListLayersOutput struct {
	awsapi.ResultMetadata

	// NextMarker is set when there are more layers to fetch.
	NextMarker string

	// Layers contains the layers, in the order returned by the service.
	Layers []LayersListItem
}

var _ awsapi.Result = &ListLayersOutput{}

// AddLayers appends to Layers and returns the receiver.
func (out *ListLayersOutput) AddLayers(v ...LayersListItem) *ListLayersOutput {
	out.Layers = append(out.Layers, v...)
	return out
}

// UnmarshalResponse implements awsapi.Result.
func (out *ListLayersOutput) UnmarshalResponse(resp *awsapi.Response) error {
	view, err := awsjson.ParseResponse(resp)
	if err != nil {
		return err
	}
	out.NextMarker = view.GetString("NextMarker")
	for _, entry := range view.GetArray("Layers") {
		out.AddLayers(NewLayersListItemFromView(entry))
	}
	return nil
}
