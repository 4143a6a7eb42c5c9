package rds

//
// DescribeDBInstances
//

import (
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/optional"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsquery"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsxml"
)

// DescribeDBInstancesInput is the input of DescribeDBInstances.
type DescribeDBInstancesInput struct {
	// DBInstanceIdentifier restricts the output to a single instance.
	DBInstanceIdentifier optional.Value[string]

	// Filters restricts the output to the matching instances.
	Filters optional.Value[[]Filter]

	// MaxRecords is the page size, between 20 and 100.
	MaxRecords optional.Value[int32]

	// Marker is the token returned by a previous call.
	Marker optional.Value[string]
}

var (
	_ awsapi.Request   = &DescribeDBInstancesInput{}
	_ awsapi.URLDumper = &DescribeDBInstancesInput{}
)

// SetDBInstanceIdentifier sets DBInstanceIdentifier and returns the receiver.
func (in *DescribeDBInstancesInput) SetDBInstanceIdentifier(v string) *DescribeDBInstancesInput {
	in.DBInstanceIdentifier = optional.Some(v)
	return in
}

// SetFilters sets Filters and returns the receiver.
func (in *DescribeDBInstancesInput) SetFilters(v []Filter) *DescribeDBInstancesInput {
	in.Filters = optional.Some(v)
	return in
}

// AddFilters appends to Filters and returns the receiver.
func (in *DescribeDBInstancesInput) AddFilters(v ...Filter) *DescribeDBInstancesInput {
	in.Filters = optional.Some(append(in.Filters.UnwrapOr(nil), v...))
	return in
}

// SetMaxRecords sets MaxRecords and returns the receiver.
func (in *DescribeDBInstancesInput) SetMaxRecords(v int32) *DescribeDBInstancesInput {
	in.MaxRecords = optional.Some(v)
	return in
}

// SetMarker sets Marker and returns the receiver.
func (in *DescribeDBInstancesInput) SetMarker(v string) *DescribeDBInstancesInput {
	in.Marker = optional.Some(v)
	return in
}

// ServiceRequestName implements awsapi.Request.
func (in *DescribeDBInstancesInput) ServiceRequestName() string {
	return "DescribeDBInstances"
}

// SerializePayload implements awsapi.Request.
func (in *DescribeDBInstancesInput) SerializePayload() ([]byte, error) {
	return awsquery.MarshalBody(in.ServiceRequestName(), ServiceMetadata.APIVersion, func(object *query.Object) {
		if in.DBInstanceIdentifier.IsSome() {
			object.Key("DBInstanceIdentifier").String(in.DBInstanceIdentifier.Unwrap())
		}
		if in.Filters.IsSome() {
			awsquery.EncodeList(object.Key("Filters"), "Filter", in.Filters.Unwrap(), func(value query.Value, f Filter) {
				f.serialize(value)
			})
		}
		if in.MaxRecords.IsSome() {
			object.Key("MaxRecords").Integer(in.MaxRecords.Unwrap())
		}
		if in.Marker.IsSome() {
			object.Key("Marker").String(in.Marker.Unwrap())
		}
	})
}

// DumpBodyToURL implements awsapi.URLDumper.
func (in *DescribeDBInstancesInput) DumpBodyToURL(u *url.URL) error {
	body, err := in.SerializePayload()
	if err != nil {
		return err
	}
	return awsquery.DumpBodyToURL(body, u)
}

// Clone implements awsapi.Request.
func (in *DescribeDBInstancesInput) Clone() awsapi.Request {
	out := *in
	out.Filters = optional.Map(in.Filters, cloneFilters)
	return &out
}

// DescribeDBInstancesOutput is the output of DescribeDBInstances.
type DescribeDBInstancesOutput struct {
	awsapi.ResultMetadata

	// DBInstances contains the instances, in the order returned by the service.
	DBInstances []DBInstance

	// Marker is set when there are more instances to fetch.
	Marker string
}

var _ awsapi.Result = &DescribeDBInstancesOutput{}

// AddDBInstances appends to DBInstances and returns the receiver.
func (out *DescribeDBInstancesOutput) AddDBInstances(v ...DBInstance) *DescribeDBInstancesOutput {
	out.DBInstances = append(out.DBInstances, v...)
	return out
}

// UnmarshalResponse implements awsapi.Result.
func (out *DescribeDBInstancesOutput) UnmarshalResponse(resp *awsapi.Response) error {
	var doc struct {
		DBInstances DBInstanceList `xml:"DescribeDBInstancesResult>DBInstances"`
		Marker      string         `xml:"DescribeDBInstancesResult>Marker"`
	}
	if err := awsxml.Unmarshal(resp, &doc); err != nil {
		return err
	}
	out.AddDBInstances(doc.DBInstances...)
	out.Marker = doc.Marker
	return nil
}
