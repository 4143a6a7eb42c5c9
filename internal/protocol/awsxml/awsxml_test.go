package awsxml

import (
	"encoding/xml"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
)

func TestUnmarshal(t *testing.T) {
	type result struct {
		Marker string `xml:"DescribeResult>Marker"`
	}

	t.Run("with an empty body", func(t *testing.T) {
		var out result
		if err := Unmarshal(&awsapi.Response{}, &out); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("with a valid body", func(t *testing.T) {
		var out result
		body := `<DescribeResponse><DescribeResult><Marker>m1</Marker></DescribeResult></DescribeResponse>`
		if err := Unmarshal(&awsapi.Response{Body: []byte(body)}, &out); err != nil {
			t.Fatal(err)
		}
		if out.Marker != "m1" {
			t.Fatal("unexpected marker", out.Marker)
		}
	})

	t.Run("with a malformed body", func(t *testing.T) {
		var out result
		err := Unmarshal(&awsapi.Response{Body: []byte(`<DescribeResponse>`)}, &out)
		var deserErr *smithy.DeserializationError
		if !errors.As(err, &deserErr) {
			t.Fatal("expected a DeserializationError", err)
		}
	})
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name      string
		resp      *awsapi.Response
		want      *smithy.GenericAPIError
		requestID string
	}{{
		name: "awsQuery error",
		resp: &awsapi.Response{
			StatusCode: 404,
			Body: []byte(`<ErrorResponse xmlns="http://rds.amazonaws.com/doc/2014-10-31/">
  <Error>
    <Type>Sender</Type>
    <Code>DBInstanceNotFound</Code>
    <Message>DBInstance db-1 not found.</Message>
  </Error>
  <RequestId>req-1</RequestId>
</ErrorResponse>`),
		},
		want: &smithy.GenericAPIError{
			Code:    "DBInstanceNotFound",
			Message: "DBInstance db-1 not found.",
			Fault:   smithy.FaultClient,
		},
		requestID: "req-1",
	}, {
		name: "ec2Query error",
		resp: &awsapi.Response{
			StatusCode: 400,
			Body: []byte(`<Response><Errors><Error><Code>InvalidID</Code>` +
				`<Message>The ID 'x' is not valid</Message></Error></Errors>` +
				`<RequestID>req-2</RequestID></Response>`),
		},
		want: &smithy.GenericAPIError{
			Code:    "InvalidID",
			Message: "The ID 'x' is not valid",
			Fault:   smithy.FaultClient,
		},
		requestID: "req-2",
	}, {
		name: "restXml error without wrapper",
		resp: &awsapi.Response{
			StatusCode: 500,
			Body:       []byte(`<Error><Code>InternalError</Code><Message>oops</Message></Error>`),
		},
		want: &smithy.GenericAPIError{
			Code:    "InternalError",
			Message: "oops",
			Fault:   smithy.FaultServer,
		},
	}, {
		name: "unparseable body",
		resp: &awsapi.Response{
			StatusCode: 502,
			Body:       []byte(`<Error><Code>`),
		},
		want: &smithy.GenericAPIError{
			Code:  "UnknownError",
			Fault: smithy.FaultServer,
		},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, requestID := DecodeError(tt.resp)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatal(diff)
			}
			if requestID != tt.requestID {
				t.Fatal("unexpected request id", requestID)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	t.Run("from the x-amzn-requestid header", func(t *testing.T) {
		resp := &awsapi.Response{Header: http.Header{"X-Amzn-Requestid": {"h1"}}}
		if got := RequestID(resp); got != "h1" {
			t.Fatal("unexpected", got)
		}
	})

	t.Run("from the x-amz-request-id header", func(t *testing.T) {
		resp := &awsapi.Response{Header: http.Header{"X-Amz-Request-Id": {"h2"}}}
		if got := RequestID(resp); got != "h2" {
			t.Fatal("unexpected", got)
		}
	})

	t.Run("from the response metadata", func(t *testing.T) {
		resp := &awsapi.Response{Body: []byte(`<AddRoleToDBInstanceResponse>` +
			`<ResponseMetadata><RequestId>b1</RequestId></ResponseMetadata>` +
			`</AddRoleToDBInstanceResponse>`)}
		if got := RequestID(resp); got != "b1" {
			t.Fatal("unexpected", got)
		}
	})

	t.Run("from an ec2Query response", func(t *testing.T) {
		resp := &awsapi.Response{Body: []byte(`<CreateTagsResponse><requestId>b2</requestId>` +
			`<return>true</return></CreateTagsResponse>`)}
		if got := RequestID(resp); got != "b2" {
			t.Fatal("unexpected", got)
		}
	})
}

type nameList []string

func (l *nameList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return DecodeList(d, start, (*[]string)(l))
}

func TestDecodeList(t *testing.T) {
	type result struct {
		Names nameList `xml:"Names"`
	}

	t.Run("with members", func(t *testing.T) {
		var out result
		body := `<R><Names><member>a</member><Name>b</Name></Names></R>`
		if err := xml.Unmarshal([]byte(body), &out); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(nameList{"a", "b"}, out.Names); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("without members", func(t *testing.T) {
		var out result
		if err := xml.Unmarshal([]byte(`<R><Names/></R>`), &out); err != nil {
			t.Fatal(err)
		}
		if out.Names == nil || len(out.Names) != 0 {
			t.Fatal("expected an empty list", out.Names)
		}
	})
}
