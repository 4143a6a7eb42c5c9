package rds

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
)

func mustForm(t *testing.T, req awsapi.Request) url.Values {
	t.Helper()
	data, err := req.SerializePayload()
	if err != nil {
		t.Fatal(err)
	}
	values, err := url.ParseQuery(string(data))
	if err != nil {
		t.Fatal(err)
	}
	return values
}

func TestAddRoleToDBInstanceInput(t *testing.T) {
	t.Run("unset FeatureName is omitted", func(t *testing.T) {
		in := (&AddRoleToDBInstanceInput{}).
			SetDBInstanceIdentifier("db1").
			SetRoleArn("arn:aws:iam::123456789012:role/r")
		values := mustForm(t, in)
		if _, found := values["FeatureName"]; found {
			t.Fatal("FeatureName should not be present")
		}
		if values.Get("DBInstanceIdentifier") != "db1" {
			t.Fatal("unexpected DBInstanceIdentifier", values)
		}
		if values.Get("RoleArn") != "arn:aws:iam::123456789012:role/r" {
			t.Fatal("unexpected RoleArn", values)
		}
		if values.Get("Action") != "AddRoleToDBInstance" || values.Get("Version") != "2014-10-31" {
			t.Fatal("unexpected Action or Version", values)
		}
	})

	t.Run("the body is sorted and escaped", func(t *testing.T) {
		in := (&AddRoleToDBInstanceInput{}).
			SetDBInstanceIdentifier("db1").
			SetRoleArn("arn:aws:iam::123:role/r").
			SetFeatureName("s3Import")
		data, err := in.SerializePayload()
		if err != nil {
			t.Fatal(err)
		}
		expect := "Action=AddRoleToDBInstance&DBInstanceIdentifier=db1&FeatureName=s3Import" +
			"&RoleArn=arn%3Aaws%3Aiam%3A%3A123%3Arole%2Fr&Version=2014-10-31"
		if diff := cmp.Diff(expect, string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("DumpBodyToURL moves the body into the query", func(t *testing.T) {
		in := (&AddRoleToDBInstanceInput{}).SetDBInstanceIdentifier("db1")
		u := &url.URL{Scheme: "https", Host: "rds.example.com", Path: "/", RawQuery: "stale=1"}
		if err := in.DumpBodyToURL(u); err != nil {
			t.Fatal(err)
		}
		if u.String() != "https://rds.example.com/?Action=AddRoleToDBInstance&DBInstanceIdentifier=db1&Version=2014-10-31" {
			t.Fatal("unexpected URL", u.String())
		}
	})
}

func TestDescribeDBInstancesInput(t *testing.T) {
	t.Run("filters use the Filter and Value member names", func(t *testing.T) {
		in := (&DescribeDBInstancesInput{}).
			AddFilters(*(&Filter{}).SetName("engine").AddValues("postgres", "mysql")).
			AddFilters(*(&Filter{}).SetName("db-instance-id").AddValues("db1")).
			SetMaxRecords(20)
		expect := url.Values{
			"Action":                          {"DescribeDBInstances"},
			"Version":                         {"2014-10-31"},
			"Filters.Filter.1.Name":           {"engine"},
			"Filters.Filter.1.Values.Value.1": {"postgres"},
			"Filters.Filter.1.Values.Value.2": {"mysql"},
			"Filters.Filter.2.Name":           {"db-instance-id"},
			"Filters.Filter.2.Values.Value.1": {"db1"},
			"MaxRecords":                      {"20"},
		}
		if diff := cmp.Diff(expect, mustForm(t, in)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("an empty filter list is present", func(t *testing.T) {
		in := (&DescribeDBInstancesInput{}).SetFilters([]Filter{})
		values := mustForm(t, in)
		if v, found := values["Filters"]; !found || v[0] != "" {
			t.Fatal("expected an empty Filters parameter", values)
		}
	})

	t.Run("Clone copies the filter values", func(t *testing.T) {
		filterValues := []string{"a"}
		in := (&DescribeDBInstancesInput{}).AddFilters(*(&Filter{}).SetName("n").SetValues(filterValues))
		clone := in.Clone().(*DescribeDBInstancesInput)
		filterValues[0] = "changed"
		if got := clone.Filters.Unwrap()[0].Values.Unwrap()[0]; got != "a" {
			t.Fatal("the clone shares the values", got)
		}
	})
}

const describeResponse = `<DescribeDBInstancesResponse xmlns="http://rds.amazonaws.com/doc/2014-10-31/">
  <DescribeDBInstancesResult>
    <DBInstances>
      <DBInstance>
        <DBInstanceIdentifier>db1</DBInstanceIdentifier>
        <DBInstanceClass>db.t3.micro</DBInstanceClass>
        <Engine>postgres</Engine>
        <DBInstanceStatus>available</DBInstanceStatus>
        <AllocatedStorage>20</AllocatedStorage>
        <InstanceCreateTime>2023-01-02T03:04:05.678Z</InstanceCreateTime>
        <AssociatedRoles>
          <DBInstanceRole>
            <RoleArn>arn:aws:iam::123:role/r</RoleArn>
            <FeatureName>s3Import</FeatureName>
            <Status>ACTIVE</Status>
          </DBInstanceRole>
        </AssociatedRoles>
      </DBInstance>
      <DBInstance>
        <DBInstanceIdentifier>db2</DBInstanceIdentifier>
      </DBInstance>
    </DBInstances>
    <Marker>next</Marker>
  </DescribeDBInstancesResult>
  <ResponseMetadata>
    <RequestId>req-1</RequestId>
  </ResponseMetadata>
</DescribeDBInstancesResponse>`

func TestDescribeDBInstancesOutput(t *testing.T) {
	var out DescribeDBInstancesOutput
	if err := out.UnmarshalResponse(&awsapi.Response{Body: []byte(describeResponse)}); err != nil {
		t.Fatal(err)
	}
	if len(out.DBInstances) != 2 || out.Marker != "next" {
		t.Fatal("unexpected output", out)
	}
	first := out.DBInstances[0]
	if first.DBInstanceIdentifier.Unwrap() != "db1" || first.AllocatedStorage.Unwrap() != 20 {
		t.Fatal("unexpected instance", first)
	}
	expectTime := time.Date(2023, 1, 2, 3, 4, 5, 678000000, time.UTC)
	if !first.InstanceCreateTime.Unwrap().Equal(expectTime) {
		t.Fatal("unexpected create time", first.InstanceCreateTime.Unwrap())
	}
	roles := first.AssociatedRoles.Unwrap()
	if len(roles) != 1 || roles[0].FeatureName.Unwrap() != "s3Import" || roles[0].Status.Unwrap() != "ACTIVE" {
		t.Fatal("unexpected roles", roles)
	}
	second := out.DBInstances[1]
	if second.Engine.IsSome() || second.AssociatedRoles.IsSome() {
		t.Fatal("absent members should not be set", second)
	}
}

func TestClient(t *testing.T) {
	var (
		gotMethod string
		gotForm   url.Values
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		if r.Method == http.MethodGet {
			gotForm = r.URL.Query()
		} else {
			gotForm, _ = url.ParseQuery(string(body))
		}
		w.Header().Set("Content-Type", "text/xml")
		switch gotForm.Get("Action") {
		case "DescribeDBInstances":
			w.Write([]byte(describeResponse))
		case "RemoveRoleFromDBInstance":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`<ErrorResponse><Error><Type>Sender</Type><Code>DBInstanceRoleNotFound</Code>` +
				`<Message>role not found</Message></Error><RequestId>req-2</RequestId></ErrorResponse>`))
		default:
			w.Write([]byte(`<AddRoleToDBInstanceResponse><ResponseMetadata><RequestId>req-3</RequestId>` +
				`</ResponseMetadata></AddRoleToDBInstanceResponse>`))
		}
	}))
	defer server.Close()

	ctx := context.Background()

	t.Run("DescribeDBInstances", func(t *testing.T) {
		clnt := New(awsclient.Config{Endpoint: server.URL})
		out, err := clnt.DescribeDBInstances(ctx, (&DescribeDBInstancesInput{}).SetDBInstanceIdentifier("db1"))
		if err != nil {
			t.Fatal(err)
		}
		if gotMethod != http.MethodPost || gotForm.Get("DBInstanceIdentifier") != "db1" {
			t.Fatal("unexpected request", gotMethod, gotForm)
		}
		if out.RequestID != "req-1" || len(out.DBInstances) != 2 {
			t.Fatal("unexpected output", out)
		}
	})

	t.Run("AddRoleToDBInstance using GET", func(t *testing.T) {
		clnt := New(awsclient.Config{Endpoint: server.URL, QueryUseGET: true})
		out, err := clnt.AddRoleToDBInstance(ctx, (&AddRoleToDBInstanceInput{}).SetDBInstanceIdentifier("db1").SetRoleArn("r"))
		if err != nil {
			t.Fatal(err)
		}
		if gotMethod != http.MethodGet || gotForm.Get("RoleArn") != "r" {
			t.Fatal("unexpected request", gotMethod, gotForm)
		}
		if out.RequestID != "req-3" {
			t.Fatal("unexpected request id", out.RequestID)
		}
	})

	t.Run("RemoveRoleFromDBInstance error", func(t *testing.T) {
		clnt := New(awsclient.Config{Endpoint: server.URL})
		_, err := clnt.RemoveRoleFromDBInstance(ctx, (&RemoveRoleFromDBInstanceInput{}).SetDBInstanceIdentifier("db1"))
		apiErr, ok := awsclient.APIError(err)
		if !ok || apiErr.ErrorCode() != "DBInstanceRoleNotFound" {
			t.Fatal("unexpected error", err)
		}
		if !strings.Contains(err.Error(), "role not found") {
			t.Fatal("unexpected message", err)
		}
	})
}
