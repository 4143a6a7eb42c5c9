package ec2

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

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

func tag(key, value string) Tag {
	return *(&Tag{}).SetKey(key).SetValue(value)
}

func TestCreateTagsInput(t *testing.T) {
	t.Run("lists are flattened", func(t *testing.T) {
		in := (&CreateTagsInput{}).
			AddResources("i-1", "ami-2").
			AddTags(tag("Name", "web"), tag("env", "")).
			SetDryRun(true)
		expect := url.Values{
			"Action":       {"CreateTags"},
			"Version":      {"2016-11-15"},
			"DryRun":       {"true"},
			"ResourceId.1": {"i-1"},
			"ResourceId.2": {"ami-2"},
			"Tag.1.Key":    {"Name"},
			"Tag.1.Value":  {"web"},
			"Tag.2.Key":    {"env"},
			"Tag.2.Value":  {""},
		}
		if diff := cmp.Diff(expect, mustForm(t, in)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("empty lists are omitted", func(t *testing.T) {
		in := (&CreateTagsInput{}).SetResources([]string{}).SetTags(nil)
		expect := url.Values{
			"Action":  {"CreateTags"},
			"Version": {"2016-11-15"},
		}
		if diff := cmp.Diff(expect, mustForm(t, in)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("fluent and sequential setters are equivalent", func(t *testing.T) {
		fluent := (&CreateTagsInput{}).AddResources("i-1").AddTags(tag("a", "b"))
		sequential := &CreateTagsInput{}
		sequential.AddResources("i-1")
		sequential.AddTags(tag("a", "b"))
		if diff := cmp.Diff(mustForm(t, fluent), mustForm(t, sequential)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestDeleteTagsInput(t *testing.T) {
	in := (&DeleteTagsInput{}).AddResources("i-1").AddTags(*(&Tag{}).SetKey("Name"))
	values := mustForm(t, in)
	if values.Get("Action") != "DeleteTags" || values.Get("Tag.1.Key") != "Name" {
		t.Fatal("unexpected values", values)
	}
	if _, found := values["Tag.1.Value"]; found {
		t.Fatal("unset Value should be omitted")
	}

	clone := in.Clone().(*DeleteTagsInput)
	clone.AddResources("i-2")
	if len(in.Resources.Unwrap()) != 1 {
		t.Fatal("the clone shares the resources")
	}
}

func TestClient(t *testing.T) {
	var gotForm url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(body))
		w.Header().Set("Content-Type", "text/xml;charset=UTF-8")
		if gotForm.Get("DryRun") == "true" {
			w.WriteHeader(http.StatusPreconditionFailed)
			w.Write([]byte(`<Response><Errors><Error><Code>DryRunOperation</Code>` +
				`<Message>Request would have succeeded, but DryRun flag is set.</Message></Error></Errors>` +
				`<RequestID>r-err</RequestID></Response>`))
			return
		}
		w.Write([]byte(`<CreateTagsResponse xmlns="http://ec2.amazonaws.com/doc/2016-11-15/">` +
			`<requestId>r-ok</requestId><return>true</return></CreateTagsResponse>`))
	}))
	defer server.Close()

	clnt := New(awsclient.Config{Endpoint: server.URL})
	ctx := context.Background()

	t.Run("CreateTags", func(t *testing.T) {
		out, err := clnt.CreateTags(ctx, (&CreateTagsInput{}).AddResources("i-1").AddTags(tag("k", "v")))
		if err != nil {
			t.Fatal(err)
		}
		if out.RequestID != "r-ok" || gotForm.Get("ResourceId.1") != "i-1" {
			t.Fatal("unexpected result", out.RequestID, gotForm)
		}
	})

	t.Run("DeleteTags with DryRun", func(t *testing.T) {
		_, err := clnt.DeleteTags(ctx, (&DeleteTagsInput{}).AddResources("i-1").SetDryRun(true))
		apiErr, ok := awsclient.APIError(err)
		if !ok || apiErr.ErrorCode() != "DryRunOperation" {
			t.Fatal("unexpected error", err)
		}
	})
}
