package lambda

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/smithy-go"
	smithyjson "github.com/aws/smithy-go/encoding/json"
	"github.com/google/go-cmp/cmp"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
	"github.com/sdkmodels/awsmodels/internal/protocol/awsjson"
)

func TestBuildHTTPRequest(t *testing.T) {
	clnt := New(awsclient.Config{Endpoint: "https://lambda.us-east-1.amazonaws.com"})
	ctx := context.Background()

	t.Run("Invoke binds labels, query, headers and payload", func(t *testing.T) {
		in := (&InvokeInput{}).
			SetFunctionName("my-function").
			SetQualifier("prod").
			SetInvocationType(InvocationTypeEvent).
			SetLogType(LogTypeTail).
			SetClientContext("eyJhIjoxfQ==").
			SetPayload([]byte(`{"key":"value"}`))
		request, err := clnt.Core().BuildHTTPRequest(ctx, in)
		if err != nil {
			t.Fatal(err)
		}
		if request.Method != http.MethodPost {
			t.Fatal("unexpected method", request.Method)
		}
		expectURL := "https://lambda.us-east-1.amazonaws.com/2015-03-31/functions/my-function/invocations?Qualifier=prod"
		if diff := cmp.Diff(expectURL, request.URL.String()); diff != "" {
			t.Fatal(diff)
		}
		expectHeaders := map[string]string{
			"X-Amz-Invocation-Type": "Event",
			"X-Amz-Log-Type":        "Tail",
			"X-Amz-Client-Context":  "eyJhIjoxfQ==",
			"Content-Type":          "application/octet-stream",
		}
		for key, value := range expectHeaders {
			if got := request.Header.Get(key); got != value {
				t.Fatal("unexpected header", key, got)
			}
		}
		body, err := io.ReadAll(request.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != `{"key":"value"}` {
			t.Fatal("unexpected body", string(body))
		}
	})

	t.Run("Invoke without optional members", func(t *testing.T) {
		request, err := clnt.Core().BuildHTTPRequest(ctx, (&InvokeInput{}).SetFunctionName("f"))
		if err != nil {
			t.Fatal(err)
		}
		if request.URL.RawQuery != "" || request.Body != nil {
			t.Fatal("unexpected query or body", request.URL.RawQuery)
		}
		for _, key := range []string{"X-Amz-Invocation-Type", "X-Amz-Log-Type", "X-Amz-Client-Context", "Content-Type"} {
			if _, found := request.Header[key]; found {
				t.Fatal("unexpected header", key)
			}
		}
	})

	t.Run("ListLayers binds the query", func(t *testing.T) {
		in := (&ListLayersInput{}).
			SetCompatibleRuntime("python3.12").
			SetCompatibleArchitecture(ArchitectureArm64).
			SetMaxItems(10)
		request, err := clnt.Core().BuildHTTPRequest(ctx, in)
		if err != nil {
			t.Fatal(err)
		}
		if request.Method != http.MethodGet || request.URL.Path != "/2018-10-31/layers" {
			t.Fatal("unexpected request", request.Method, request.URL.Path)
		}
		query := request.URL.Query()
		if query.Get("CompatibleRuntime") != "python3.12" || query.Get("CompatibleArchitecture") != "arm64" ||
			query.Get("MaxItems") != "10" || query.Has("Marker") {
			t.Fatal("unexpected query", query)
		}
	})

	t.Run("TagResource escapes the ARN and sorts the tags", func(t *testing.T) {
		in := (&TagResourceInput{}).
			SetResource("arn:aws:lambda:us-east-1:123456789012:function:f").
			AddTags("team", "core").
			AddTags("env", "prod")
		request, err := clnt.Core().BuildHTTPRequest(ctx, in)
		if err != nil {
			t.Fatal(err)
		}
		expectPath := "/2017-03-31/tags/arn%3Aaws%3Alambda%3Aus-east-1%3A123456789012%3Afunction%3Af"
		if diff := cmp.Diff(expectPath, request.URL.EscapedPath()); diff != "" {
			t.Fatal(diff)
		}
		body, _ := io.ReadAll(request.Body)
		if diff := cmp.Diff(`{"Tags":{"env":"prod","team":"core"}}`, string(body)); diff != "" {
			t.Fatal(diff)
		}
		if request.Header.Get("Content-Type") != "application/json" {
			t.Fatal("unexpected content type", request.Header.Get("Content-Type"))
		}
	})

	t.Run("DeleteFunction requires the function name", func(t *testing.T) {
		_, err := clnt.Core().BuildHTTPRequest(ctx, &DeleteFunctionInput{})
		var serdeErr *smithy.SerializationError
		if !errors.As(err, &serdeErr) {
			t.Fatal("expected a SerializationError", err)
		}
	})
}

func TestInputs(t *testing.T) {
	t.Run("Clone copies the payload", func(t *testing.T) {
		payload := []byte(`{}`)
		in := (&InvokeInput{}).SetPayload(payload)
		clone := in.Clone().(*InvokeInput)
		payload[0] = '['
		if string(clone.Payload.Unwrap()) != `{}` {
			t.Fatal("the clone shares the payload")
		}
	})

	t.Run("Clone copies the tags", func(t *testing.T) {
		in := (&TagResourceInput{}).AddTags("a", "1")
		clone := in.Clone().(*TagResourceInput)
		clone.AddTags("b", "2")
		if len(in.Tags.Unwrap()) != 1 {
			t.Fatal("the clone shares the tags")
		}
	})

	t.Run("AddTags is equivalent to SetTags", func(t *testing.T) {
		added := (&TagResourceInput{}).AddTags("a", "1").AddTags("b", "2")
		set := (&TagResourceInput{}).SetTags(map[string]string{"b": "2", "a": "1"})
		addedBody, _ := added.SerializePayload()
		setBody, _ := set.SerializePayload()
		if diff := cmp.Diff(string(setBody), string(addedBody)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestLayersListItemRoundTrip(t *testing.T) {
	doc := `{"LayerName":"deps","LayerArn":"arn:aws:lambda:us-east-1:1:layer:deps",` +
		`"LatestMatchingVersion":{"LayerVersionArn":"arn:aws:lambda:us-east-1:1:layer:deps:3","Version":3,` +
		`"Description":"","CreatedDate":"2024-01-01T00:00:00.000+0000","CompatibleRuntimes":["python3.12"],` +
		`"CompatibleArchitectures":["x86_64","arm64"]}}`
	view, err := awsjson.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	encoder := smithyjson.NewEncoder()
	NewLayersListItemFromView(view).Jsonize(encoder.Value)
	if diff := cmp.Diff(doc, string(encoder.Bytes())); diff != "" {
		t.Fatal(diff)
	}
}

func TestClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/2015-03-31/functions/ok/invocations":
			w.Header().Set("X-Amz-Executed-Version", "$LATEST")
			w.Header().Set("X-Amz-Log-Result", "bG9n")
			w.Write([]byte(`{"result":42}`))
		case r.URL.Path == "/2015-03-31/functions/fails/invocations":
			w.Header().Set("X-Amz-Function-Error", "Unhandled")
			w.Write([]byte(`{"errorMessage":"boom"}`))
		case r.URL.Path == "/2018-10-31/layers":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"NextMarker":"m2","Layers":[{"LayerName":"a"},{"LayerName":"b"}]}`))
		case r.Method == http.MethodGet && r.URL.Path == "/2017-03-31/tags/arn:f":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"Tags":{"env":"prod"}}`))
		case r.Method == http.MethodDelete:
			w.Header().Set("X-Amzn-Errortype", "ResourceNotFoundException:http://internal.amazon.com/")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"Type":"User","Message":"Function not found"}`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	clnt := New(awsclient.Config{Endpoint: server.URL})
	ctx := context.Background()

	t.Run("Invoke", func(t *testing.T) {
		out, err := clnt.Invoke(ctx, (&InvokeInput{}).SetFunctionName("ok").SetLogType(LogTypeTail))
		if err != nil {
			t.Fatal(err)
		}
		expect := &InvokeOutput{
			StatusCode:      200,
			LogResult:       "bG9n",
			ExecutedVersion: "$LATEST",
			Payload:         []byte(`{"result":42}`),
		}
		if diff := cmp.Diff(expect, out); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Invoke with a function error", func(t *testing.T) {
		out, err := clnt.Invoke(ctx, (&InvokeInput{}).SetFunctionName("fails"))
		if err != nil {
			t.Fatal(err)
		}
		if out.FunctionError != "Unhandled" || string(out.Payload) != `{"errorMessage":"boom"}` {
			t.Fatal("unexpected output", out)
		}
	})

	t.Run("ListLayers", func(t *testing.T) {
		out, err := clnt.ListLayers(ctx, nil)
		if err != nil {
			t.Fatal(err)
		}
		if out.NextMarker != "m2" || len(out.Layers) != 2 || out.Layers[1].LayerName.Unwrap() != "b" {
			t.Fatal("unexpected output", out)
		}
	})

	t.Run("ListTags", func(t *testing.T) {
		out, err := clnt.ListTags(ctx, (&ListTagsInput{}).SetResource("arn:f"))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(map[string]string{"env": "prod"}, out.Tags); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("TagResource", func(t *testing.T) {
		if _, err := clnt.TagResource(ctx, (&TagResourceInput{}).SetResource("arn:f").AddTags("k", "v")); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("DeleteFunction error", func(t *testing.T) {
		_, err := clnt.DeleteFunction(ctx, (&DeleteFunctionInput{}).SetFunctionName("missing"))
		apiErr, ok := awsclient.APIError(err)
		if !ok || apiErr.ErrorCode() != "ResourceNotFoundException" || apiErr.ErrorMessage() != "Function not found" {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestInvokeOutputFromResponse(t *testing.T) {
	var out InvokeOutput
	resp := &awsapi.Response{StatusCode: 202, Header: http.Header{}}
	if err := out.UnmarshalResponse(resp); err != nil {
		t.Fatal(err)
	}
	if out.StatusCode != 202 || out.Payload != nil {
		t.Fatal("unexpected output", out)
	}
}
