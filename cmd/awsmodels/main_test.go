package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sdkmodels/awsmodels/internal/config"
	"github.com/sdkmodels/awsmodels/internal/model"
	"github.com/sdkmodels/awsmodels/internal/registry"
	"github.com/sdkmodels/awsmodels/internal/version"
)

func clearEnvironment(t *testing.T) {
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvUserAgent, "")
	t.Setenv(config.EnvDebug, "")
}

// writeConfig writes a configuration file pointing to endpoint.
func writeConfig(t *testing.T, endpoint string) string {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	data := "{\n  // tests\n  \"default_endpoint\": \"" + endpoint + "\",\n  \"workers\": 2,\n}\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand runs the CLI with args and returns what it wrote to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	rootCmd := newRootCommand(&Options{}, &stdout, &stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

// newDeployServer returns a server answering GetDeploymentConfig and
// failing every other operation.
func newDeployServer(calls *atomic.Int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/x-amz-json-1.1")
		if r.Header.Get("X-Amz-Target") != "CodeDeploy_20141006.GetDeploymentConfig" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"__type":"InvalidOperationException","message":"unsupported"}`))
			return
		}
		w.Write([]byte(`{"deploymentConfigInfo":{"deploymentConfigName":"prod-config"}}`))
	}))
}

func TestParseFields(t *testing.T) {
	t.Run("repeated keys become lists", func(t *testing.T) {
		fields, err := parseFields([]string{"Name=x=y", "Resources=a", "Resources=b", "Resources=c"})
		if err != nil {
			t.Fatal(err)
		}
		expect := map[string]any{"Name": "x=y", "Resources": []any{"a", "b", "c"}}
		if diff := cmp.Diff(expect, fields); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("rejects pairs without a key", func(t *testing.T) {
		for _, pair := range []string{"novalue", "=value"} {
			if _, err := parseFields([]string{pair}); !errors.Is(err, ErrInvalidField) {
				t.Fatal("unexpected error", pair, err)
			}
		}
	})
}

func TestListOperations(t *testing.T) {
	t.Run("filters by service", func(t *testing.T) {
		var buf bytes.Buffer
		if err := listOperations(&buf, "s3control"); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "s3control.PutPublicAccessBlock") || !strings.Contains(out, "AccountID") {
			t.Fatal("unexpected output", out)
		}
		if strings.Contains(out, "codedeploy.") {
			t.Fatal("unexpected service in output", out)
		}
	})

	t.Run("fails for unknown services", func(t *testing.T) {
		var buf bytes.Buffer
		if err := listOperations(&buf, "nonexistent"); !errors.Is(err, registry.ErrNoSuchOperation) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestRender(t *testing.T) {
	clearEnvironment(t)
	path := writeConfig(t, "https://codedeploy.us-east-1.amazonaws.com")
	out, err := runCommand(t, "--config", path, "render", "codedeploy.GetDeploymentConfig",
		"-f", "DeploymentConfigName=prod-config")
	if err != nil {
		t.Fatal(err)
	}
	for _, expect := range []string{
		"POST / HTTP/1.1",
		"Host: codedeploy.us-east-1.amazonaws.com",
		"X-Amz-Target: CodeDeploy_20141006.GetDeploymentConfig",
		`{"deploymentConfigName":"prod-config"}`,
	} {
		if !strings.Contains(out, expect) {
			t.Fatal("missing", expect, "in", out)
		}
	}
}

func TestInvoke(t *testing.T) {
	clearEnvironment(t)
	var calls atomic.Int64
	server := newDeployServer(&calls)
	defer server.Close()
	path := writeConfig(t, server.URL)

	t.Run("prints the result", func(t *testing.T) {
		out, err := runCommand(t, "-c", path, "invoke", "codedeploy.get-deployment-config",
			"-f", "DeploymentConfigName=prod-config")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, `"prod-config"`) {
			t.Fatal("unexpected output", out)
		}
	})

	t.Run("returns API errors", func(t *testing.T) {
		_, err := runCommand(t, "-c", path, "invoke", "codedeploy.ListDeploymentConfigs")
		if err == nil || !strings.Contains(err.Error(), "InvalidOperationException") {
			t.Fatal("unexpected error", err)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := runCommand(t, "-c", path, "invoke", "codedeploy.GetDeploymentConfig", "-f", "Nope=1")
		if !errors.Is(err, registry.ErrNoSuchField) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestRunBatch(t *testing.T) {
	clearEnvironment(t)
	var calls atomic.Int64
	server := newDeployServer(&calls)
	defer server.Close()

	cfg, err := config.ParseConfig([]byte(`{"default_endpoint": "` + server.URL + `"}`))
	if err != nil {
		t.Fatal(err)
	}

	t.Run("sends every operation", func(t *testing.T) {
		calls.Store(0)
		var stdout bytes.Buffer
		e := &env{config: cfg, logger: model.DiscardLogger, stdout: &stdout}
		input := strings.Join([]string{
			"# deployment configs",
			"codedeploy.GetDeploymentConfig DeploymentConfigName=prod-config",
			"",
			"codedeploy.GetDeploymentConfig 'DeploymentConfigName=with space'",
			"codedeploy.ListDeploymentConfigs",
		}, "\n")
		summary, err := e.runBatch(context.Background(), strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		if summary.Total != 3 || summary.Failed != 1 || calls.Load() != 3 {
			t.Fatal("unexpected summary", summary, calls.Load())
		}
		if summary.MeanMillis < 0 || summary.P95Millis < 0 {
			t.Fatal("unexpected latency", summary)
		}
		if !strings.Contains(stdout.String(), "FAIL 5 codedeploy.ListDeploymentConfigs") {
			t.Fatal("unexpected output", stdout.String())
		}
	})

	t.Run("sends nothing when a line is invalid", func(t *testing.T) {
		calls.Store(0)
		e := &env{config: cfg, logger: model.DiscardLogger, stdout: &bytes.Buffer{}}
		input := "codedeploy.GetDeploymentConfig\ncodedeploy.Nonexistent\n"
		if _, err := e.runBatch(context.Background(), strings.NewReader(input)); !errors.Is(err, registry.ErrNoSuchOperation) {
			t.Fatal("unexpected error", err)
		}
		if calls.Load() != 0 {
			t.Fatal("expected no calls", calls.Load())
		}
	})
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != version.Version+"\n"+version.UserAgent+"\n" {
		t.Fatal("unexpected output", out)
	}
}
