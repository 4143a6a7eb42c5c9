package awsclient

//
// Client configuration
//

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/model"
	"github.com/sdkmodels/awsmodels/internal/version"
)

// DefaultMaxBodySize is the default value for the maximum
// response body size we're willing to read.
const DefaultMaxBodySize = 1 << 22

// DefaultCallTimeout is the default timeout for a single call.
const DefaultCallTimeout = 60 * time.Second

// Signer signs a fully built HTTP request. Credential resolution and
// the signing algorithm live outside this module: callers needing signed
// requests provide their own implementation.
type Signer interface {
	SignHTTP(ctx context.Context, req *http.Request, md *awsapi.ServiceMetadata) error
}

// Config contains configuration for a [*Client].
//
// The zero value of this struct is invalid. Please, fill all the
// fields marked as MANDATORY for correct initialization.
type Config struct {
	// Endpoint is the MANDATORY base URL (e.g., "https://codedeploy.us-east-1.amazonaws.com").
	Endpoint string

	// Executor is the OPTIONAL executor used by SubmitAsync and SubmitCallable. When
	// not set, every task runs in its own goroutine.
	Executor Executor

	// HTTPClient is the OPTIONAL HTTP client. When not set we use http.DefaultClient.
	HTTPClient model.HTTPClient

	// IdempotencyTokenProvider OPTIONALLY generates idempotency tokens. When not
	// set we use random UUIDs.
	IdempotencyTokenProvider func() string

	// LogBody OPTIONALLY enables logging bodies.
	LogBody bool

	// Logger is the OPTIONAL logger. When not set we use model.DiscardLogger.
	Logger model.Logger

	// MaxBodySize is the OPTIONAL maximum response body size. If
	// not set, we use the |DefaultMaxBodySize| constant.
	MaxBodySize int64

	// Metrics OPTIONALLY collects per-operation metrics.
	Metrics *Metrics

	// QueryUseGET OPTIONALLY sends requests of the query protocols using GET
	// with the parameters inside the URL rather than POST with a form body.
	QueryUseGET bool

	// Signer OPTIONALLY signs requests. When not set requests are unsigned.
	Signer Signer

	// Timeout is the OPTIONAL timeout for a call. If no timeout
	// is specified we will use the |DefaultCallTimeout| const.
	Timeout time.Duration

	// UserAgent is the OPTIONAL user agent. When not set we use version.UserAgent.
	UserAgent string
}

func (c *Config) httpClient() model.HTTPClient {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Config) executor() Executor {
	if c.Executor != nil {
		return c.Executor
	}
	return GoroutineExecutor{}
}

func (c *Config) maxBodySize() int64 {
	if c.MaxBodySize > 0 {
		return c.MaxBodySize
	}
	return DefaultMaxBodySize
}

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultCallTimeout
}

func (c *Config) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return version.UserAgent
}

func (c *Config) idempotencyToken() string {
	if c.IdempotencyTokenProvider != nil {
		return c.IdempotencyTokenProvider()
	}
	return uuid.NewString()
}
