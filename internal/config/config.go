// Package config contains the configuration of the awsmodels command.
//
// The configuration file is JWCC, i.e., JSON with comments and trailing
// commas. Environment variables override the values read from the file.
package config

import (
	"encoding/json"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
	"github.com/sdkmodels/awsmodels/internal/logx"
	"github.com/sdkmodels/awsmodels/internal/model"
	"github.com/tailscale/hujson"
)

// Environment variables overriding the configuration file.
const (
	EnvEndpoint  = "AWSMODELS_ENDPOINT"
	EnvUserAgent = "AWSMODELS_USER_AGENT"
	EnvDebug     = "AWSMODELS_DEBUG"
)

// DefaultWorkers is the default number of concurrent calls of the batch command.
const DefaultWorkers = 4

// DefaultMetricsNamespace is the default namespace of the prometheus metrics.
const DefaultMetricsNamespace = "awsmodels"

// ErrNoEndpoint indicates that no endpoint is configured for a service.
var ErrNoEndpoint = errors.New("no endpoint configured")

// Config is the configuration of the awsmodels command.
type Config struct {
	// Comment is ignored.
	Comment string `json:"_"`

	// DefaultEndpoint is the endpoint of services without an entry in Endpoints.
	DefaultEndpoint string `json:"default_endpoint"`

	// Endpoints maps service names (e.g., "codedeploy") to endpoints.
	Endpoints map[string]string `json:"endpoints"`

	// UserAgent overrides the default User-Agent.
	UserAgent string `json:"user_agent"`

	// TimeoutSeconds is the timeout of a single call.
	TimeoutSeconds int64 `json:"timeout_seconds"`

	// MaxBodySize is the maximum size of a response body.
	MaxBodySize int64 `json:"max_body_size"`

	// LogBody enables logging request and response bodies.
	LogBody bool `json:"log_body"`

	// QueryUseGET sends awsQuery and ec2Query requests using GET.
	QueryUseGET bool `json:"query_use_get"`

	// Workers is the number of concurrent calls of the batch command.
	Workers int `json:"workers"`

	// MetricsNamespace is the namespace of the prometheus metrics.
	MetricsNamespace string `json:"metrics_namespace"`

	// Debug is set by the AWSMODELS_DEBUG environment variable.
	Debug bool `json:"-"`

	path string
}

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	c.path = path
	return c, nil
}

// ParseConfig returns config from JWCC bytes.
func ParseConfig(b []byte) (*Config, error) {
	std, err := hujson.Standardize(b)
	if err != nil {
		return nil, errors.Wrap(err, "standardizing jwcc")
	}
	var c Config
	if err := json.Unmarshal(std, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}
	return finish(&c)
}

// New returns the configuration to use when there is no configuration file.
func New() (*Config, error) {
	return finish(&Config{})
}

func finish(c *Config) (*Config, error) {
	if err := c.ApplyEnvironment(os.Getenv); err != nil {
		return nil, errors.Wrap(err, "environment")
	}
	if err := c.Default(); err != nil {
		return nil, errors.Wrap(err, "defaulting")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}
	return c, nil
}

// Path returns the path the configuration was read from, if any.
func (c *Config) Path() string {
	return c.path
}

// ApplyEnvironment overrides settings using the environment variables
// returned by getenv. Empty variables are ignored.
func (c *Config) ApplyEnvironment(getenv func(string) string) error {
	if value := getenv(EnvEndpoint); value != "" {
		c.DefaultEndpoint = value
	}
	if value := getenv(EnvUserAgent); value != "" {
		c.UserAgent = value
	}
	if value := getenv(EnvDebug); value != "" {
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "parsing %s", EnvDebug)
		}
		c.Debug = debug
	}
	return nil
}

// Default config settings
func (c *Config) Default() error {
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = DefaultMetricsNamespace
	}
	return nil
}

// Validate the config file
func (c *Config) Validate() error {
	if c.DefaultEndpoint != "" {
		if err := validateEndpoint(c.DefaultEndpoint); err != nil {
			return errors.Wrap(err, "default_endpoint")
		}
	}
	for service, endpoint := range c.Endpoints {
		if err := validateEndpoint(endpoint); err != nil {
			return errors.Wrapf(err, "endpoints.%s", service)
		}
	}
	if c.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds must not be negative")
	}
	if c.MaxBodySize < 0 {
		return errors.New("max_body_size must not be negative")
	}
	if c.Workers < 1 {
		return errors.New("workers must be positive")
	}
	return nil
}

func validateEndpoint(endpoint string) error {
	URL, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if URL.Scheme != "http" && URL.Scheme != "https" {
		return errors.Errorf("unsupported scheme in %q", endpoint)
	}
	if URL.Host == "" {
		return errors.Errorf("missing host in %q", endpoint)
	}
	return nil
}

// Endpoint returns the endpoint of the given service.
func (c *Config) Endpoint(service string) (string, error) {
	if endpoint, found := c.Endpoints[service]; found {
		return endpoint, nil
	}
	if c.DefaultEndpoint != "" {
		return c.DefaultEndpoint, nil
	}
	return "", errors.Wrap(ErrNoEndpoint, service)
}

// ClientConfig returns the client configuration for the given service. Log
// lines emitted by the client are prefixed with the service name.
func (c *Config) ClientConfig(service string, logger model.Logger) (awsclient.Config, error) {
	endpoint, err := c.Endpoint(service)
	if err != nil {
		return awsclient.Config{}, err
	}
	return awsclient.Config{
		Endpoint:    endpoint,
		LogBody:     c.LogBody || c.Debug,
		Logger:      logx.NewPrefixLogger(service, logger),
		MaxBodySize: c.MaxBodySize,
		QueryUseGET: c.QueryUseGET,
		Timeout:     time.Duration(c.TimeoutSeconds) * time.Second,
		UserAgent:   c.UserAgent,
	}, nil
}
