// Command awsmodels lists, renders and invokes the AWS operations
// implemented by this module.
package main

import (
	"io"
	"net/http"
	"os"

	"github.com/apex/log"
	"github.com/mattn/go-colorable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
	"github.com/sdkmodels/awsmodels/internal/config"
	"github.com/sdkmodels/awsmodels/internal/logx"
	"github.com/sdkmodels/awsmodels/internal/model"
	"github.com/sdkmodels/awsmodels/internal/runtimex"
	"github.com/sdkmodels/awsmodels/internal/version"
	"github.com/spf13/cobra"
)

// Options contains the options you can set from the CLI.
type Options struct {
	ConfigPath  string
	Fields      []string
	MetricsAddr string
	Verbose     bool
}

// env is the environment shared by the subcommands.
type env struct {
	config  *config.Config
	logger  model.Logger
	metrics *awsclient.Metrics

	// progress receives the batch progress bar.
	progress io.Writer

	stdout io.Writer
}

// newEnv loads the configuration and initializes logging and metrics.
func newEnv(options *Options, stdout, stderr io.Writer) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if options.ConfigPath != "" {
		cfg, err = config.ReadConfig(options.ConfigPath)
	} else {
		cfg, err = config.New()
	}
	if err != nil {
		return nil, err
	}
	logger := logx.Setup(stderr, options.Verbose || cfg.Debug)
	registry := prometheus.NewRegistry()
	metrics := awsclient.NewMetrics(cfg.MetricsNamespace)
	metrics.MustRegister(registry)
	runtimex.Assert(logger != nil, "logx.Setup returned a nil logger")
	if options.MetricsAddr != "" {
		go serveMetrics(options.MetricsAddr, registry, logger)
	}
	return &env{
		config:   cfg,
		logger:   logger,
		metrics:  metrics,
		progress: stderr,
		stdout:   stdout,
	}, nil
}

// serveMetrics exposes the metrics at /metrics until the process exits.
func serveMetrics(addr string, registry *prometheus.Registry, logger model.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logger.Infof("serving metrics at http://%s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warnf("metrics server: %s", err.Error())
	}
}

// clientConfig returns the client configuration for service.
func (e *env) clientConfig(service string) (awsclient.Config, error) {
	cc, err := e.config.ClientConfig(service, e.logger)
	if err != nil {
		return awsclient.Config{}, err
	}
	cc.Metrics = e.metrics
	return cc, nil
}

// newRootCommand creates the root command and its subcommands.
func newRootCommand(options *Options, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "awsmodels",
		Short:         "awsmodels renders and invokes AWS API operations",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(
		&options.ConfigPath,
		"config",
		"c",
		"",
		"path of the JWCC configuration file",
	)

	flags.StringVar(
		&options.MetricsAddr,
		"metrics-addr",
		"",
		"serve prometheus metrics at the given address while running",
	)

	flags.BoolVarP(
		&options.Verbose,
		"verbose",
		"v",
		false,
		"enable verbose logging",
	)

	setup := func() (*env, error) {
		return newEnv(options, stdout, stderr)
	}
	rootCmd.AddCommand(newOperationsCommand(stdout))
	rootCmd.AddCommand(newRenderCommand(options, setup))
	rootCmd.AddCommand(newInvokeCommand(options, setup))
	rootCmd.AddCommand(newBatchCommand(setup))
	rootCmd.AddCommand(newVersionCommand(stdout))
	return rootCmd
}

func main() {
	var options Options
	rootCmd := newRootCommand(&options, colorable.NewColorableStdout(), colorable.NewColorableStderr())
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("awsmodels failed")
		os.Exit(1)
	}
}
