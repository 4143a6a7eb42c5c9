package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/shlex"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/sdkmodels/awsmodels/internal/awsapi"
	"github.com/sdkmodels/awsmodels/internal/awsclient"
	"github.com/sdkmodels/awsmodels/internal/registry"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func newBatchCommand(setup func() (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Sends the operations listed in FILE concurrently",
		Long: `Sends the operations listed in FILE concurrently.

Each line contains an operation name followed by KEY=VALUE fields using
shell quoting rules. Empty lines and lines starting with # are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			filep, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer filep.Close()
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			summary, err := e.runBatch(ctx, filep)
			if err != nil {
				return err
			}
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d operations failed", summary.Failed, summary.Total)
			}
			return nil
		},
	}
}

// batchEntry is a parsed line of a batch file.
type batchEntry struct {
	line    int
	factory *registry.Factory
	request awsapi.Request
}

// batchSummary summarizes the outcome of a batch.
type batchSummary struct {
	Total  int
	Failed int

	// MeanMillis and P95Millis describe the latency of the
	// successful operations.
	MeanMillis float64
	P95Millis  float64
}

// parseBatch parses all the lines of r before anything is sent, so
// that a typo does not leave a batch half done.
func parseBatch(r io.Reader) ([]batchEntry, error) {
	var entries []batchEntry
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		argv, err := shlex.Split(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		if len(argv) <= 0 {
			continue
		}
		factory, req, err := newRequest(argv[0], argv[1:])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		entries = append(entries, batchEntry{line: lineno, factory: factory, request: req})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// runBatch sends the operations listed in r using at most the
// configured number of workers and writes one line per operation.
func (e *env) runBatch(ctx context.Context, r io.Reader) (*batchSummary, error) {
	entries, err := parseBatch(r)
	if err != nil {
		return nil, err
	}
	progress := e.progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(
		len(entries),
		progressbar.OptionSetDescription("batch"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWriter(progress),
	)
	executor := awsclient.NewPooledExecutor(e.config.Workers)
	clients := make(map[string]*awsclient.Client)
	for _, entry := range entries {
		service := entry.factory.Service()
		if clients[service] != nil {
			continue
		}
		cc, err := e.clientConfig(service)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", entry.line)
		}
		cc.Executor = executor
		clients[service] = entry.factory.NewClient(cc)
	}
	futures := make([]*awsclient.Future[time.Duration], 0, len(entries))
	for _, entry := range entries {
		factory, req := entry.factory, entry.request
		clnt := clients[factory.Service()]
		futures = append(futures, awsclient.SubmitCallable(ctx, clnt, func(ctx context.Context) (time.Duration, error) {
			t0 := time.Now()
			_, err := factory.Invoke(ctx, clnt, req)
			elapsed := time.Since(t0)
			_ = bar.Add(1)
			return elapsed, err
		}))
	}
	executor.Wait()
	_ = bar.Finish()

	ok, failed := color.New(color.FgGreen), color.New(color.FgRed)
	summary := &batchSummary{Total: len(entries)}
	var elapsed []float64
	for idx, future := range futures {
		entry := entries[idx]
		duration, err := future.Get(ctx)
		if err != nil {
			summary.Failed++
			failed.Fprintf(e.stdout, "FAIL %d %s: %s\n", entry.line, entry.factory.Name(), err.Error())
			continue
		}
		ok.Fprintf(e.stdout, "OK   %d %s %s\n", entry.line, entry.factory.Name(), duration)
		elapsed = append(elapsed, float64(duration)/float64(time.Millisecond))
	}
	if len(elapsed) > 0 {
		summary.MeanMillis, _ = stats.Mean(elapsed)
		summary.P95Millis, _ = stats.Percentile(elapsed, 95)
	}
	fmt.Fprintf(e.stdout, "%d operations, %d failed, mean %.1fms, p95 %.1fms\n",
		summary.Total, summary.Failed, summary.MeanMillis, summary.P95Millis)
	return summary, nil
}
