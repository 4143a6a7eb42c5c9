// Package logx contains logging extensions.
package logx

import (
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/sdkmodels/awsmodels/internal/model"
)

// PrefixLogger is a [model.Logger] adding a fixed prefix to every message.
type PrefixLogger struct {
	// Logger is the MANDATORY underlying logger.
	Logger model.Logger

	// Prefix is the MANDATORY prefix (e.g., "codedeploy").
	Prefix string
}

// NewPrefixLogger creates a new [*PrefixLogger] wrapping logger. A nil
// logger is replaced with [model.DiscardLogger].
func NewPrefixLogger(prefix string, logger model.Logger) *PrefixLogger {
	return &PrefixLogger{
		Logger: model.ValidLoggerOrDefault(logger),
		Prefix: prefix,
	}
}

var _ model.Logger = &PrefixLogger{}

func (pl *PrefixLogger) prefixed(msg string) string {
	return fmt.Sprintf("%s: %s", pl.Prefix, msg)
}

// Debug implements model.Logger.
func (pl *PrefixLogger) Debug(msg string) {
	pl.Logger.Debug(pl.prefixed(msg))
}

// Debugf implements model.Logger.
func (pl *PrefixLogger) Debugf(format string, v ...interface{}) {
	pl.Logger.Debug(pl.prefixed(fmt.Sprintf(format, v...)))
}

// Info implements model.Logger.
func (pl *PrefixLogger) Info(msg string) {
	pl.Logger.Info(pl.prefixed(msg))
}

// Infof implements model.Logger.
func (pl *PrefixLogger) Infof(format string, v ...interface{}) {
	pl.Logger.Info(pl.prefixed(fmt.Sprintf(format, v...)))
}

// Warn implements model.Logger.
func (pl *PrefixLogger) Warn(msg string) {
	pl.Logger.Warn(pl.prefixed(msg))
}

// Warnf implements model.Logger.
func (pl *PrefixLogger) Warnf(format string, v ...interface{}) {
	pl.Logger.Warn(pl.prefixed(fmt.Sprintf(format, v...)))
}

// Setup configures the apex/log default logger to emit to w using the
// CLI handler, at debug level when verbose is true.
func Setup(w io.Writer, verbose bool) model.Logger {
	log.SetHandler(cli.New(w))
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return log.Log
}
