package model

import (
	"errors"
	"testing"

	"github.com/apex/log"
)

func TestValidLoggerOrDefault(t *testing.T) {
	t.Run("nil becomes DiscardLogger", func(t *testing.T) {
		logger := ValidLoggerOrDefault(nil)
		if logger != DiscardLogger {
			t.Fatal("unexpected logger", logger)
		}
		logger.Debugf("%d", 1)
		logger.Warn("dropped")
	})

	t.Run("apex/log is a valid logger", func(t *testing.T) {
		if logger := ValidLoggerOrDefault(log.Log); logger != log.Log {
			t.Fatal("unexpected logger", logger)
		}
	})
}

func TestErrorToStringOrOK(t *testing.T) {
	if s := ErrorToStringOrOK(nil); s != "ok" {
		t.Fatal("unexpected string", s)
	}
	if s := ErrorToStringOrOK(errors.New("ThrottlingException")); s != "ThrottlingException" {
		t.Fatal("unexpected string", s)
	}
}
