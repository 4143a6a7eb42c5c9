package logx

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/go-cmp/cmp"
)

func TestPrefixLogger(t *testing.T) {
	handler := memory.New()
	logger := &log.Logger{
		Handler: handler,
		Level:   log.DebugLevel,
	}
	pl := NewPrefixLogger("codedeploy", logger)
	pl.Debug("a")
	pl.Debugf("%s", "b")
	pl.Info("c")
	pl.Infof("%s", "d")
	pl.Warn("e")
	pl.Warnf("%s", "f")

	var got []string
	for _, entry := range handler.Entries {
		got = append(got, entry.Level.String()+" "+entry.Message)
	}
	expect := []string{
		"debug codedeploy: a",
		"debug codedeploy: b",
		"info codedeploy: c",
		"info codedeploy: d",
		"warn codedeploy: e",
		"warn codedeploy: f",
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestNewPrefixLoggerWithNilLogger(t *testing.T) {
	pl := NewPrefixLogger("x", nil)
	if pl.Logger == nil {
		t.Fatal("expected a valid logger")
	}
	pl.Infof("%d", 1) // must not crash
}

func TestSetup(t *testing.T) {
	t.Run("with verbose logging", func(t *testing.T) {
		w := &bytes.Buffer{}
		logger := Setup(w, true)
		logger.Debug("hello")
		if !bytes.Contains(w.Bytes(), []byte("hello")) {
			t.Fatal("expected debug message to be emitted", w.String())
		}
	})

	t.Run("without verbose logging", func(t *testing.T) {
		w := &bytes.Buffer{}
		logger := Setup(w, false)
		logger.Debug("hello")
		if w.Len() != 0 {
			t.Fatal("expected no output", w.String())
		}
	})
}
