package mocks

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPClient(t *testing.T) {
	t.Run("Do", func(t *testing.T) {
		expected := errors.New("mocked error")
		clnt := &HTTPClient{
			MockDo: func(req *http.Request) (*http.Response, error) {
				return nil, expected
			},
		}
		resp, err := clnt.Do(&http.Request{})
		if !errors.Is(err, expected) {
			t.Fatal("not the error we expected", err)
		}
		if resp != nil {
			t.Fatal("expected nil response here")
		}
	})
}

func TestLogger(t *testing.T) {
	var count int
	lo := &Logger{
		MockDebug:  func(message string) { count++ },
		MockDebugf: func(format string, v ...interface{}) { count++ },
		MockInfo:   func(message string) { count++ },
		MockInfof:  func(format string, v ...interface{}) { count++ },
		MockWarn:   func(message string) { count++ },
		MockWarnf:  func(format string, v ...interface{}) { count++ },
	}
	lo.Debug("x")
	lo.Debugf("%s", "x")
	lo.Info("x")
	lo.Infof("%s", "x")
	lo.Warn("x")
	lo.Warnf("%s", "x")
	if count != 6 {
		t.Fatal("unexpected count", count)
	}
}
