package awsclient

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmitCallable(t *testing.T) {
	t.Run("returns the result of the call", func(t *testing.T) {
		clnt := New(jsonService, Config{Endpoint: "https://example.com"})
		future := SubmitCallable(context.Background(), clnt, func(ctx context.Context) (string, error) {
			return "ok", nil
		})
		value, err := future.Get(context.Background())
		if err != nil || value != "ok" {
			t.Fatal("unexpected result", value, err)
		}
		select {
		case <-future.Done():
		default:
			t.Fatal("Done should be closed")
		}
	})

	t.Run("returns the error of the call", func(t *testing.T) {
		expected := errors.New("mocked error")
		clnt := New(jsonService, Config{Endpoint: "https://example.com"})
		future := SubmitCallable(context.Background(), clnt, func(ctx context.Context) (int, error) {
			return 0, expected
		})
		if _, err := future.Get(context.Background()); !errors.Is(err, expected) {
			t.Fatal("not the error we expected", err)
		}
	})

	t.Run("Get honours the context", func(t *testing.T) {
		clnt := New(jsonService, Config{Endpoint: "https://example.com"})
		release := make(chan struct{})
		defer close(release)
		future := SubmitCallable(context.Background(), clnt, func(ctx context.Context) (int, error) {
			<-release
			return 1, nil
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := future.Get(ctx); !errors.Is(err, context.Canceled) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestSubmitAsync(t *testing.T) {
	executor := NewPooledExecutor(2)
	clnt := New(jsonService, Config{Endpoint: "https://example.com", Executor: executor})

	var (
		mu      sync.Mutex
		results []int
	)
	for idx := 0; idx < 5; idx++ {
		idx := idx
		SubmitAsync(context.Background(), clnt, func(ctx context.Context) (int, error) {
			return idx * 10, nil
		}, func(ctx context.Context, value int, err error) {
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				results = append(results, value)
			}
		})
	}
	executor.Wait()
	if len(results) != 5 {
		t.Fatal("unexpected number of results", len(results))
	}
}

func TestPooledExecutor(t *testing.T) {
	t.Run("bounds the number of concurrent tasks", func(t *testing.T) {
		executor := NewPooledExecutor(2)
		var running, peak atomic.Int64
		for idx := 0; idx < 8; idx++ {
			executor.Submit(func() {
				current := running.Add(1)
				for {
					old := peak.Load()
					if current <= old || peak.CompareAndSwap(old, current) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				running.Add(-1)
			})
		}
		executor.Wait()
		if peak.Load() > 2 {
			t.Fatal("too many concurrent tasks", peak.Load())
		}
	})

	t.Run("without limit", func(t *testing.T) {
		executor := NewPooledExecutor(0)
		var count atomic.Int64
		for idx := 0; idx < 4; idx++ {
			executor.Submit(func() {
				count.Add(1)
			})
		}
		executor.Wait()
		if count.Load() != 4 {
			t.Fatal("unexpected count", count.Load())
		}
	})
}
