package server

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

// blockingService stands in for a component like the gRPC endpoint: Start
// blocks until Stop is called.
type blockingService struct {
	started atomic.Bool
	stopped atomic.Bool
	onStop  func()
}

func (b *blockingService) Start() error {
	b.started.Store(true)
	for !b.stopped.Load() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (b *blockingService) Stop() {
	b.stopped.Store(true)
	if b.onStop != nil {
		b.onStop()
	}
}

func TestLifecycleStartsAndStopsServices(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger)

	grpcSvc := &blockingService{}
	healthSvc := &blockingService{}

	lc.Add("grpc", grpcSvc)
	lc.Add("postgres", healthSvc)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- lc.Run(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if grpcSvc.started.Load() && healthSvc.started.Load() {
			break
		}
		select {
		case <-deadline:
			t.Fatal("services did not start in time")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}

	assert.True(t, grpcSvc.stopped.Load())
	assert.True(t, healthSvc.stopped.Load())
}

// Shutdown must run in reverse registration order: the gRPC endpoint added
// first drains last, after the components layered on top of it.
func TestLifecycleStopsInReverseOrder(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger)

	var mu sync.Mutex
	var stopOrder []string
	record := func(name string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			stopOrder = append(stopOrder, name)
		}
	}

	grpcSvc := &blockingService{onStop: record("grpc")}
	healthSvc := &blockingService{onStop: record("postgres")}
	lc.Add("grpc", grpcSvc)
	lc.Add("postgres", healthSvc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- lc.Run(ctx)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if grpcSvc.started.Load() && healthSvc.started.Load() {
			break
		}
		select {
		case <-deadline:
			t.Fatal("services did not start in time")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down in time")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"postgres", "grpc"}, stopOrder)
}

// A service whose Start returns an error takes the whole lifecycle down.
func TestLifecycleFailingServiceTriggersShutdown(t *testing.T) {
	logger := zaptest.NewLogger(t)
	lc := NewLifecycle(logger)

	healthy := &blockingService{}
	lc.Add("grpc", healthy)
	lc.Add("broken", &FuncService{
		StartFn: func() error { return assert.AnError },
		StopFn:  func() {},
	})

	done := make(chan error, 1)
	go func() {
		done <- lc.Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("lifecycle did not shut down after service failure")
	}
	assert.True(t, healthy.stopped.Load())
}

func TestFuncService(t *testing.T) {
	started := false
	stopped := false

	svc := &FuncService{
		StartFn: func() error {
			started = true
			return nil
		},
		StopFn: func() {
			stopped = true
		},
	}

	err := svc.Start()
	assert.NoError(t, err)
	assert.True(t, started)

	svc.Stop()
	assert.True(t, stopped)
}
