package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogcore/pkg/shutdown"
)

func TestRun(t *testing.T) {
	t.Run("all hooks are executed", func(t *testing.T) {
		var calls atomic.Int32
		hook := func(_ context.Context) error {
			calls.Add(1)
			return nil
		}
		failing := func(_ context.Context) error {
			calls.Add(1)
			return errors.New("close failed")
		}

		ok := shutdown.Run(context.Background(), time.Second, hook, failing, hook)

		assert.True(t, ok)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("slow hook hits the timeout", func(t *testing.T) {
		slow := func(ctx context.Context) error {
			select {
			case <-ctx.Done():
			case <-time.After(5 * time.Second):
			}
			return nil
		}

		ok := shutdown.Run(context.Background(), 20*time.Millisecond, slow)

		assert.False(t, ok)
	})
}

func TestWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var called atomic.Bool
	done := make(chan struct{})
	go func() {
		shutdown.Wait(ctx, time.Second, func(_ context.Context) error {
			called.Store(true)
			return nil
		})
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return after context cancellation")
	}
	assert.True(t, called.Load())
}
