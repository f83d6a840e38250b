package shutdown

import (
	"context"
	"testing"
)

func TestContext(t *testing.T) {
	ctx, stop := Context(context.Background())
	defer stop()

	select {
	case <-ctx.Done():
		t.Error("context canceled without a signal")
	default:
	}
}

func TestContext_StopReleases(t *testing.T) {
	ctx, stop := Context(context.Background())
	stop()

	// After stop the context is detached from signal delivery but not
	// canceled by the stop itself.
	select {
	case <-ctx.Done():
		t.Error("stop() must not cancel the context")
	default:
	}
}

func TestContext_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := Context(parent)
	defer stop()

	cancel()
	<-ctx.Done()
	if ctx.Err() == nil {
		t.Error("ctx.Err() = nil after parent cancel")
	}
}
