// Package shutdown provides interrupt handling for one-shot tools.
package shutdown

import (
	"context"
	"os/signal"
	"syscall"
)

// Context returns a copy of parent that is canceled on SIGINT or
// SIGTERM. The stop function releases the signal registration; callers
// must invoke it when done.
func Context(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
