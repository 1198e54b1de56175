//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext cancels the batch on Ctrl+C. Call stop() to release resources.
// syscall.SIGTERM is not delivered on Windows.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
