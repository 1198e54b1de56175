package main

import (
	"errors"
	"fmt"
	"runtime"
)

// MaxWorkers bounds the --workers flag.
const MaxWorkers = 64

// ErrInvalidWorkerCount marks a --workers value outside [0, MaxWorkers].
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the number of rendering goroutines.
// Priority: explicit flag > environment > GOMAXPROCS.
// Rendering is CPU bound, so the automatic value is one worker per
// available processor, capped at the number of files.
func resolveWorkers(flagWorkers, envWorkers, files int) int {
	n := flagWorkers
	if n <= 0 {
		n = envWorkers
	}
	if n <= 0 {
		// GOMAXPROCS is adjusted by automaxprocs for containers
		n = runtime.GOMAXPROCS(0)
	}

	if n > files {
		n = files
	}
	if n < 1 {
		return 1
	}
	return n
}
