package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdfigure"
	"github.com/alnah/go-mdfigure/internal/config"
)

// Exit codes for the mdfigure CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files rendered
	ExitGeneral = 1 // General/unexpected error, or some files failed
	ExitUsage   = 2 // Invalid flags, config, or renderer options
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrWriteManifest) ||
		errors.Is(err, ErrNoMarkdown) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputFile) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, mdfigure.ErrUnknownLanguage) ||
		errors.Is(err, mdfigure.ErrUnknownStyle) ||
		errors.Is(err, mdfigure.ErrInvalidCSSClass) {
		return ExitUsage
	}

	return ExitGeneral
}
