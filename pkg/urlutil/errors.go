package urlutil

import (
	"errors"
	"fmt"

	"github.com/rohmanhakim/linkscrub/pkg/failure"
)

// ErrNotAURL is matched by every ParseError.
var ErrNotAURL = errors.New("not an absolute http(s) URL")

type ParseErrorCause string

const (
	ErrCauseMissingScheme     ParseErrorCause = "missing scheme"
	ErrCauseUnsupportedScheme ParseErrorCause = "unsupported scheme"
	ErrCauseEmptyHost         ParseErrorCause = "empty host"
)

type ParseError struct {
	Message   string
	Retryable bool
	Cause     ParseErrorCause
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parse error: %s", e.Cause)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Cause, e.Message)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrNotAURL
}

func (e *ParseError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}
