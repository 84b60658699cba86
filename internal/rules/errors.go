package rules

import (
	"fmt"

	"github.com/rohmanhakim/linkscrub/pkg/failure"
)

type RuleErrorCause string

const (
	ErrCauseEmptyDomain      RuleErrorCause = "empty domain"
	ErrCauseInvalidDomain    RuleErrorCause = "invalid domain"
	ErrCausePublicSuffix     RuleErrorCause = "domain is a public suffix"
	ErrCauseEmptyArgument    RuleErrorCause = "empty action argument"
	ErrCauseUnknownAction    RuleErrorCause = "unknown action"
	ErrCauseGlobalPathAction RuleErrorCause = "path action in global rules"
	ErrCauseNoActions        RuleErrorCause = "domain rule without actions"
)

type RuleError struct {
	Message   string
	Retryable bool
	Cause     RuleErrorCause
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule error: %s: %s", e.Cause, e.Message)
}

func (e *RuleError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}
