package scrubber_test

import (
	"sync"
	"time"

	"github.com/rohmanhakim/linkscrub/internal/metadata"
)

// recordingSink captures events for assertions.
type recordingSink struct {
	mu     sync.Mutex
	cleans []metadata.CleanEvent
	errors []metadata.ErrorCause
}

func (r *recordingSink) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	attrs []metadata.Attribute,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, cause)
}

func (r *recordingSink) RecordClean(event metadata.CleanEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleans = append(r.cleans, event)
}

func (r *recordingSink) RecordArtifact(path string, attrs []metadata.Attribute) {}

func (r *recordingSink) cleanCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cleans)
}
