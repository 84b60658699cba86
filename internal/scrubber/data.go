package scrubber

import "github.com/rohmanhakim/linkscrub/internal/extractor"

// Change is one URL found in a text and what became of it.
type Change struct {
	span        extractor.Span
	cleaned     string
	removedKeys []string
	pathTrimmed bool
}

// Span locates the original URL in the input text.
func (c Change) Span() extractor.Span {
	return c.span
}

func (c Change) Original() string {
	return c.span.Raw()
}

func (c Change) Cleaned() string {
	return c.cleaned
}

func (c Change) RemovedKeys() []string {
	keys := make([]string, len(c.removedKeys))
	copy(keys, c.removedKeys)
	return keys
}

func (c Change) PathTrimmed() bool {
	return c.pathTrimmed
}

func (c Change) Changed() bool {
	return c.cleaned != c.span.Raw()
}

// Report is the result of scrubbing a text.
type Report struct {
	output  string
	changes []Change
}

// NewReport assembles a report from changes collected one URL at a time.
func NewReport(output string, changes ...Change) Report {
	return Report{output: output, changes: changes}
}

func (r Report) Output() string {
	return r.output
}

// Changes lists every URL found, cleaned or not, in order of appearance.
func (r Report) Changes() []Change {
	changes := make([]Change, len(r.changes))
	copy(changes, r.changes)
	return changes
}

func (r Report) URLsFound() int {
	return len(r.changes)
}

func (r Report) URLsCleaned() int {
	cleaned := 0
	for _, change := range r.changes {
		if change.Changed() {
			cleaned++
		}
	}
	return cleaned
}

func (r Report) ParamsRemoved() int {
	removed := 0
	for _, change := range r.changes {
		removed += len(change.removedKeys)
	}
	return removed
}
