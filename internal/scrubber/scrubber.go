package scrubber

import (
	"strings"
	"sync"
	"time"

	"github.com/rohmanhakim/linkscrub/internal/engine"
	"github.com/rohmanhakim/linkscrub/internal/extractor"
	"github.com/rohmanhakim/linkscrub/internal/metadata"
	"github.com/rohmanhakim/linkscrub/internal/rules"
	"github.com/rohmanhakim/linkscrub/pkg/urlutil"
)

/*
Responsibilities
- Clean a single URL string
- Clean every URL inside a text blob

Guarantees
- Never fails: anything that does not parse is returned unchanged
- Text outside URL spans is copied byte-for-byte
- No state is kept between calls; a Scrubber may be shared by goroutines
*/
type Scrubber struct {
	engine engine.Engine
	sink   metadata.MetadataSink
}

// New returns a Scrubber applying table (rules.Default() when nil) and
// reporting to sink (a NoopSink when nil).
func New(table *rules.Table, sink metadata.MetadataSink) *Scrubber {
	if sink == nil {
		sink = &metadata.NoopSink{}
	}
	return &Scrubber{
		engine: engine.New(table),
		sink:   sink,
	}
}

var defaultScrubber = sync.OnceValue(func() *Scrubber {
	return New(rules.Default(), nil)
})

// CleanURL cleans raw with the built-in rules.
func CleanURL(raw string) string {
	return defaultScrubber().CleanURL(raw)
}

// CleanURLsInText cleans every URL in text with the built-in rules.
func CleanURLsInText(text string) string {
	return defaultScrubber().CleanURLsInText(text)
}

// CleanURL returns raw without tracking parameters. Input that is not an
// absolute http(s) URL is returned unchanged.
func (s *Scrubber) CleanURL(raw string) string {
	cleaned, _ := s.clean(raw)
	return cleaned
}

// CleanURLsInText replaces every URL in text with its cleaned form.
func (s *Scrubber) CleanURLsInText(text string) string {
	return s.Scrub(text).Output()
}

// Scrub cleans every URL in text and reports what changed.
func (s *Scrubber) Scrub(text string) Report {
	spans := extractor.FindURLs(text)
	if len(spans) == 0 {
		return Report{output: text}
	}

	var b strings.Builder
	b.Grow(len(text))
	changes := make([]Change, 0, len(spans))
	last := 0
	for _, span := range spans {
		change := s.change(span)
		b.WriteString(text[last:span.Start()])
		b.WriteString(change.Cleaned())
		last = span.End()
		changes = append(changes, change)
	}
	b.WriteString(text[last:])

	return Report{output: b.String(), changes: changes}
}

// Inspect cleans raw as a single URL and reports what changed. Unlike
// Scrub it does not look for URL boundaries inside raw.
func (s *Scrubber) Inspect(raw string) Change {
	return s.change(extractor.NewSpan(0, len(raw), raw))
}

func (s *Scrubber) change(span extractor.Span) Change {
	cleaned, result := s.clean(span.Raw())
	change := Change{span: span, cleaned: cleaned}
	if result != nil {
		change.pathTrimmed = result.PathTrimmed()
		for _, param := range result.Removed() {
			change.removedKeys = append(change.removedKeys, param.Key())
		}
	}
	return change
}

// clean returns the cleaned URL and the engine result, or raw and nil when
// raw does not parse.
func (s *Scrubber) clean(raw string) (string, *engine.Result) {
	parsed, err := urlutil.Parse(raw)
	if err != nil {
		s.sink.RecordError(
			time.Now(),
			"scrubber",
			"Scrubber.CleanURL",
			metadata.CauseInvalidURL,
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, raw),
			},
		)
		return raw, nil
	}

	result := s.engine.Clean(parsed)
	if !result.Changed() {
		return raw, &result
	}

	cleaned := result.URL().String()
	removed := result.Removed()
	keys := make([]string, 0, len(removed))
	for _, param := range removed {
		keys = append(keys, param.Key())
	}
	host := parsed.Hostname()
	s.sink.RecordClean(metadata.NewCleanEvent(
		raw,
		cleaned,
		host,
		rules.RegisteredDomain(host),
		keys,
		result.PathTrimmed(),
	))
	return cleaned, &result
}
