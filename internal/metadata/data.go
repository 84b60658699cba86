package metadata

// CleanEvent describes one URL whose tracking was stripped.
type CleanEvent struct {
	originalURL string
	cleanedURL  string
	host        string
	domain      string
	removedKeys []string
	pathTrimmed bool
}

func NewCleanEvent(
	originalURL string,
	cleanedURL string,
	host string,
	domain string,
	removedKeys []string,
	pathTrimmed bool,
) CleanEvent {
	return CleanEvent{
		originalURL: originalURL,
		cleanedURL:  cleanedURL,
		host:        host,
		domain:      domain,
		removedKeys: removedKeys,
		pathTrimmed: pathTrimmed,
	}
}

func (c CleanEvent) OriginalURL() string {
	return c.originalURL
}

func (c CleanEvent) CleanedURL() string {
	return c.cleanedURL
}

func (c CleanEvent) Host() string {
	return c.host
}

// Domain returns the registered domain of the host.
func (c CleanEvent) Domain() string {
	return c.domain
}

func (c CleanEvent) RemovedKeys() []string {
	keys := make([]string, len(c.removedKeys))
	copy(keys, c.removedKeys)
	return keys
}

func (c CleanEvent) PathTrimmed() bool {
	return c.pathTrimmed
}

/*
runStats
  - Represents a terminal summary of one CLI run
  - Contains only aggregate counts and durations
  - Is recorded exactly once
*/
type runStats struct {
	urlsFound     int
	urlsCleaned   int
	paramsRemoved int
	durationMs    int64
}

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging, reporting).

	Rules:
	 - ErrorCause MUST NOT influence control flow.
	 - A failed parse never stops cleaning; the input is passed through.
	 - Packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

/*
Canonical ErrorCause Table

# CauseUnknown

Meaning:
  - The failure does not map cleanly to any known category.

# CauseInvalidURL

Meaning:
  - A candidate was not an absolute http(s) URL and was passed through.

Examples:
  - "https:///path" (empty host)
  - a span the extractor found but the parser rejected

# CauseInvalidRule

Meaning:
  - A configured cleaning rule was rejected.

Examples:
  - a rule registered on a public suffix
  - a param action without a name

# CauseConfigFailure

Meaning:
  - The configuration file could not be read or decoded.

# CauseStorageFailure

Meaning:
  - Failure while writing output.

Examples:
  - Write permission errors
*/
const (
	CauseUnknown ErrorCause = iota
	CauseInvalidURL
	CauseInvalidRule
	CauseConfigFailure
	CauseStorageFailure
)

func (c ErrorCause) String() string {
	switch c {
	case CauseInvalidURL:
		return "invalid_url"
	case CauseInvalidRule:
		return "invalid_rule"
	case CauseConfigFailure:
		return "config_failure"
	case CauseStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{
		Key:   key,
		Value: val,
	}
}

type AttributeKey string

const (
	AttrURL       AttributeKey = "url"
	AttrHost      AttributeKey = "host"
	AttrDomain    AttributeKey = "domain"
	AttrField     AttributeKey = "field"
	AttrWritePath AttributeKey = "write_path"
	AttrDuration  AttributeKey = "duration"
)
