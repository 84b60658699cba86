package engine

import "github.com/rohmanhakim/linkscrub/pkg/urlutil"

// Result is the outcome of cleaning one URL.
type Result struct {
	url         urlutil.ParsedURL
	removed     []urlutil.QueryParam
	pathTrimmed bool
	domain      string
}

// URL returns the cleaned URL.
func (r Result) URL() urlutil.ParsedURL {
	return r.url
}

// Removed returns the query parameters that were stripped, in source order.
func (r Result) Removed() []urlutil.QueryParam {
	removed := make([]urlutil.QueryParam, len(r.removed))
	copy(removed, r.removed)
	return removed
}

// PathTrimmed reports whether a path marker cut the path.
func (r Result) PathTrimmed() bool {
	return r.pathTrimmed
}

// MatchedDomain returns the domain of the rule that applied, or "".
func (r Result) MatchedDomain() string {
	return r.domain
}

func (r Result) Changed() bool {
	return r.pathTrimmed || len(r.removed) > 0
}
