package urlutil

import "strings"

// QueryParam is a single key/value pair of a query string, kept exactly as
// it appeared in the source text. Bare is set for a pair written without '='.
type QueryParam struct {
	key   string
	value string
	bare  bool
}

func NewQueryParam(key, value string) QueryParam {
	return QueryParam{key: key, value: value}
}

func NewBareQueryParam(key string) QueryParam {
	return QueryParam{key: key, bare: true}
}

func (q QueryParam) Key() string {
	return q.key
}

func (q QueryParam) Value() string {
	return q.value
}

func (q QueryParam) Bare() bool {
	return q.bare
}

func (q QueryParam) String() string {
	if q.bare {
		return q.key
	}
	return q.key + "=" + q.value
}

// ParsedURL is an absolute http(s) URL decomposed into its parts.
// Every part keeps its original spelling so that String reproduces the
// input exactly when nothing was removed.
type ParsedURL struct {
	scheme        string
	authority     string
	rooted        bool
	segments      []string
	trailingSlash bool
	query         []QueryParam
	forceQuery    bool
	fragment      string
	hasFragment   bool
}

// Scheme returns the scheme as written (e.g. "HTTPS").
func (p ParsedURL) Scheme() string {
	return p.scheme
}

// Authority returns everything between "://" and the path, including
// userinfo and port.
func (p ParsedURL) Authority() string {
	return p.authority
}

// Hostname returns the lowercase host used for rule matching, without
// userinfo, port, IPv6 brackets or a trailing root dot.
func (p ParsedURL) Hostname() string {
	host := p.authority
	if at := strings.LastIndexByte(host, '@'); at != -1 {
		host = host[at+1:]
	}
	if strings.HasPrefix(host, "[") {
		if end := strings.IndexByte(host, ']'); end != -1 {
			return lowerASCII(host[1:end])
		}
		return lowerASCII(host[1:])
	}
	if colon := strings.LastIndexByte(host, ':'); colon != -1 {
		host = host[:colon]
	}
	host = strings.TrimSuffix(host, ".")
	return lowerASCII(host)
}

// Segments returns a copy of the slash-delimited path segments.
func (p ParsedURL) Segments() []string {
	segments := make([]string, len(p.segments))
	copy(segments, p.segments)
	return segments
}

// TrailingSlash reports whether the path ends with '/'.
func (p ParsedURL) TrailingSlash() bool {
	return p.trailingSlash
}

// Path returns the path exactly as written, or "" when the URL has none.
func (p ParsedURL) Path() string {
	if !p.rooted {
		return ""
	}
	var b strings.Builder
	b.WriteByte('/')
	b.WriteString(strings.Join(p.segments, "/"))
	if p.trailingSlash {
		b.WriteByte('/')
	}
	return b.String()
}

// Query returns a copy of the ordered query parameters.
func (p ParsedURL) Query() []QueryParam {
	query := make([]QueryParam, len(p.query))
	copy(query, p.query)
	return query
}

// RawQuery returns the '&'-joined query parameters without the leading '?'.
func (p ParsedURL) RawQuery() string {
	pairs := make([]string, len(p.query))
	for i, param := range p.query {
		pairs[i] = param.String()
	}
	return strings.Join(pairs, "&")
}

func (p ParsedURL) Fragment() (string, bool) {
	return p.fragment, p.hasFragment
}

// WithPath returns a copy of p whose path is replaced by rawPath.
// rawPath must be empty or start with '/'.
func (p ParsedURL) WithPath(rawPath string) ParsedURL {
	p.rooted, p.segments, p.trailingSlash = splitPath(rawPath)
	return p
}

// WithQuery returns a copy of p carrying the given query parameters.
// A bare '?' from the source is dropped once the query is replaced.
func (p ParsedURL) WithQuery(query []QueryParam) ParsedURL {
	p.query = make([]QueryParam, len(query))
	copy(p.query, query)
	p.forceQuery = false
	return p
}
