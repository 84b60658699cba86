package urlutil

import "strings"

// Parse decomposes an absolute http or https URL without decoding or
// reordering any part of it.
//
// The decomposition follows these rules:
//   - The scheme is everything before "://" and must be http or https (any case)
//   - The authority runs up to the first '/', '?' or '#'
//   - The fragment is everything after the first '#'
//   - The query is everything between the first '?' and the fragment
//   - Query pairs split on '&', then on the first '='
//
// Properties:
//   - Lossless: Parse(raw).String() == raw for every accepted raw
//   - Pure: no state, no memory
func Parse(raw string) (ParsedURL, error) {
	sep := strings.Index(raw, "://")
	if sep <= 0 {
		return ParsedURL{}, &ParseError{
			Message: raw,
			Cause:   ErrCauseMissingScheme,
		}
	}

	scheme := raw[:sep]
	switch lowerASCII(scheme) {
	case "http", "https":
	default:
		return ParsedURL{}, &ParseError{
			Message: scheme,
			Cause:   ErrCauseUnsupportedScheme,
		}
	}

	rest := raw[sep+3:]
	parsed := ParsedURL{scheme: scheme}

	if hash := strings.IndexByte(rest, '#'); hash != -1 {
		parsed.fragment = rest[hash+1:]
		parsed.hasFragment = true
		rest = rest[:hash]
	}

	if question := strings.IndexByte(rest, '?'); question != -1 {
		rawQuery := rest[question+1:]
		parsed.query = splitQuery(rawQuery)
		parsed.forceQuery = rawQuery == ""
		rest = rest[:question]
	}

	authority, rawPath := rest, ""
	if slash := strings.IndexByte(rest, '/'); slash != -1 {
		authority, rawPath = rest[:slash], rest[slash:]
	}
	if authority == "" {
		return ParsedURL{}, &ParseError{
			Message: raw,
			Cause:   ErrCauseEmptyHost,
		}
	}
	parsed.authority = authority
	parsed.rooted, parsed.segments, parsed.trailingSlash = splitPath(rawPath)

	return parsed, nil
}

// String reassembles the URL. The query separator is omitted when no
// parameters remain, unless the source itself ended in a bare '?'.
func (p ParsedURL) String() string {
	var b strings.Builder
	b.WriteString(p.scheme)
	b.WriteString("://")
	b.WriteString(p.authority)
	b.WriteString(p.Path())
	if len(p.query) > 0 || p.forceQuery {
		b.WriteByte('?')
		b.WriteString(p.RawQuery())
	}
	if p.hasFragment {
		b.WriteByte('#')
		b.WriteString(p.fragment)
	}
	return b.String()
}

// splitPath breaks a raw path into segments. "" has no root, "/" is a root
// with no segments, and a single trailing '/' is kept as a flag.
func splitPath(rawPath string) (rooted bool, segments []string, trailingSlash bool) {
	if rawPath == "" {
		return false, nil, false
	}
	rest := rawPath[1:]
	if strings.HasSuffix(rest, "/") {
		trailingSlash = true
		rest = rest[:len(rest)-1]
	}
	if rest == "" && !trailingSlash {
		return true, nil, false
	}
	if rest == "" {
		// "//"
		return true, nil, true
	}
	return true, strings.Split(rest, "/"), trailingSlash
}

// splitQuery breaks a raw query into ordered pairs. An empty query yields
// no pairs.
func splitQuery(rawQuery string) []QueryParam {
	if rawQuery == "" {
		return nil
	}
	pairs := strings.Split(rawQuery, "&")
	query := make([]QueryParam, 0, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			query = append(query, NewBareQueryParam(key))
			continue
		}
		query = append(query, NewQueryParam(key, value))
	}
	return query
}

// lowerASCII converts ASCII characters to lowercase without allocating.
// This is faster than strings.ToLower for ASCII-only strings.
func lowerASCII(s string) string {
	var needsLower bool
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsLower = true
			break
		}
	}
	if !needsLower {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// LowerASCII is the exported form of lowerASCII for rule matching.
func LowerASCII(s string) string {
	return lowerASCII(s)
}
