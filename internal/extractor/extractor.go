package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

/*
Boundary Rules
- A URL starts at an http:// or https:// token (any case)
- It runs until white space, a control or format character (zero-width
  space, BOM) or a character that cannot appear unescaped in a URL:
  < > " { } | \ ^ ` [ ]
- Trailing sentence punctuation is not part of the URL
- A trailing ')' belongs to the URL only while it closes a '(' inside it

Matches are leftmost-first and never overlap.
*/

var schemeToken = regexp.MustCompile(`(?i)https?://`)

// trailingPunctuation is trimmed from the end of a candidate.
const trailingPunctuation = ".,;:!?'*"

// FindURLs returns the URL spans of text in order of appearance.
func FindURLs(text string) []Span {
	var spans []Span
	offset := 0
	for offset < len(text) {
		loc := schemeToken.FindStringIndex(text[offset:])
		if loc == nil {
			break
		}
		start := offset + loc[0]
		schemeEnd := offset + loc[1]
		end := trimTrailing(text, start, scanEnd(text, schemeEnd))
		if end > schemeEnd {
			spans = append(spans, NewSpan(start, end, text[start:end]))
			offset = end
			continue
		}
		offset = schemeEnd
	}
	return spans
}

// scanEnd returns the offset of the first boundary rune at or after from.
func scanEnd(text string, from int) int {
	end := from
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if isBoundary(r) {
			break
		}
		end += size
	}
	return end
}

func isBoundary(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
		return true
	}
	switch r {
	case '<', '>', '"', '{', '}', '|', '\\', '^', '`', '[', ']', utf8.RuneError:
		return true
	}
	return false
}

// trimTrailing drops trailing punctuation and unbalanced closing
// parentheses from text[start:end].
func trimTrailing(text string, start, end int) int {
	for end > start {
		last := text[end-1]
		switch {
		case strings.IndexByte(trailingPunctuation, last) != -1:
			end--
		case last == ')' && strings.Count(text[start:end], ")") > strings.Count(text[start:end], "("):
			end--
		default:
			return end
		}
	}
	return end
}
