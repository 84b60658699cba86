package extractor_test

import (
	"testing"

	"github.com/rohmanhakim/linkscrub/internal/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raws(spans []extractor.Span) []string {
	out := make([]string, 0, len(spans))
	for _, span := range spans {
		out = append(out, span.Raw())
	}
	return out
}

func TestFindURLs_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "no url",
			text:     "nothing to see here, just www.example.com and ftp://files",
			expected: []string{},
		},
		{
			name:     "empty",
			text:     "",
			expected: []string{},
		},
		{
			name:     "whole text",
			text:     "https://youtu.be/dQw4w9WgXcQ?si=ABC123tracking",
			expected: []string{"https://youtu.be/dQw4w9WgXcQ?si=ABC123tracking"},
		},
		{
			name:     "sentence period",
			text:     "Read https://example.com/a?b=1.",
			expected: []string{"https://example.com/a?b=1"},
		},
		{
			name:     "inner period kept",
			text:     "see https://example.com/v1.2/file.tar.gz now",
			expected: []string{"https://example.com/v1.2/file.tar.gz"},
		},
		{
			name:     "stacked punctuation",
			text:     "Wow https://example.com/!?!",
			expected: []string{"https://example.com/"},
		},
		{
			name:     "wrapped in parentheses",
			text:     "(see https://example.com/page)",
			expected: []string{"https://example.com/page"},
		},
		{
			name:     "balanced parentheses kept",
			text:     "https://en.wikipedia.org/wiki/Go_(programming_language) is nice",
			expected: []string{"https://en.wikipedia.org/wiki/Go_(programming_language)"},
		},
		{
			name:     "balanced then wrapped",
			text:     "(https://en.wikipedia.org/wiki/Go_(programming_language)).",
			expected: []string{"https://en.wikipedia.org/wiki/Go_(programming_language)"},
		},
		{
			name:     "markdown link",
			text:     "[video](https://youtu.be/x?si=1)",
			expected: []string{"https://youtu.be/x?si=1"},
		},
		{
			name:     "angle brackets",
			text:     "<https://example.com/a>",
			expected: []string{"https://example.com/a"},
		},
		{
			name:     "quoted",
			text:     `href="https://example.com/a?b=c"`,
			expected: []string{"https://example.com/a?b=c"},
		},
		{
			name:     "single quotes trimmed at end",
			text:     "'https://example.com/a'",
			expected: []string{"https://example.com/a"},
		},
		{
			name:     "comma separated",
			text:     "https://a.example/1,https://b.example/2, https://c.example/3",
			expected: []string{"https://a.example/1,https://b.example/2", "https://c.example/3"},
		},
		{
			name:     "uppercase scheme",
			text:     "HTTP://EXAMPLE.COM/X",
			expected: []string{"HTTP://EXAMPLE.COM/X"},
		},
		{
			name:     "bare scheme ignored",
			text:     "the prefix https:// alone",
			expected: []string{},
		},
		{
			name:     "scheme followed by punctuation only",
			text:     "https://... then http://x.example",
			expected: []string{"http://x.example"},
		},
		{
			name:     "non breaking space ends url",
			text:     "https://example.com/a\u00a0next",
			expected: []string{"https://example.com/a"},
		},
		{
			name:     "zero width space ends url",
			text:     "https://example.com/a\u200b?utm_source=x",
			expected: []string{"https://example.com/a"},
		},
		{
			name:     "unicode path kept",
			text:     "https://example.com/café?q=✓ ok",
			expected: []string{"https://example.com/café?q=✓"},
		},
		{
			name:     "multiline",
			text:     "one https://a.example/x\ntwo\thttps://b.example/y\r\n",
			expected: []string{"https://a.example/x", "https://b.example/y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, raws(extractor.FindURLs(tt.text)))
		})
	}
}

func TestFindURLs_OffsetsSliceText(t *testing.T) {
	text := "Check out this video: https://youtu.be/dQw4w9WgXcQ?si=tracking123\n" +
		"And this product: https://www.amazon.com/product/B08N5WRWNW/ref=sr_1_1?crid=ABC"

	spans := extractor.FindURLs(text)
	require.Len(t, spans, 2)

	previousEnd := 0
	for _, span := range spans {
		assert.GreaterOrEqual(t, span.Start(), previousEnd)
		assert.Less(t, span.Start(), span.End())
		assert.Equal(t, text[span.Start():span.End()], span.Raw())
		previousEnd = span.End()
	}
	assert.Equal(t, 22, spans[0].Start())
}
