package textclean

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	htmlEntity   = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	documentMark = regexp.MustCompile(`(?i)<(?:!doctype\s+html|html[\s>]|body[\s>])`)
)

// stripHTML removes markup from s. Full documents are reduced to their
// visible text. Fragments keep their text runs byte for byte, minus
// character references, so query strings like "&copy=2" survive.
func stripHTML(s string) string {
	if documentMark.MatchString(s) {
		if text, ok := documentText(s); ok {
			return text
		}
	}
	return htmlEntity.ReplaceAllString(fragmentText(s), "")
}

func documentText(s string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", false
	}
	doc.Find("script, style, noscript, template").Remove()
	return doc.Text(), true
}

// fragmentText drops every tag, comment and doctype token and keeps the
// raw bytes of text tokens.
func fragmentText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String()
			}
			// the tokenizer only fails on reader errors
			return s
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}
