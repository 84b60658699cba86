package extractor

// Span locates one URL inside a text. Start and End are byte offsets,
// End exclusive, so text[Start():End()] == Raw().
type Span struct {
	start int
	end   int
	raw   string
}

func NewSpan(start, end int, raw string) Span {
	return Span{
		start: start,
		end:   end,
		raw:   raw,
	}
}

func (s Span) Start() int {
	return s.start
}

func (s Span) End() int {
	return s.end
}

func (s Span) Raw() string {
	return s.raw
}
