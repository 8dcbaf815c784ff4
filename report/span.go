package report

import "fmt"

// Span is a half-open [Start, End) byte range into some source text.
// Spans produced by the lexer and parser always index into the exact
// input string the diagnostic is rendered against.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan creates a new span over the given byte range.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// SpanOver creates a new span that spans from the start of `start` to the
// end of `end`.
func SpanOver(start, end Span) Span {
	return Span{Start: start.Start, End: end.End}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// LineColumn is a zero-based line and column position in some source text.
// It displays one-based, which is what editors and users expect.
type LineColumn struct {
	Line int
	Col  int
}

func (lc LineColumn) String() string {
	return fmt.Sprintf("%d:%d", lc.Line+1, lc.Col+1)
}

// PositionOf converts a byte offset into a line/column position.  Columns
// are measured in bytes from the most recent newline.
func PositionOf(input string, offset uint32) LineColumn {
	limit := int(offset)
	if limit > len(input) {
		limit = len(input)
	}

	line, lineStart := 0, 0
	for i := 0; i < limit; i++ {
		if input[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return LineColumn{Line: line, Col: int(offset) - lineStart}
}
