package report

import "strings"

// Diagnostic is any user-facing compiler error: each phase (parsing,
// validation, lowering, type checking) produces its own error values, and
// all of them render the same way against the source text.
type Diagnostic interface {
	// Span returns the byte range of the offending source text.
	Span() Span

	// Header returns the one-line summary of the diagnostic, given the
	// position of the start of its span.
	Header(at LineColumn) string
}

// Render produces the lines used to display a diagnostic: the header
// followed by a snippet of the offending source with the span underlined.
func Render(input string, d Diagnostic) []string {
	span := d.Span()

	start := PositionOf(input, span.Start)

	// spans are end-exclusive; back up one byte so the end position names
	// the last character the span actually covers
	end := start
	if span.End > span.Start {
		end = PositionOf(input, span.End-1)
	}

	lines := []string{d.Header(start)}
	appendSnippet(&lines, input, start, end, span)
	return lines
}

const snippetPadding = "  "

func appendSnippet(lines *[]string, input string, start, end LineColumn, span Span) {
	fileLines := strings.Split(input, "\n")

	if start.Line == end.Line {
		carets := int(span.Len())
		if carets == 0 {
			carets = 1
		}

		*lines = append(*lines, snippetPadding+fileLines[start.Line])
		*lines = append(*lines,
			snippetPadding+strings.Repeat(" ", start.Col)+strings.Repeat("^", carets))
		return
	}

	// for a multi-line span, point down at where it opens and up at where
	// it closes, printing every covered line in between
	firstLine := fileLines[start.Line]
	*lines = append(*lines,
		snippetPadding+strings.Repeat(" ", start.Col)+strings.Repeat("v", len(firstLine)-start.Col))
	*lines = append(*lines, snippetPadding+firstLine)

	for _, line := range fileLines[start.Line+1 : end.Line] {
		*lines = append(*lines, snippetPadding+line)
	}

	lastLine := fileLines[end.Line]
	*lines = append(*lines, snippetPadding+lastLine)
	*lines = append(*lines, snippetPadding+strings.Repeat("^", end.Col+1))
}
