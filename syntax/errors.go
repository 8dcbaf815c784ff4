package syntax

import (
	"fmt"
	"strings"

	"tern/report"
	"tern/token"
)

// ExpectedSyntax describes what the parser was looking for when it hit a
// syntax error: either a named construct ("expression") or the token
// kinds it would have accepted.
type ExpectedSyntax struct {
	Name  string
	Kinds []token.Kind
}

func (es ExpectedSyntax) describe() string {
	if es.Name != "" {
		return es.Name
	}

	labels := make([]string, len(es.Kinds))
	for i, k := range es.Kinds {
		labels[i] = k.Label()
	}

	switch len(labels) {
	case 0:
		return "nothing"
	case 1:
		return labels[0]
	}

	return strings.Join(labels[:len(labels)-1], ", ") + " or " + labels[len(labels)-1]
}

// SyntaxError is a parse error.  A missing error points at the offset
// where syntax should have been inserted and consumes nothing; an
// unexpected error covers a real token that could not be parsed.
type SyntaxError struct {
	Expected ExpectedSyntax

	Missing bool

	// Offset is the end of the last consumed token; only set for missing
	// errors.
	Offset uint32

	// Found and Range describe the offending token; only set for
	// unexpected errors.
	Found token.Kind
	Range report.Span
}

func (e SyntaxError) Span() report.Span {
	if e.Missing {
		return report.NewSpan(e.Offset, e.Offset+1)
	}

	return e.Range
}

func (e SyntaxError) Header(at report.LineColumn) string {
	if e.Missing {
		return fmt.Sprintf("syntax error at %v: missing %s", at, e.Expected.describe())
	}

	return fmt.Sprintf(
		"syntax error at %v: expected %s but found %s",
		at, e.Expected.describe(), e.Found.Label(),
	)
}
