package typing

import (
	"fmt"

	"tern/hir"
	"tern/lower"
	"tern/report"
)

// ErrorKind enumerates the checks inference performs.
type ErrorKind uint8

const (
	// Mismatch is an expression whose type differs from what its
	// position requires.
	Mismatch ErrorKind = iota

	// MismatchedArgCount is a call with the wrong number of arguments.
	MismatchedArgCount
)

// Error is a type error keyed by the offending expression.  It carries
// no span of its own; ResolveSpans attaches one via the source map.
type Error struct {
	Expr hir.ExprId
	Kind ErrorKind

	// set for Mismatch
	Expected hir.Ty
	Found    hir.Ty

	// set for MismatchedArgCount
	ExpectedCount int
	FoundCount    int
}

// SpannedError is an Error located in the source text.
type SpannedError struct {
	Error
	Range report.Span
}

func (e SpannedError) Span() report.Span {
	return e.Range
}

func (e SpannedError) Header(at report.LineColumn) string {
	if e.Kind == MismatchedArgCount {
		return fmt.Sprintf("mismatched argument count at %v: expected %d but found %d",
			at, e.ExpectedCount, e.FoundCount)
	}

	return fmt.Sprintf("type mismatch at %v: expected %v but found %v", at, e.Expected, e.Found)
}

// ResolveSpans locates each error at the source of the expression it is
// keyed to.  Errors are only ever keyed to expressions lowered from real
// source, so every one of them has a source map entry.
func ResolveSpans(errors []Error, sm lower.SourceMap) []SpannedError {
	var spanned []SpannedError
	for _, e := range errors {
		src, ok := sm.ExprMap[e.Expr]
		if !ok {
			continue
		}

		spanned = append(spanned, SpannedError{Error: e, Range: src.Span()})
	}

	return spanned
}
