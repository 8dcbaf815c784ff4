package lower

import (
	"fmt"

	"tern/report"
)

// ErrorKind enumerates the name resolution failures lowering can report.
type ErrorKind uint8

const (
	// UndefinedVarOrFnc is a bare identifier that names neither a
	// variable in scope nor a function.
	UndefinedVarOrFnc ErrorKind = iota

	// UndefinedFnc is a call with arguments whose callee names no
	// function.
	UndefinedFnc

	// UndefinedTy is a type annotation naming no known type.
	UndefinedTy
)

// Error is an unresolved name.  Range covers the offending identifier
// token.
type Error struct {
	Kind  ErrorKind
	Name  string
	Range report.Span
}

func (e Error) Span() report.Span {
	return e.Range
}

func (e Error) Header(at report.LineColumn) string {
	switch e.Kind {
	case UndefinedVarOrFnc:
		return fmt.Sprintf(
			"undefined variable or zero-parameter function at %v: `%s` has not been defined", at, e.Name)
	case UndefinedFnc:
		return fmt.Sprintf("undefined function at %v: `%s` has not been defined", at, e.Name)
	}

	return fmt.Sprintf("undefined type at %v: `%s` has not been defined", at, e.Name)
}
