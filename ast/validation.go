package ast

import (
	"fmt"
	"strconv"

	"tern/report"
)

// ValidationErrorKind enumerates the structural checks that run after
// parsing.
type ValidationErrorKind uint8

const (
	// IntLiteralTooBig is reported for integer literals that do not fit
	// in an unsigned 32-bit integer.
	IntLiteralTooBig ValidationErrorKind = iota
)

// ValidationError is a structural error in an otherwise well-formed
// syntax tree.
type ValidationError struct {
	Kind  ValidationErrorKind
	Range report.Span
}

func (e ValidationError) Span() report.Span {
	return e.Range
}

func (e ValidationError) Header(at report.LineColumn) string {
	return fmt.Sprintf("syntax error at %v: integer literal too large", at)
}

// Validate scans the tree under the root for structural errors the
// grammar itself cannot catch.  The span of an integer error covers
// exactly the literal token.
func Validate(root Root) []ValidationError {
	var errors []ValidationError

	tree := root.tree
	it := root.node.Descendants(tree)
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		e, isExpr := CastExpr(tree, n)
		if !isExpr {
			continue
		}

		lit, isLit := e.(IntLiteral)
		if !isLit {
			continue
		}

		value, hasValue := lit.Value()
		if !hasValue {
			continue
		}

		if _, err := strconv.ParseUint(value.Text(), 10, 32); err != nil {
			errors = append(errors, ValidationError{
				Kind:  IntLiteralTooBig,
				Range: value.Span(),
			})
		}
	}

	return errors
}
