package cmd

import (
	"tern/ast"
	"tern/lexer"
	"tern/lower"
	"tern/report"
	"tern/syntax"
	"tern/typing"
)

// AnalyzedUnit is the result of running the full analysis pipeline over
// one source file or REPL line.
type AnalyzedUnit struct {
	Text   string
	Tree   *syntax.Tree
	Root   ast.Root
	Lower  lower.Result
	Typing typing.Result

	// Diagnostics collects every error the pipeline found, in phase
	// order: parse, validation, lowering, typing.
	Diagnostics []report.Diagnostic
}

// AnalyzeSourceFile runs the pipeline over a whole source file.
func AnalyzeSourceFile(text string) *AnalyzedUnit {
	return analyze(text, false, lower.NewScope())
}

// AnalyzeReplLine runs the pipeline over one REPL line on top of the
// lowered state of the lines before it.
func AnalyzeReplLine(text string, scope lower.Scope) *AnalyzedUnit {
	return analyze(text, true, scope)
}

func analyze(text string, repl bool, scope lower.Scope) *AnalyzedUnit {
	tokens := lexer.Lex(text)

	var parse syntax.Parse
	if repl {
		parse = syntax.ParseReplLine(text, tokens)
	} else {
		parse = syntax.ParseSourceFile(text, tokens)
	}

	unit := &AnalyzedUnit{Text: text, Tree: parse.Tree}
	for _, e := range parse.Errors {
		unit.Diagnostics = append(unit.Diagnostics, e)
	}

	// the parser always produces a root, whatever the input
	unit.Root, _ = ast.CastRoot(parse.Tree, parse.Tree.Root())

	for _, e := range ast.Validate(unit.Root) {
		unit.Diagnostics = append(unit.Diagnostics, e)
	}

	unit.Lower = lower.LowerInScope(unit.Root, scope)
	for _, e := range unit.Lower.Errors {
		unit.Diagnostics = append(unit.Diagnostics, e)
	}

	unit.Typing = typing.Infer(&unit.Lower.Program)
	for _, e := range typing.ResolveSpans(unit.Typing.Errors, unit.Lower.SourceMap) {
		unit.Diagnostics = append(unit.Diagnostics, e)
	}

	return unit
}

// Clean reports whether the unit analyzed without a single error.
func (u *AnalyzedUnit) Clean() bool {
	return len(u.Diagnostics) == 0
}

// Scope returns the lowered state to thread into the next REPL line.
func (u *AnalyzedUnit) Scope() lower.Scope {
	return lower.Scope{
		Program:  u.Lower.Program,
		FncNames: u.Lower.FncNames,
		VarNames: u.Lower.VarNames,
	}
}

// Report sends every collected diagnostic to the reporter.
func (u *AnalyzedUnit) Report() {
	for _, d := range u.Diagnostics {
		report.ReportDiagnostic(u.Text, d)
	}
}
