package typing

import (
	"testing"

	"tern/ast"
	"tern/hir"
	"tern/lexer"
	"tern/lower"
	"tern/report"
	"tern/syntax"
)

func inferRepl(t *testing.T, src string) (lower.Result, Result) {
	t.Helper()

	p := syntax.ParseReplLine(src, lexer.Lex(src))
	root, ok := ast.CastRoot(p.Tree, p.Tree.Root())
	if !ok {
		t.Fatalf("parse of %q did not produce a root", src)
	}

	low := lower.Lower(root)
	return low, Infer(&low.Program)
}

func tailTy(t *testing.T, low lower.Result, res Result) hir.Ty {
	t.Helper()

	if !low.Program.HasTail {
		t.Fatalf("expected the program to have a tail expression")
	}

	return res.ExprTys[low.Program.TailExpr]
}

func TestInferIntLiteral(t *testing.T) {
	low, res := inferRepl(t, "92")
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}

	if ty := tailTy(t, low, res); ty != hir.TyS32 {
		t.Fatalf("expected s32, got %v", ty)
	}
}

func TestInferStringLiteral(t *testing.T) {
	low, res := inferRepl(t, `"hello"`)
	if ty := tailTy(t, low, res); ty != hir.TyString {
		t.Fatalf("expected string, got %v", ty)
	}
}

func TestInferBinExpr(t *testing.T) {
	low, res := inferRepl(t, "10 * 5")
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}

	if ty := tailTy(t, low, res); ty != hir.TyS32 {
		t.Fatalf("expected s32, got %v", ty)
	}
}

func TestInferBinExprOperandMismatch(t *testing.T) {
	low, res := inferRepl(t, `10 - "x"`)

	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %+v", res.Errors)
	}

	e := res.Errors[0]
	if e.Kind != Mismatch || e.Expected != hir.TyS32 || e.Found != hir.TyString {
		t.Fatalf("unexpected error: %+v", e)
	}

	spanned := ResolveSpans(res.Errors, low.SourceMap)
	if len(spanned) != 1 || spanned[0].Range != report.NewSpan(5, 8) {
		t.Fatalf("expected the error to cover the string literal, got %+v", spanned)
	}
}

func TestInferLocalDef(t *testing.T) {
	low, res := inferRepl(t, `let a = "str"; a`)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}

	if ty := res.LocalTys[0]; ty != hir.TyString {
		t.Fatalf("expected the binding to be string, got %v", ty)
	}
	if ty := tailTy(t, low, res); ty != hir.TyString {
		t.Fatalf("expected the reference to be string, got %v", ty)
	}
}

func TestInferBlockWithTail(t *testing.T) {
	low, res := inferRepl(t, "{ 92 }")
	if ty := tailTy(t, low, res); ty != hir.TyS32 {
		t.Fatalf("expected s32, got %v", ty)
	}
}

func TestInferBlockWithoutTailIsUnit(t *testing.T) {
	low, res := inferRepl(t, "{ let x = 92; }")
	if ty := tailTy(t, low, res); ty != hir.TyUnit {
		t.Fatalf("expected unit, got %v", ty)
	}
}

func TestInferCall(t *testing.T) {
	low, res := inferRepl(t, "fnc one: s32 -> 1; one")
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}

	if ty := tailTy(t, low, res); ty != hir.TyS32 {
		t.Fatalf("expected s32, got %v", ty)
	}
}

func TestInferCallArgMismatch(t *testing.T) {
	_, res := inferRepl(t, `fnc id(x: s32): s32 -> x; id "str"`)

	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %+v", res.Errors)
	}

	e := res.Errors[0]
	if e.Kind != Mismatch || e.Expected != hir.TyS32 || e.Found != hir.TyString {
		t.Fatalf("unexpected error: %+v", e)
	}
}

func TestInferMismatchedArgCount(t *testing.T) {
	low, res := inferRepl(t, "fnc add(x: s32, y: s32): s32 -> x + y; add 1")

	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %+v", res.Errors)
	}

	e := res.Errors[0]
	if e.Kind != MismatchedArgCount || e.ExpectedCount != 2 || e.FoundCount != 1 {
		t.Fatalf("unexpected error: %+v", e)
	}

	// the call still has its declared type
	if ty := tailTy(t, low, res); ty != hir.TyS32 {
		t.Fatalf("expected s32, got %v", ty)
	}

	if spanned := ResolveSpans(res.Errors, low.SourceMap); len(spanned) != 1 {
		t.Fatalf("expected the error to resolve to a span, got %+v", spanned)
	}
}

func TestInferBodyAgainstDeclaredRetTy(t *testing.T) {
	_, res := inferRepl(t, `fnc f: s32 -> "x";`)

	if len(res.Errors) != 1 {
		t.Fatalf("expected one error, got %+v", res.Errors)
	}

	e := res.Errors[0]
	if e.Kind != Mismatch || e.Expected != hir.TyS32 || e.Found != hir.TyString {
		t.Fatalf("unexpected error: %+v", e)
	}
}

func TestInferUnknownPropagatesSilently(t *testing.T) {
	low, res := inferRepl(t, "foo + 1")

	// lowering already complained about foo; typing must not pile on
	if len(low.Errors) != 1 {
		t.Fatalf("expected one lower error, got %+v", low.Errors)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected typing errors: %+v", res.Errors)
	}

	if ty := tailTy(t, low, res); ty != hir.TyS32 {
		t.Fatalf("expected s32, got %v", ty)
	}
}
