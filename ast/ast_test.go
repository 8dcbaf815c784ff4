package ast

import (
	"testing"

	"tern/lexer"
	"tern/report"
	"tern/syntax"
	"tern/token"
)

func replRoot(t *testing.T, src string) Root {
	t.Helper()

	p := syntax.ParseReplLine(src, lexer.Lex(src))
	root, ok := CastRoot(p.Tree, p.Tree.Root())
	if !ok {
		t.Fatalf("parse of %q did not produce a root", src)
	}

	return root
}

func tailExpr(t *testing.T, root Root) Expr {
	t.Helper()

	e, ok := root.TailExpr()
	if !ok {
		t.Fatalf("expected a tail expression")
	}

	return e
}

func TestRootDefsAndStmts(t *testing.T) {
	root := replRoot(t, "let a = 1; fnc f -> 2; a")

	if defs := root.Defs(); len(defs) != 1 {
		t.Fatalf("expected one def, got %d", len(defs))
	}
	if stmts := root.Stmts(); len(stmts) != 1 {
		t.Fatalf("expected one stmt, got %d", len(stmts))
	}
	if _, ok := tailExpr(t, root).(FncCall); !ok {
		t.Fatalf("expected the tail to be a name reference")
	}
}

func TestLocalDefAccessors(t *testing.T) {
	root := replRoot(t, "let a = 10;")

	def, ok := root.Stmts()[0].(LocalDef)
	if !ok {
		t.Fatalf("expected a local def, got %T", root.Stmts()[0])
	}

	name, ok := def.Name()
	if !ok || name.Text() != "a" {
		t.Fatalf("expected the name a, got %q (ok: %v)", name.Text(), ok)
	}

	value, ok := def.Value()
	if !ok {
		t.Fatalf("expected a value")
	}

	lit, ok := value.(IntLiteral)
	if !ok {
		t.Fatalf("expected an int literal value, got %T", value)
	}

	tok, ok := lit.Value()
	if !ok || tok.Text() != "10" {
		t.Fatalf("expected the literal token 10, got %q (ok: %v)", tok.Text(), ok)
	}
	if tok.Span() != report.NewSpan(8, 10) {
		t.Fatalf("unexpected token span %+v", tok.Span())
	}
}

func TestFncDefAccessors(t *testing.T) {
	root := replRoot(t, "fnc add(x: s32, y: s32): s32 -> x + y;")

	def, ok := root.Defs()[0].(FncDef)
	if !ok {
		t.Fatalf("expected a fnc def, got %T", root.Defs()[0])
	}

	name, ok := def.Name()
	if !ok || name.Text() != "add" {
		t.Fatalf("expected the name add, got %q (ok: %v)", name.Text(), ok)
	}

	paramList, ok := def.ParamList()
	if !ok {
		t.Fatalf("expected a param list")
	}

	params := paramList.Params()
	if len(params) != 2 {
		t.Fatalf("expected two params, got %d", len(params))
	}

	for i, wantName := range []string{"x", "y"} {
		name, ok := params[i].Name()
		if !ok || name.Text() != wantName {
			t.Fatalf("param %d: expected name %q, got %q (ok: %v)", i, wantName, name.Text(), ok)
		}

		ty, ok := params[i].Ty()
		if !ok {
			t.Fatalf("param %d: expected a type annotation", i)
		}
		if tyName, ok := ty.Name(); !ok || tyName.Text() != "s32" {
			t.Fatalf("param %d: expected type s32, got %q (ok: %v)", i, tyName.Text(), ok)
		}
	}

	retTy, ok := def.RetTy()
	if !ok {
		t.Fatalf("expected a return type")
	}
	ty, ok := retTy.Ty()
	if !ok {
		t.Fatalf("expected a type in the return annotation")
	}
	if tyName, ok := ty.Name(); !ok || tyName.Text() != "s32" {
		t.Fatalf("expected return type s32, got %q (ok: %v)", tyName.Text(), ok)
	}

	body, ok := def.Body()
	if !ok {
		t.Fatalf("expected a body")
	}
	if _, ok := body.(BinExpr); !ok {
		t.Fatalf("expected a binary body, got %T", body)
	}
}

func TestFncDefWithoutParamsOrRetTy(t *testing.T) {
	root := replRoot(t, "fnc nop -> {};")

	def := root.Defs()[0].(FncDef)
	if _, ok := def.ParamList(); ok {
		t.Fatalf("expected no param list")
	}
	if _, ok := def.RetTy(); ok {
		t.Fatalf("expected no return type")
	}
}

func TestBinExprAccessors(t *testing.T) {
	root := replRoot(t, "1 + 2")

	bin, ok := tailExpr(t, root).(BinExpr)
	if !ok {
		t.Fatalf("expected a binary expression")
	}

	lhs, ok := bin.Lhs()
	if !ok {
		t.Fatalf("expected a lhs")
	}
	if lit := lhs.(IntLiteral); lit.Span().Start != 0 {
		t.Fatalf("unexpected lhs span %+v", lit.Span())
	}

	rhs, ok := bin.Rhs()
	if !ok {
		t.Fatalf("expected a rhs")
	}
	if tok, ok := rhs.(IntLiteral).Value(); !ok || tok.Text() != "2" {
		t.Fatalf("expected the rhs literal 2, got %q (ok: %v)", tok.Text(), ok)
	}

	op, ok := bin.Op()
	if !ok || op.Kind() != token.Plus {
		t.Fatalf("expected a plus operator, got %v (ok: %v)", op.Kind(), ok)
	}
}

func TestBinExprMissingRhs(t *testing.T) {
	root := replRoot(t, "1 +")

	bin, ok := tailExpr(t, root).(BinExpr)
	if !ok {
		t.Fatalf("expected a binary expression")
	}

	if _, ok := bin.Lhs(); !ok {
		t.Fatalf("expected a lhs")
	}
	if _, ok := bin.Rhs(); ok {
		t.Fatalf("expected the rhs to be absent")
	}
	if op, ok := bin.Op(); !ok || op.Kind() != token.Plus {
		t.Fatalf("expected the operator to survive")
	}
}

func TestFncCallBareName(t *testing.T) {
	root := replRoot(t, "add")

	call := tailExpr(t, root).(FncCall)
	if name, ok := call.Name(); !ok || name.Text() != "add" {
		t.Fatalf("expected the name add")
	}
	if _, ok := call.ArgList(); ok {
		t.Fatalf("expected no arg list")
	}
}

func TestFncCallArgs(t *testing.T) {
	root := replRoot(t, "add 1, 2 * 3")

	call := tailExpr(t, root).(FncCall)
	argList, ok := call.ArgList()
	if !ok {
		t.Fatalf("expected an arg list")
	}

	args := argList.Args()
	if len(args) != 2 {
		t.Fatalf("expected two args, got %d", len(args))
	}

	first, ok := args[0].Value()
	if !ok {
		t.Fatalf("expected a first arg value")
	}
	if _, ok := first.(IntLiteral); !ok {
		t.Fatalf("expected an int literal, got %T", first)
	}

	second, ok := args[1].Value()
	if !ok {
		t.Fatalf("expected a second arg value")
	}
	if _, ok := second.(BinExpr); !ok {
		t.Fatalf("expected a binary expression, got %T", second)
	}
}

func TestBlockAccessors(t *testing.T) {
	root := replRoot(t, "{ let a = 1; a }")

	block := tailExpr(t, root).(Block)
	if stmts := block.Stmts(); len(stmts) != 1 {
		t.Fatalf("expected one stmt, got %d", len(stmts))
	}
	if tail, ok := block.TailExpr(); !ok {
		t.Fatalf("expected a tail")
	} else if _, isCall := tail.(FncCall); !isCall {
		t.Fatalf("expected the tail to be a name reference, got %T", tail)
	}
}

func TestParenExprInner(t *testing.T) {
	root := replRoot(t, "(92)")

	paren := tailExpr(t, root).(ParenExpr)
	inner, ok := paren.Inner()
	if !ok {
		t.Fatalf("expected an inner expression")
	}
	if _, ok := inner.(IntLiteral); !ok {
		t.Fatalf("expected an int literal, got %T", inner)
	}
}

func TestStringLiteralValueKeepsQuotes(t *testing.T) {
	root := replRoot(t, `"hi"`)

	lit := tailExpr(t, root).(StringLiteral)
	tok, ok := lit.Value()
	if !ok || tok.Text() != `"hi"` {
		t.Fatalf("expected the raw token with quotes, got %q (ok: %v)", tok.Text(), ok)
	}
}

func TestExprStmtAccessor(t *testing.T) {
	root := replRoot(t, "92;")

	stmt, ok := root.Stmts()[0].(ExprStmt)
	if !ok {
		t.Fatalf("expected an expr stmt, got %T", root.Stmts()[0])
	}

	e, ok := stmt.Expr()
	if !ok {
		t.Fatalf("expected an expression")
	}
	if _, ok := e.(IntLiteral); !ok {
		t.Fatalf("expected an int literal, got %T", e)
	}
}
