package eval

import (
	"errors"
	"testing"

	"tern/ast"
	"tern/lexer"
	"tern/lower"
	"tern/syntax"
)

func lowerLine(t *testing.T, src string, scope lower.Scope) lower.Result {
	t.Helper()

	p := syntax.ParseReplLine(src, lexer.Lex(src))
	if len(p.Errors) != 0 {
		t.Fatalf("unexpected parse errors in %q: %v", src, p.Errors)
	}

	root, ok := ast.CastRoot(p.Tree, p.Tree.Root())
	if !ok {
		t.Fatalf("parse of %q did not produce a root", src)
	}

	res := lower.LowerInScope(root, scope)
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected lower errors in %q: %+v", src, res.Errors)
	}

	return res
}

func evalLine(t *testing.T, src string) Value {
	t.Helper()

	res := lowerLine(t, src, lower.NewScope())

	v, err := NewEvaluator().Eval(&res.Program)
	if err != nil {
		t.Fatalf("unexpected evaluation error in %q: %v", src, err)
	}

	return v
}

func TestEvalIntLiteral(t *testing.T) {
	if v := evalLine(t, "92"); v != IntValue(92) {
		t.Fatalf("expected 92, got %v", v)
	}
}

func TestEvalStringLiteral(t *testing.T) {
	if v := evalLine(t, `"hello"`); v != StrValue("hello") {
		t.Fatalf("expected \"hello\", got %v", v)
	}
}

func TestEvalArithmetic(t *testing.T) {
	if v := evalLine(t, "10 + 5 * 2"); v != IntValue(20) {
		t.Fatalf("expected 20, got %v", v)
	}
}

func TestEvalParens(t *testing.T) {
	if v := evalLine(t, "(10 + 5) * 2"); v != IntValue(30) {
		t.Fatalf("expected 30, got %v", v)
	}
}

func TestEvalWrappingAdd(t *testing.T) {
	if v := evalLine(t, "2147483647 + 1"); v != IntValue(-2147483648) {
		t.Fatalf("expected wraparound, got %v", v)
	}
}

func TestEvalDivideByZero(t *testing.T) {
	res := lowerLine(t, "1 / 0", lower.NewScope())

	_, err := NewEvaluator().Eval(&res.Program)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("expected a division by zero error, got %v", err)
	}
}

func TestEvalLocalDef(t *testing.T) {
	if v := evalLine(t, "let a = 10; a + 1"); v != IntValue(11) {
		t.Fatalf("expected 11, got %v", v)
	}
}

func TestEvalLocalDefAloneIsUnit(t *testing.T) {
	if v := evalLine(t, "let a = 10;"); v != UnitValue() {
		t.Fatalf("expected unit, got %v", v)
	}
}

func TestEvalBlock(t *testing.T) {
	if v := evalLine(t, "{ let x = 2; x * 3 }"); v != IntValue(6) {
		t.Fatalf("expected 6, got %v", v)
	}
}

func TestEvalCall(t *testing.T) {
	if v := evalLine(t, "fnc add(x: s32, y: s32): s32 -> x + y; add 2, 5"); v != IntValue(7) {
		t.Fatalf("expected 7, got %v", v)
	}
}

func TestEvalNestedCallsRebindParams(t *testing.T) {
	if v := evalLine(t, "fnc dbl(x: s32): s32 -> x + x; dbl dbl 3"); v != IntValue(12) {
		t.Fatalf("expected 12, got %v", v)
	}
}

func TestEvalStatePersistsAcrossLines(t *testing.T) {
	first := lowerLine(t, "let a = 10;", lower.NewScope())

	ev := NewEvaluator()
	if _, err := ev.Eval(&first.Program); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := lowerLine(t, "a * 2", lower.Scope{
		Program:  first.Program,
		FncNames: first.FncNames,
		VarNames: first.VarNames,
	})

	v, err := ev.Eval(&second.Program)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != IntValue(20) {
		t.Fatalf("expected 20, got %v", v)
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{IntValue(92), "92"},
		{IntValue(-3), "-3"},
		{StrValue("hi"), `"hi"`},
		{UnitValue(), "unit"},
	}

	for _, c := range cases {
		if got := c.value.String(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}
