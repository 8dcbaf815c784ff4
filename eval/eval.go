// Package eval walks a lowered program and computes its value.  Only
// programs that lowered and typed cleanly are evaluated, so the walker
// assumes resolved names and matching arities throughout.
package eval

import (
	"errors"

	"tern/hir"
)

// ErrDivideByZero is returned when an integer division has a zero
// divisor.
var ErrDivideByZero = errors.New("division by zero")

// Evaluator holds evaluation state.  It persists across Eval calls: a
// REPL keeps one evaluator alive so bindings from earlier lines stay
// usable.
type Evaluator struct {
	locals map[hir.LocalDefId]Value
	params map[hir.ParamId]Value
}

// NewEvaluator creates an evaluator with no bindings.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		locals: make(map[hir.LocalDefId]Value),
		params: make(map[hir.ParamId]Value),
	}
}

// Eval runs the program's statements and returns the value of its tail
// expression, or unit if it has none.  Function definitions contribute
// nothing until they are called.
func (ev *Evaluator) Eval(prog *hir.Program) (Value, error) {
	for _, s := range prog.Stmts {
		if err := ev.evalStmt(prog, s); err != nil {
			return Value{}, err
		}
	}

	if !prog.HasTail {
		return UnitValue(), nil
	}

	return ev.evalExpr(prog, prog.TailExpr)
}

func (ev *Evaluator) evalStmt(prog *hir.Program, s hir.Stmt) error {
	switch s.Kind {
	case hir.StmtLocalDef:
		v, err := ev.evalExpr(prog, prog.Local(s.LocalDef).Value)
		if err != nil {
			return err
		}

		ev.locals[s.LocalDef] = v
		return nil
	case hir.StmtExpr:
		_, err := ev.evalExpr(prog, s.Expr)
		return err
	}

	return nil
}

func (ev *Evaluator) evalExpr(prog *hir.Program, id hir.ExprId) (Value, error) {
	switch e := prog.Expr(id).(type) {
	case hir.IntLiteral:
		return IntValue(int32(e.Value)), nil
	case hir.StringLiteral:
		return StrValue(e.Value), nil
	case hir.BinExpr:
		return ev.evalBinExpr(prog, e)
	case hir.BlockExpr:
		return ev.evalBlock(prog, e)
	case hir.VarRef:
		return ev.evalVarRef(e), nil
	case hir.FncCall:
		return ev.evalFncCall(prog, e)
	}

	return UnitValue(), nil
}

func (ev *Evaluator) evalBinExpr(prog *hir.Program, e hir.BinExpr) (Value, error) {
	lhs, err := ev.evalExpr(prog, e.Lhs)
	if err != nil {
		return Value{}, err
	}

	rhs, err := ev.evalExpr(prog, e.Rhs)
	if err != nil {
		return Value{}, err
	}

	switch e.Op {
	case hir.OpAdd:
		return IntValue(lhs.Int + rhs.Int), nil
	case hir.OpSub:
		return IntValue(lhs.Int - rhs.Int), nil
	case hir.OpMul:
		return IntValue(lhs.Int * rhs.Int), nil
	case hir.OpDiv:
		if rhs.Int == 0 {
			return Value{}, ErrDivideByZero
		}

		return IntValue(lhs.Int / rhs.Int), nil
	}

	return UnitValue(), nil
}

func (ev *Evaluator) evalBlock(prog *hir.Program, e hir.BlockExpr) (Value, error) {
	for _, s := range e.Stmts {
		if err := ev.evalStmt(prog, s); err != nil {
			return Value{}, err
		}
	}

	if !e.HasTail {
		return UnitValue(), nil
	}

	return ev.evalExpr(prog, e.TailExpr)
}

func (ev *Evaluator) evalVarRef(e hir.VarRef) Value {
	if e.Def.Kind == hir.VarDefParam {
		return ev.params[e.Def.Param]
	}

	return ev.locals[e.Def.Local]
}

// evalFncCall binds arguments over the callee's parameter slots, runs
// the body, and restores the previous slot values.  The save and restore
// is what makes nested and recursive calls see their own arguments.
func (ev *Evaluator) evalFncCall(prog *hir.Program, e hir.FncCall) (Value, error) {
	def := prog.Fnc(e.Def)

	// all arguments evaluate in the caller's environment before any
	// parameter slot changes
	args := make([]Value, len(e.Args))
	for i, argId := range e.Args {
		arg, err := ev.evalExpr(prog, argId)
		if err != nil {
			return Value{}, err
		}

		args[i] = arg
	}

	saved := make([]Value, def.Params.Len())
	for i := 0; i < def.Params.Len(); i++ {
		paramId := def.Params.Start + hir.ParamId(i)
		saved[i] = ev.params[paramId]
		ev.params[paramId] = args[i]
	}

	result, err := ev.evalExpr(prog, def.Body)

	for i := 0; i < def.Params.Len(); i++ {
		ev.params[def.Params.Start+hir.ParamId(i)] = saved[i]
	}

	return result, err
}
