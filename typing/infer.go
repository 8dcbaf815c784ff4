// Package typing infers and checks types over a lowered program.
// Unknown types propagate silently: an expression that already failed to
// lower never produces a second complaint here.
package typing

import "tern/hir"

// Result is the outcome of inference.
type Result struct {
	// ExprTys has the inferred type of every expression reachable from
	// the program's definitions, statements, and tail.
	ExprTys map[hir.ExprId]hir.Ty

	// LocalTys has the inferred type of every `let` binding.
	LocalTys map[hir.LocalDefId]hir.Ty

	Errors []Error
}

// Infer types the whole program.  Under a REPL the program accumulates,
// so earlier lines are re-typed along with the new one; memoization in
// ExprTys keeps that cheap and the results identical.
func Infer(prog *hir.Program) Result {
	ic := &inferCtx{
		prog:     prog,
		exprTys:  make(map[hir.ExprId]hir.Ty),
		localTys: make(map[hir.LocalDefId]hir.Ty),
	}

	// locals first: a value expression only ever refers to bindings
	// allocated before it, so walking the arena in order sees every
	// referenced binding already typed
	for i := 0; i < prog.LocalDefs.Len(); i++ {
		id := hir.LocalDefId(i)
		ic.localTys[id] = ic.inferExpr(prog.Local(id).Value)
	}

	// then every function body against its declared return type
	for i := 0; i < prog.FncDefs.Len(); i++ {
		def := prog.Fnc(hir.FncDefId(i))
		ic.checkExpr(def.Body, def.RetTy)
	}

	// finally the current unit's statements and tail
	for _, s := range prog.Stmts {
		if s.Kind == hir.StmtExpr {
			ic.inferExpr(s.Expr)
		}
	}

	if prog.HasTail {
		ic.inferExpr(prog.TailExpr)
	}

	return Result{ExprTys: ic.exprTys, LocalTys: ic.localTys, Errors: ic.errors}
}

type inferCtx struct {
	prog     *hir.Program
	exprTys  map[hir.ExprId]hir.Ty
	localTys map[hir.LocalDefId]hir.Ty
	errors   []Error
}

// checkExpr infers an expression and reports a mismatch unless either
// side is already Unknown.
func (ic *inferCtx) checkExpr(id hir.ExprId, expected hir.Ty) {
	found := ic.inferExpr(id)

	if found == hir.TyUnknown || expected == hir.TyUnknown || found == expected {
		return
	}

	ic.errors = append(ic.errors, Error{
		Expr:     id,
		Kind:     Mismatch,
		Expected: expected,
		Found:    found,
	})
}

func (ic *inferCtx) inferExpr(id hir.ExprId) hir.Ty {
	if t, done := ic.exprTys[id]; done {
		return t
	}

	var t hir.Ty
	switch e := ic.prog.Expr(id).(type) {
	case hir.MissingExpr:
		t = hir.TyUnknown
	case hir.IntLiteral:
		t = hir.TyS32
	case hir.StringLiteral:
		t = hir.TyString
	case hir.BinExpr:
		ic.checkExpr(e.Lhs, hir.TyS32)
		ic.checkExpr(e.Rhs, hir.TyS32)
		t = hir.TyS32
	case hir.BlockExpr:
		t = ic.inferBlock(e)
	case hir.VarRef:
		t = ic.inferVarRef(e)
	case hir.FncCall:
		t = ic.inferFncCall(id, e)
	}

	ic.exprTys[id] = t
	return t
}

func (ic *inferCtx) inferBlock(e hir.BlockExpr) hir.Ty {
	for _, s := range e.Stmts {
		if s.Kind == hir.StmtExpr {
			ic.inferExpr(s.Expr)
		}
	}

	if !e.HasTail {
		return hir.TyUnit
	}

	return ic.inferExpr(e.TailExpr)
}

func (ic *inferCtx) inferVarRef(e hir.VarRef) hir.Ty {
	if e.Def.Kind == hir.VarDefParam {
		return ic.prog.ParamAt(e.Def.Param).Ty
	}

	return ic.localTys[e.Def.Local]
}

// inferFncCall types a call as the callee's declared return type.  On an
// argument count mismatch the arguments are still inferred, but there is
// nothing sensible to check them against.
func (ic *inferCtx) inferFncCall(id hir.ExprId, e hir.FncCall) hir.Ty {
	def := ic.prog.Fnc(e.Def)

	if len(e.Args) != def.Params.Len() {
		ic.errors = append(ic.errors, Error{
			Expr:          id,
			Kind:          MismatchedArgCount,
			ExpectedCount: def.Params.Len(),
			FoundCount:    len(e.Args),
		})

		for _, arg := range e.Args {
			ic.inferExpr(arg)
		}

		return def.RetTy
	}

	for i, arg := range e.Args {
		ic.checkExpr(arg, ic.prog.ParamAt(def.Params.Start+hir.ParamId(i)).Ty)
	}

	return def.RetTy
}
