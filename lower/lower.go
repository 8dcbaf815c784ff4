// Package lower converts a typed AST into hir, resolving every name as
// it goes.  Lowering never stops on user errors: unresolved names and
// absent expressions turn into placeholders so that every independent
// error in the input gets reported.
package lower

import (
	"strconv"

	"tern/ast"
	"tern/hir"
	"tern/report"
	"tern/token"
)

// Result is the outcome of lowering one source file or REPL line.
type Result struct {
	Program   hir.Program
	SourceMap SourceMap
	Errors    []Error

	// FncNames and VarNames are the top-level name tables after this
	// unit, ready to seed the next REPL line.
	FncNames map[string]hir.FncDefId
	VarNames map[string]hir.VarDefId
}

// Scope is previously lowered state threaded into a new lower call: the
// arenas keep growing and the name tables keep resolving, which is what
// makes REPL lines accumulate.
type Scope struct {
	Program  hir.Program
	FncNames map[string]hir.FncDefId
	VarNames map[string]hir.VarDefId
}

// NewScope creates an empty scope.
func NewScope() Scope {
	return Scope{
		FncNames: make(map[string]hir.FncDefId),
		VarNames: make(map[string]hir.VarDefId),
	}
}

// SourceMap is the bidirectional mapping between lowered expressions and
// the AST nodes they came from.  Placeholders for expressions with no
// source have no entry.
type SourceMap struct {
	ExprMap     map[hir.ExprId]ast.Expr
	ExprMapBack map[ast.Expr]hir.ExprId
}

// NewSourceMap creates an empty source map.
func NewSourceMap() SourceMap {
	return SourceMap{
		ExprMap:     make(map[hir.ExprId]ast.Expr),
		ExprMapBack: make(map[ast.Expr]hir.ExprId),
	}
}

// Lower lowers a root in a fresh scope.
func Lower(root ast.Root) Result {
	return LowerInScope(root, NewScope())
}

// LowerInScope lowers a root on top of previously lowered state.
//
// Top-level function names are hoisted: every function id is allocated
// and registered before any body is lowered, so forward and mutual
// references resolve no matter the definition order.
func LowerInScope(root ast.Root, scope Scope) Result {
	if scope.FncNames == nil {
		scope.FncNames = make(map[string]hir.FncDefId)
	}
	if scope.VarNames == nil {
		scope.VarNames = make(map[string]hir.VarDefId)
	}

	st := &lowerStore{prog: scope.Program, sourceMap: NewSourceMap()}
	lc := &lowerCtx{
		store:    st,
		fncNames: scope.FncNames,
		vars:     &varNames{this: scope.VarNames},
	}

	astDefs := root.Defs()

	fncIds := make([]hir.FncDefId, len(astDefs))
	for i, d := range astDefs {
		fnc := d.(ast.FncDef)
		fncIds[i] = hir.FncDefId(st.prog.FncDefs.Alloc(hir.FncDef{}))

		if name, ok := fnc.Name(); ok {
			lc.fncNames[name.Text()] = fncIds[i]
		}
	}

	var defs []hir.Def
	for i, d := range astDefs {
		lc.lowerFncDefInto(fncIds[i], d.(ast.FncDef))
		defs = append(defs, hir.Def{Fnc: fncIds[i]})
	}

	var stmts []hir.Stmt
	for _, s := range root.Stmts() {
		stmts = append(stmts, lc.lowerStmt(s))
	}

	var tailExpr hir.ExprId
	hasTail := false
	if tail, ok := root.TailExpr(); ok {
		// the tail is lowered after all statements, in the same frame
		tailExpr = lc.lowerExpr(tail)
		hasTail = true
	}

	prog := st.prog
	prog.Defs = defs
	prog.Stmts = stmts
	prog.TailExpr = tailExpr
	prog.HasTail = hasTail

	return Result{
		Program:   prog,
		SourceMap: st.sourceMap,
		Errors:    st.errors,
		FncNames:  lc.fncNames,
		VarNames:  lc.vars.this,
	}
}

// ----------------------------------------------------------------------------

type lowerStore struct {
	prog      hir.Program
	sourceMap SourceMap
	errors    []Error
}

// lowerCtx is one lexical frame.  Frames share the store and the global
// function table; only variable names nest.
type lowerCtx struct {
	store    *lowerStore
	fncNames map[string]hir.FncDefId
	vars     *varNames
}

func (lc *lowerCtx) child() *lowerCtx {
	return &lowerCtx{
		store:    lc.store,
		fncNames: lc.fncNames,
		vars:     &varNames{this: make(map[string]hir.VarDefId), parent: lc.vars},
	}
}

// varNames is a chain of per-frame variable tables.  Lookups walk
// outward; inserts always hit the innermost frame, which is how
// shadowing and scope exit fall out for free.
type varNames struct {
	this   map[string]hir.VarDefId
	parent *varNames
}

func (v *varNames) get(name string) (hir.VarDefId, bool) {
	if id, ok := v.this[name]; ok {
		return id, true
	}

	if v.parent != nil {
		return v.parent.get(name)
	}

	return hir.VarDefId{}, false
}

func (lc *lowerCtx) addError(kind ErrorKind, name string, span report.Span) {
	lc.store.errors = append(lc.store.errors, Error{Kind: kind, Name: name, Range: span})
}

// ----------------------------------------------------------------------------

func (lc *lowerCtx) lowerStmt(s ast.Stmt) hir.Stmt {
	switch s := s.(type) {
	case ast.LocalDef:
		return hir.Stmt{Kind: hir.StmtLocalDef, LocalDef: lc.lowerLocalDef(s)}
	case ast.ExprStmt:
		return hir.Stmt{Kind: hir.StmtExpr, Expr: lc.lowerOptExpr(s.Expr())}
	}

	panic("lower: unknown statement variant")
}

func (lc *lowerCtx) lowerLocalDef(s ast.LocalDef) hir.LocalDefId {
	value := lc.lowerOptExpr(s.Value())
	id := hir.LocalDefId(lc.store.prog.LocalDefs.Alloc(hir.LocalDef{Value: value}))

	if name, ok := s.Name(); ok {
		lc.vars.this[name.Text()] = hir.LocalVar(id)
	}

	return id
}

// lowerFncDefInto fills the hoisted slot of a function definition.  The
// parameters and body live in a child frame, so they resolve top-level
// names but never leak back out.
func (lc *lowerCtx) lowerFncDefInto(id hir.FncDefId, d ast.FncDef) {
	child := lc.child()

	var params hir.ParamRange
	if paramList, ok := d.ParamList(); ok {
		first := true
		for _, p := range paramList.Params() {
			ty := child.lowerTy(p.Ty())
			paramId := hir.ParamId(lc.store.prog.Params.Alloc(hir.Param{Ty: ty}))

			if first {
				params.Start = paramId
				first = false
			}
			params.End = paramId + 1

			if name, ok := p.Name(); ok {
				child.vars.this[name.Text()] = hir.ParamVar(paramId)
			}
		}
	}

	retTy := hir.TyUnit
	if r, ok := d.RetTy(); ok {
		retTy = child.lowerTy(r.Ty())
	}

	body := child.lowerOptExpr(d.Body())

	lc.store.prog.FncDefs.Set(uint32(id), hir.FncDef{
		Params: params,
		RetTy:  retTy,
		Body:   body,
	})
}

// lowerTy resolves a type annotation.  A missing annotation or a Ty node
// without a name is silently Unknown; only a name that resolves to
// nothing is an error.
func (lc *lowerCtx) lowerTy(t ast.Ty, ok bool) hir.Ty {
	if !ok {
		return hir.TyUnknown
	}

	name, ok := t.Name()
	if !ok {
		return hir.TyUnknown
	}

	switch name.Text() {
	case "s32":
		return hir.TyS32
	case "string":
		return hir.TyString
	}

	lc.addError(UndefinedTy, name.Text(), name.Span())
	return hir.TyUnknown
}

// lowerOptExpr lowers a possibly absent expression, substituting an
// unmapped placeholder when it is absent.
func (lc *lowerCtx) lowerOptExpr(e ast.Expr, ok bool) hir.ExprId {
	if !ok {
		return hir.ExprId(lc.store.prog.Exprs.Alloc(hir.MissingExpr{}))
	}

	return lc.lowerExpr(e)
}

func (lc *lowerCtx) lowerExpr(e ast.Expr) hir.ExprId {
	// parentheses only group; they lower to their contents
	if paren, isParen := e.(ast.ParenExpr); isParen {
		return lc.lowerOptExpr(paren.Inner())
	}

	var v hir.Expr
	switch e := e.(type) {
	case ast.BinExpr:
		v = lc.lowerBinExpr(e)
	case ast.Block:
		v = lc.lowerBlock(e)
	case ast.FncCall:
		v = lc.lowerFncCall(e)
	case ast.IntLiteral:
		v = lowerIntLiteral(e)
	case ast.StringLiteral:
		v = lowerStringLiteral(e)
	default:
		v = hir.MissingExpr{}
	}

	id := hir.ExprId(lc.store.prog.Exprs.Alloc(v))
	lc.store.sourceMap.ExprMap[id] = e
	lc.store.sourceMap.ExprMapBack[e] = id

	return id
}

func (lc *lowerCtx) lowerBinExpr(e ast.BinExpr) hir.Expr {
	lhs := lc.lowerOptExpr(e.Lhs())
	rhs := lc.lowerOptExpr(e.Rhs())

	op := hir.OpInvalid
	if o, ok := e.Op(); ok {
		switch o.Kind() {
		case token.Plus:
			op = hir.OpAdd
		case token.Hyphen:
			op = hir.OpSub
		case token.Asterisk:
			op = hir.OpMul
		case token.Slash:
			op = hir.OpDiv
		}
	}

	return hir.BinExpr{Lhs: lhs, Rhs: rhs, Op: op}
}

func (lc *lowerCtx) lowerBlock(e ast.Block) hir.Expr {
	child := lc.child()

	var stmts []hir.Stmt
	for _, s := range e.Stmts() {
		stmts = append(stmts, child.lowerStmt(s))
	}

	block := hir.BlockExpr{Stmts: stmts}
	if tail, ok := e.TailExpr(); ok {
		block.TailExpr = child.lowerExpr(tail)
		block.HasTail = true
	}

	return block
}

// lowerFncCall resolves a call.  A bare name tries variables first and
// functions second; a name followed by arguments can only be a function.
// The arguments of an unresolved call are still lowered so errors inside
// them surface.
func (lc *lowerCtx) lowerFncCall(e ast.FncCall) hir.Expr {
	name, ok := e.Name()
	if !ok {
		return hir.MissingExpr{}
	}
	text := name.Text()

	argList, hasArgs := e.ArgList()
	if !hasArgs {
		if varDef, found := lc.vars.get(text); found {
			return hir.VarRef{Def: varDef}
		}

		if fncDef, found := lc.fncNames[text]; found {
			return hir.FncCall{Def: fncDef}
		}

		lc.addError(UndefinedVarOrFnc, text, name.Span())
		return hir.MissingExpr{}
	}

	args := argList.Args()

	if fncDef, found := lc.fncNames[text]; found {
		argIds := make([]hir.ExprId, 0, len(args))
		for _, a := range args {
			argIds = append(argIds, lc.lowerOptExpr(a.Value()))
		}

		return hir.FncCall{Def: fncDef, Args: argIds}
	}

	lc.addError(UndefinedFnc, text, name.Span())

	for _, a := range args {
		lc.lowerOptExpr(a.Value())
	}

	return hir.MissingExpr{}
}

func lowerIntLiteral(e ast.IntLiteral) hir.Expr {
	value, ok := e.Value()
	if !ok {
		return hir.MissingExpr{}
	}

	// out-of-range literals are the validation pass's problem; here they
	// just have no value
	v, err := strconv.ParseUint(value.Text(), 10, 32)
	if err != nil {
		return hir.MissingExpr{}
	}

	return hir.IntLiteral{Value: uint32(v)}
}

func lowerStringLiteral(e ast.StringLiteral) hir.Expr {
	value, ok := e.Value()
	if !ok {
		return hir.MissingExpr{}
	}

	text := value.Text()
	if len(text) < 2 {
		return hir.MissingExpr{}
	}

	return hir.StringLiteral{Value: text[1 : len(text)-1]}
}
