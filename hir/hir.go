// Package hir defines the high-level intermediate representation a
// parsed program lowers into: flat arenas of definitions and expressions
// connected by integer ids, with names already resolved away.
package hir

import "tern/arena"

// Ids of the four arena-allocated entity kinds.  An id is only meaningful
// together with the Program it was allocated in.
type (
	LocalDefId uint32
	FncDefId   uint32
	ParamId    uint32
	ExprId     uint32
)

// Ty is the type of an expression.  Unknown is the silent placeholder
// produced wherever an earlier error already made the type meaningless.
type Ty uint8

const (
	TyUnknown Ty = iota
	TyS32
	TyString
	TyUnit
)

// String returns the way the type is referred to in diagnostics.
func (t Ty) String() string {
	switch t {
	case TyS32:
		return "s32"
	case TyString:
		return "string"
	case TyUnit:
		return "unit"
	}

	return "an unknown type"
}

// LocalDef is a `let` binding.
type LocalDef struct {
	Value ExprId
}

// FncDef is a function definition.  Its parameters are the contiguous id
// range [Params.Start, Params.End).
type FncDef struct {
	Params ParamRange
	RetTy  Ty
	Body   ExprId
}

// Param is a single function parameter.
type Param struct {
	Ty Ty
}

// ParamRange is a half-open range of parameter ids.
type ParamRange struct {
	Start ParamId
	End   ParamId
}

// Len returns the number of parameters in the range.
func (r ParamRange) Len() int {
	return int(r.End - r.Start)
}

// VarDefKind says which arena a variable definition lives in.
type VarDefKind uint8

const (
	VarDefLocal VarDefKind = iota
	VarDefParam
)

// VarDefId identifies anything a variable reference can resolve to:
// either a local definition or a parameter.
type VarDefId struct {
	Kind  VarDefKind
	Local LocalDefId // valid when Kind == VarDefLocal
	Param ParamId    // valid when Kind == VarDefParam
}

// LocalVar wraps a local definition id as a variable definition.
func LocalVar(id LocalDefId) VarDefId {
	return VarDefId{Kind: VarDefLocal, Local: id}
}

// ParamVar wraps a parameter id as a variable definition.
func ParamVar(id ParamId) VarDefId {
	return VarDefId{Kind: VarDefParam, Param: id}
}

// Def is a top-level definition.
type Def struct {
	Fnc FncDefId
}

// StmtKind discriminates Stmt.
type StmtKind uint8

const (
	StmtLocalDef StmtKind = iota
	StmtExpr
)

// Stmt is a statement: either a local definition or an expression
// evaluated for effect.
type Stmt struct {
	Kind     StmtKind
	LocalDef LocalDefId // valid when Kind == StmtLocalDef
	Expr     ExprId     // valid when Kind == StmtExpr
}

// ----------------------------------------------------------------------------

// Expr is an expression variant.  Every variant is stored in the
// expression arena behind this interface.
type Expr interface {
	exprVariant()
}

// MissingExpr stands in for an expression the source did not actually
// contain, so that the rest of the program still lowers.
type MissingExpr struct{}

// IntLiteral is an integer literal that fit in 32 bits.
type IntLiteral struct {
	Value uint32
}

// StringLiteral is a string literal, quotes stripped.
type StringLiteral struct {
	Value string
}

// BinOp is a binary operator.
type BinOp uint8

const (
	OpInvalid BinOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// BinExpr is a binary operator application.
type BinExpr struct {
	Lhs ExprId
	Rhs ExprId
	Op  BinOp
}

// BlockExpr is a statement list evaluating to its tail expression, or to
// unit if it has none.
type BlockExpr struct {
	Stmts    []Stmt
	TailExpr ExprId
	HasTail  bool
}

// VarRef is a resolved reference to a local or a parameter.
type VarRef struct {
	Def VarDefId
}

// FncCall is a resolved call.  A call whose callee could not be resolved
// never reaches the arena; a placeholder does instead.
type FncCall struct {
	Def  FncDefId
	Args []ExprId
}

func (MissingExpr) exprVariant()   {}
func (IntLiteral) exprVariant()    {}
func (StringLiteral) exprVariant() {}
func (BinExpr) exprVariant()       {}
func (BlockExpr) exprVariant()     {}
func (VarRef) exprVariant()        {}
func (FncCall) exprVariant()       {}

// ----------------------------------------------------------------------------

// Program is a lowered program: the shared arenas plus the definitions
// and statements of the unit that was just lowered.  Under a REPL the
// arenas accumulate across lines while Defs, Stmts, and the tail are per
// line.
type Program struct {
	LocalDefs arena.Arena[LocalDef]
	FncDefs   arena.Arena[FncDef]
	Params    arena.Arena[Param]
	Exprs     arena.Arena[Expr]

	Defs  []Def
	Stmts []Stmt

	TailExpr ExprId
	HasTail  bool
}

// Local returns the local definition with the given id.
func (p *Program) Local(id LocalDefId) LocalDef {
	return p.LocalDefs.At(uint32(id))
}

// Fnc returns the function definition with the given id.
func (p *Program) Fnc(id FncDefId) FncDef {
	return p.FncDefs.At(uint32(id))
}

// ParamAt returns the parameter with the given id.
func (p *Program) ParamAt(id ParamId) Param {
	return p.Params.At(uint32(id))
}

// Expr returns the expression with the given id.
func (p *Program) Expr(id ExprId) Expr {
	return p.Exprs.At(uint32(id))
}
