package ast

import (
	"tern/report"
	"tern/syntax"
	"tern/token"
)

// The AST layer is a family of typed wrappers over syntax tree handles.
// Wrappers hold no data of their own; every accessor walks the packed
// tree on demand and returns absence instead of panicking, since any
// child may be missing in a tree produced from broken input.

// base is the handle pair every wrapper shares.
type base struct {
	tree *syntax.Tree
	node syntax.Node
}

// Syntax returns the wrapped node handle.
func (b base) Syntax() syntax.Node { return b.node }

// SyntaxTree returns the tree the wrapper points into.
func (b base) SyntaxTree() *syntax.Tree { return b.tree }

// Span returns the byte range the wrapped node covers.
func (b base) Span() report.Span { return b.node.Span(b.tree) }

// Text returns the source text the wrapped node covers.
func (b base) Text() string { return b.node.Text(b.tree) }

// ----------------------------------------------------------------------------

// Root is the top of a parsed source file or REPL line.
type Root struct{ base }

// CastRoot wraps a node known to be a root.
func CastRoot(t *syntax.Tree, n syntax.Node) (Root, bool) {
	if n.Kind(t) != syntax.NodeRoot {
		return Root{}, false
	}

	return Root{base{tree: t, node: n}}, true
}

// Defs returns the root's function definitions in source order.
func (r Root) Defs() []Def {
	var defs []Def
	it := r.node.Children(r.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if n, isNode := el.Node(); isNode {
			if d, isDef := castDef(r.tree, n); isDef {
				defs = append(defs, d)
			}
		}
	}

	return defs
}

// Stmts returns the root's statements in source order.
func (r Root) Stmts() []Stmt {
	return childStmts(r.base)
}

// TailExpr returns the root's trailing expression, if a REPL line ended
// with one.
func (r Root) TailExpr() (Expr, bool) {
	return firstChildExpr(r.base)
}

// ----------------------------------------------------------------------------

// Def is a top-level definition.
type Def interface {
	Syntax() syntax.Node
	SyntaxTree() *syntax.Tree
	Span() report.Span

	defNode()
}

// FncDef is a function definition.
type FncDef struct{ base }

func (FncDef) defNode() {}

func castDef(t *syntax.Tree, n syntax.Node) (Def, bool) {
	if n.Kind(t) == syntax.NodeFncDef {
		return FncDef{base{tree: t, node: n}}, true
	}

	return nil, false
}

// Name returns the function's name.
func (d FncDef) Name() (Ident, bool) {
	return firstChildIdent(d.base)
}

// ParamList returns the function's parameter list, if it has one.
func (d FncDef) ParamList() (ParamList, bool) {
	n, ok := firstChildOfKind(d.base, syntax.NodeParamList)
	return ParamList{base{tree: d.tree, node: n}}, ok
}

// RetTy returns the function's return type annotation, if it has one.
func (d FncDef) RetTy() (RetTy, bool) {
	n, ok := firstChildOfKind(d.base, syntax.NodeRetTy)
	return RetTy{base{tree: d.tree, node: n}}, ok
}

// Body returns the function's body expression.
func (d FncDef) Body() (Expr, bool) {
	return firstChildExpr(d.base)
}

// ParamList is the parenthesized list of parameters of a function.
type ParamList struct{ base }

// Params returns the declared parameters in source order.
func (pl ParamList) Params() []Param {
	var params []Param
	it := pl.node.Children(pl.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if n, isNode := el.Node(); isNode && n.Kind(pl.tree) == syntax.NodeParam {
			params = append(params, Param{base{tree: pl.tree, node: n}})
		}
	}

	return params
}

// Param is a single name-and-type parameter declaration.
type Param struct{ base }

// Name returns the parameter's name.
func (p Param) Name() (Ident, bool) {
	return firstChildIdent(p.base)
}

// Ty returns the parameter's type annotation.
func (p Param) Ty() (Ty, bool) {
	n, ok := firstChildOfKind(p.base, syntax.NodeTy)
	return Ty{base{tree: p.tree, node: n}}, ok
}

// RetTy is a return type annotation.
type RetTy struct{ base }

// Ty returns the annotated type.
func (rt RetTy) Ty() (Ty, bool) {
	n, ok := firstChildOfKind(rt.base, syntax.NodeTy)
	return Ty{base{tree: rt.tree, node: n}}, ok
}

// Ty is a type reference.
type Ty struct{ base }

// Name returns the referenced type's name.  It can be absent even though
// the Ty node exists, when the annotation was started but never written.
func (ty Ty) Name() (Ident, bool) {
	return firstChildIdent(ty.base)
}

// ----------------------------------------------------------------------------

// Stmt is a statement.
type Stmt interface {
	Syntax() syntax.Node
	SyntaxTree() *syntax.Tree
	Span() report.Span

	stmtNode()
}

// LocalDef is a `let` binding.
type LocalDef struct{ base }

// ExprStmt is an expression in statement position.
type ExprStmt struct{ base }

func (LocalDef) stmtNode() {}
func (ExprStmt) stmtNode() {}

func castStmt(t *syntax.Tree, n syntax.Node) (Stmt, bool) {
	switch n.Kind(t) {
	case syntax.NodeLocalDef:
		return LocalDef{base{tree: t, node: n}}, true
	case syntax.NodeExprStmt:
		return ExprStmt{base{tree: t, node: n}}, true
	}

	return nil, false
}

// Name returns the bound name.
func (d LocalDef) Name() (Ident, bool) {
	return firstChildIdent(d.base)
}

// Value returns the bound value expression.
func (d LocalDef) Value() (Expr, bool) {
	return firstChildExpr(d.base)
}

// Expr returns the wrapped expression.
func (s ExprStmt) Expr() (Expr, bool) {
	return firstChildExpr(s.base)
}

// ----------------------------------------------------------------------------

// Expr is an expression.
type Expr interface {
	Syntax() syntax.Node
	SyntaxTree() *syntax.Tree
	Span() report.Span

	exprNode()
}

// BinExpr is a binary operator application.
type BinExpr struct{ base }

// Block is a braced statement list with an optional tail expression.
type Block struct{ base }

// FncCall is a call of a named function, or a bare name reference when it
// has no argument list.
type FncCall struct{ base }

// IntLiteral is an integer literal.
type IntLiteral struct{ base }

// StringLiteral is a string literal.
type StringLiteral struct{ base }

// ParenExpr is a parenthesized expression.
type ParenExpr struct{ base }

func (BinExpr) exprNode()       {}
func (Block) exprNode()         {}
func (FncCall) exprNode()       {}
func (IntLiteral) exprNode()    {}
func (StringLiteral) exprNode() {}
func (ParenExpr) exprNode()     {}

// CastExpr wraps a node as an expression if its kind is one of the
// expression kinds.
func CastExpr(t *syntax.Tree, n syntax.Node) (Expr, bool) {
	b := base{tree: t, node: n}

	switch n.Kind(t) {
	case syntax.NodeBinExpr:
		return BinExpr{b}, true
	case syntax.NodeBlock:
		return Block{b}, true
	case syntax.NodeFncCall:
		return FncCall{b}, true
	case syntax.NodeIntLiteral:
		return IntLiteral{b}, true
	case syntax.NodeStringLiteral:
		return StringLiteral{b}, true
	case syntax.NodeParenExpr:
		return ParenExpr{b}, true
	}

	return nil, false
}

// Lhs returns the left operand.
func (e BinExpr) Lhs() (Expr, bool) {
	return firstChildExpr(e.base)
}

// Rhs returns the right operand: the second expression child.
func (e BinExpr) Rhs() (Expr, bool) {
	return nthChildExpr(e.base, 1)
}

// Op returns the operator token.
func (e BinExpr) Op() (Op, bool) {
	it := e.node.Children(e.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if tk, isTok := el.Token(); isTok {
			switch tk.Kind(e.tree) {
			case token.Plus, token.Hyphen, token.Asterisk, token.Slash:
				return Op{tree: e.tree, tok: tk}, true
			}
		}
	}

	return Op{}, false
}

// Stmts returns the block's statements in source order.
func (e Block) Stmts() []Stmt {
	return childStmts(e.base)
}

// TailExpr returns the block's trailing expression, if any.
func (e Block) TailExpr() (Expr, bool) {
	return firstChildExpr(e.base)
}

// Name returns the called name.
func (e FncCall) Name() (Ident, bool) {
	return firstChildIdent(e.base)
}

// ArgList returns the call's argument list.  A call without one is a bare
// name reference.
func (e FncCall) ArgList() (ArgList, bool) {
	n, ok := firstChildOfKind(e.base, syntax.NodeArgList)
	return ArgList{base{tree: e.tree, node: n}}, ok
}

// ArgList is the comma-separated argument list of a call.
type ArgList struct{ base }

// Args returns the arguments in source order.
func (al ArgList) Args() []Arg {
	var args []Arg
	it := al.node.Children(al.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if n, isNode := el.Node(); isNode && n.Kind(al.tree) == syntax.NodeArg {
			args = append(args, Arg{base{tree: al.tree, node: n}})
		}
	}

	return args
}

// Arg is a single call argument.
type Arg struct{ base }

// Value returns the argument's expression.
func (a Arg) Value() (Expr, bool) {
	return firstChildExpr(a.base)
}

// Value returns the literal's token.
func (e IntLiteral) Value() (IntToken, bool) {
	tk, ok := firstChildTokenOfKind(e.base, token.Int)
	return IntToken{tree: e.tree, tok: tk}, ok
}

// Value returns the literal's token, quotes included.
func (e StringLiteral) Value() (StringToken, bool) {
	tk, ok := firstChildTokenOfKind(e.base, token.String)
	return StringToken{tree: e.tree, tok: tk}, ok
}

// Inner returns the parenthesized expression.
func (e ParenExpr) Inner() (Expr, bool) {
	return firstChildExpr(e.base)
}

// ----------------------------------------------------------------------------

// Ident is an identifier token.
type Ident struct {
	tree *syntax.Tree
	tok  syntax.Token
}

func (i Ident) Text() string      { return i.tok.Text(i.tree) }
func (i Ident) Span() report.Span { return i.tok.Span(i.tree) }

// IntToken is an integer literal token.
type IntToken struct {
	tree *syntax.Tree
	tok  syntax.Token
}

func (i IntToken) Text() string      { return i.tok.Text(i.tree) }
func (i IntToken) Span() report.Span { return i.tok.Span(i.tree) }

// StringToken is a string literal token.
type StringToken struct {
	tree *syntax.Tree
	tok  syntax.Token
}

func (s StringToken) Text() string      { return s.tok.Text(s.tree) }
func (s StringToken) Span() report.Span { return s.tok.Span(s.tree) }

// Op is a binary operator token.
type Op struct {
	tree *syntax.Tree
	tok  syntax.Token
}

func (o Op) Kind() token.Kind  { return o.tok.Kind(o.tree) }
func (o Op) Span() report.Span { return o.tok.Span(o.tree) }

// ----------------------------------------------------------------------------

func childStmts(b base) []Stmt {
	var stmts []Stmt
	it := b.node.Children(b.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if n, isNode := el.Node(); isNode {
			if s, isStmt := castStmt(b.tree, n); isStmt {
				stmts = append(stmts, s)
			}
		}
	}

	return stmts
}

func firstChildExpr(b base) (Expr, bool) {
	return nthChildExpr(b, 0)
}

func nthChildExpr(b base, n int) (Expr, bool) {
	seen := 0
	it := b.node.Children(b.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		child, isNode := el.Node()
		if !isNode {
			continue
		}

		if e, isExpr := CastExpr(b.tree, child); isExpr {
			if seen == n {
				return e, true
			}

			seen++
		}
	}

	return nil, false
}

func firstChildOfKind(b base, kind syntax.NodeKind) (syntax.Node, bool) {
	it := b.node.Children(b.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if n, isNode := el.Node(); isNode && n.Kind(b.tree) == kind {
			return n, true
		}
	}

	return 0, false
}

func firstChildIdent(b base) (Ident, bool) {
	tk, ok := firstChildTokenOfKind(b, token.Ident)
	return Ident{tree: b.tree, tok: tk}, ok
}

func firstChildTokenOfKind(b base, kind token.Kind) (syntax.Token, bool) {
	it := b.node.Children(b.tree)
	for el, ok := it.Next(); ok; el, ok = it.Next() {
		if tk, isTok := el.Token(); isTok && tk.Kind(b.tree) == kind {
			return tk, true
		}
	}

	return 0, false
}
