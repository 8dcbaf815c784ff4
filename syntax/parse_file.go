package syntax

import "tern/token"

// stmtContext says which construct the statement being parsed is sitting
// in; it decides where a statement may drop its `;` and leave a trailing
// expression.
type stmtContext uint8

const (
	inSourceFile stmtContext = iota
	inReplLine
	inBlock
)

// atTail reports whether the parser is at a position where the current
// context allows a bare trailing expression.
func (cx stmtContext) atTail(p *Parser) bool {
	switch cx {
	case inReplLine:
		return p.atEOF()
	case inBlock:
		return p.at(token.RBrace) || p.atEOF()
	}

	return false
}

// atImplicitEnd reports whether the statement terminator may be omitted
// because the context ends here anyway.
func (cx stmtContext) atImplicitEnd(p *Parser) bool {
	return cx == inReplLine && p.atEOF()
}

// root = {def | stmt}
func parseRoot(p *Parser, cx stmtContext) {
	m := p.start()

	for !p.atEOF() {
		parseDefOrStmt(p, cx)
	}

	m.Complete(p, NodeRoot)
}

func parseDefOrStmt(p *Parser, cx stmtContext) {
	if p.at(token.FncKw) {
		parseFncDef(p, cx)
		return
	}

	parseStmt(p, cx)
}

var stmtFirst = exprFirst.With(token.LetKw)

// stmt = local_def | expr_stmt
func parseStmt(p *Parser, cx stmtContext) {
	if p.at(token.LetKw) {
		parseLocalDef(p, cx)
		return
	}

	parseExprStmt(p, cx)
}

// local_def = 'let' 'IDENT' '=' expr ';'
func parseLocalDef(p *Parser, cx stmtContext) {
	m := p.start()
	p.bump() // let

	p.expectWithRecovery(token.Ident, defaultRecoverySet.With(token.Eq))
	p.expect(token.Eq)

	parseExprWithRecovery(p, defaultRecoverySet.With(token.Semicolon))

	if !cx.atImplicitEnd(p) {
		p.expectWithRecovery(token.Semicolon, defaultRecoverySet.With(token.RBrace))
	}

	m.Complete(p, NodeLocalDef)
}

// expr_stmt = expr ';'
//
// The `;` may be dropped when the expression is the last thing in its
// context; the expression then stays a direct child of the context node
// and becomes its tail.
func parseExprStmt(p *Parser, cx stmtContext) {
	cm, ok := parseExprWithRecovery(p, defaultRecoverySet.With(token.Semicolon))

	if p.at(token.Semicolon) {
		if !ok {
			// the expression itself already produced an error; swallow the
			// stray separator instead of wrapping nothing
			p.bump()
			return
		}

		m := cm.Precede(p)
		p.bump()
		m.Complete(p, NodeExprStmt)
		return
	}

	if !ok || cx.atTail(p) {
		return
	}

	m := cm.Precede(p)
	p.expectWithRecovery(token.Semicolon, defaultRecoverySet.With(token.RBrace))
	m.Complete(p, NodeExprStmt)
}
