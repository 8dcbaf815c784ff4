package syntax

import "tern/token"

var exprFirst = NewTokenSet(
	token.Ident, token.LBrace, token.Int, token.String, token.LParen)

// expr = fnc_call | block | 'INT' | 'STRING' | paren_expr | expr op expr
// op = '+' | '-' | '*' | '/'
//
// Binary expressions are parsed by precedence climbing: additive
// operators bind at 1/2, multiplicative at 3/4, and recursing with the
// right binding power makes every operator left-associative.
func parseExprWithRecovery(p *Parser, recovery TokenSet) (CompletedMarker, bool) {
	return parseExprBP(p, 0, recovery)
}

func parseExprBP(p *Parser, minBP int, recovery TokenSet) (CompletedMarker, bool) {
	lhs, ok := parseLhs(p, recovery)
	if !ok {
		return CompletedMarker{}, false
	}

	for {
		// operator probing must not leak into expectations: a perfectly
		// fine expression is always allowed to just end
		restore := p.disableExpectedTracking()

		var leftBP, rightBP int
		switch {
		case p.at(token.Plus) || p.at(token.Hyphen):
			leftBP, rightBP = 1, 2
		case p.at(token.Asterisk) || p.at(token.Slash):
			leftBP, rightBP = 3, 4
		default:
			restore()
			return lhs, true
		}

		restore()

		if leftBP < minBP {
			return lhs, true
		}

		p.bump() // the operator

		m := lhs.Precede(p)
		parseExprBP(p, rightBP, recovery)
		lhs = m.Complete(p, NodeBinExpr)
	}
}

func parseLhs(p *Parser, recovery TokenSet) (CompletedMarker, bool) {
	restore := p.expectedSyntaxName("expression")
	defer restore()

	switch {
	case p.at(token.Ident):
		return parseFncCall(p), true
	case p.at(token.LBrace):
		return parseBlock(p), true
	case p.at(token.Int):
		return parseIntLiteral(p), true
	case p.at(token.String):
		return parseStringLiteral(p), true
	case p.at(token.LParen):
		return parseParenExpr(p), true
	}

	p.errorExpected(recovery)
	return CompletedMarker{}, false
}

// fnc_call = 'IDENT' [arg_list]
//
// A bare identifier is also a FncCall; whether it names a variable or a
// zero-parameter function is lowering's problem, not the parser's.
func parseFncCall(p *Parser) CompletedMarker {
	m := p.start()
	p.bump() // ident

	restore := p.disableExpectedTracking()
	hasArgs := p.atSet(exprFirst)
	restore()

	if hasArgs {
		parseArgList(p)
	}

	return m.Complete(p, NodeFncCall)
}

// arg_list = arg {',' arg}
func parseArgList(p *Parser) {
	m := p.start()

	for {
		parseArg(p)

		if !p.at(token.Comma) {
			break
		}

		p.bump() // ,
	}

	m.Complete(p, NodeArgList)
}

// arg = expr
func parseArg(p *Parser) {
	m := p.start()
	parseExprWithRecovery(p, defaultRecoverySet.With(token.Comma))
	m.Complete(p, NodeArg)
}

// block = '{' {stmt} [expr] '}'
func parseBlock(p *Parser) CompletedMarker {
	m := p.start()
	p.bump() // {

	for !p.at(token.RBrace) && p.atSet(stmtFirst) {
		parseStmt(p, inBlock)
	}

	p.expect(token.RBrace)

	return m.Complete(p, NodeBlock)
}

func parseIntLiteral(p *Parser) CompletedMarker {
	m := p.start()
	p.bump()
	return m.Complete(p, NodeIntLiteral)
}

func parseStringLiteral(p *Parser) CompletedMarker {
	m := p.start()
	p.bump()
	return m.Complete(p, NodeStringLiteral)
}

// paren_expr = '(' expr ')'
func parseParenExpr(p *Parser) CompletedMarker {
	m := p.start()
	p.bump() // (

	parseExprWithRecovery(p, defaultRecoverySet.With(token.RParen))
	p.expectWithRecovery(token.RParen, defaultRecoverySet)

	return m.Complete(p, NodeParenExpr)
}
