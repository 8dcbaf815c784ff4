package syntax

import "tern/token"

// fnc_def = 'fnc' 'IDENT' [param_list] [ret_ty] '->' expr ';'
func parseFncDef(p *Parser, cx stmtContext) {
	m := p.start()
	p.bump() // fnc

	p.expectWithRecovery(token.Ident,
		defaultRecoverySet.With(token.LParen, token.Colon, token.Arrow))

	if p.at(token.LParen) {
		parseParamList(p)
	}

	if p.at(token.Colon) {
		parseRetTy(p)
	}

	p.expect(token.Arrow)

	parseExprWithRecovery(p, defaultRecoverySet.With(token.Semicolon))

	if !cx.atImplicitEnd(p) {
		p.expectWithRecovery(token.Semicolon, defaultRecoverySet.With(token.RBrace))
	}

	m.Complete(p, NodeFncDef)
}

// param_list = '(' [param {',' param}] ')'
func parseParamList(p *Parser) {
	m := p.start()
	p.bump() // (

	if !p.at(token.RParen) && !p.atEOF() {
		for {
			parseParam(p)

			if !p.at(token.Comma) {
				break
			}

			p.bump() // ,
		}
	}

	p.expectWithRecovery(token.RParen,
		defaultRecoverySet.With(token.Colon, token.Arrow))

	m.Complete(p, NodeParamList)
}

// param = 'IDENT' ':' ty
func parseParam(p *Parser) {
	m := p.start()

	p.expectWithRecovery(token.Ident,
		defaultRecoverySet.With(token.Colon, token.Comma, token.RParen))
	p.expectWithRecovery(token.Colon,
		defaultRecoverySet.With(token.Comma, token.RParen))

	parseTy(p, defaultRecoverySet.With(token.Comma, token.RParen))

	m.Complete(p, NodeParam)
}

// ret_ty = ':' ty
func parseRetTy(p *Parser) {
	m := p.start()
	p.bump() // :

	parseTy(p, defaultRecoverySet.With(token.Arrow))

	m.Complete(p, NodeRetTy)
}

// ty = 'IDENT'
//
// A Ty node is produced even when the identifier is missing, so the AST
// layer can distinguish "no type written" from "type written but
// unreadable".
func parseTy(p *Parser, recovery TokenSet) {
	m := p.start()
	p.expectWithRecovery(token.Ident, recovery)
	m.Complete(p, NodeTy)
}
