package lexer

import (
	"tern/report"
	"tern/token"
)

// Lex tokenizes the entire source text.  The stream is lossless: every
// byte of the input is covered by exactly one token, including whitespace,
// comments, and unrecognized characters, so concatenating all token texts
// reproduces the input.
func Lex(text string) []token.Token {
	l := &lexer{text: text}

	var toks []token.Token
	for l.pos < len(l.text) {
		toks = append(toks, l.nextToken())
	}

	return toks
}

// lexer holds the scanning state: the full source text and the position of
// the next unconsumed byte.
type lexer struct {
	text string
	pos  int
}

func (l *lexer) nextToken() token.Token {
	start := l.pos

	var kind token.Kind
	switch c := l.text[l.pos]; {
	case isSpaceByte(c):
		kind = l.lexWhitespace()
	case c == '#':
		kind = l.lexComment()
	case isIdentStartByte(c):
		kind = l.lexIdentOrKeyword()
	case isDigitByte(c):
		kind = l.lexInt()
	case c == '"':
		kind = l.lexString()
	default:
		kind = l.lexSymbolOrError()
	}

	return token.Token{
		Kind: kind,
		Text: l.text[start:l.pos],
		Span: report.NewSpan(uint32(start), uint32(l.pos)),
	}
}

func (l *lexer) lexWhitespace() token.Kind {
	for l.pos < len(l.text) && isSpaceByte(l.text[l.pos]) {
		l.pos++
	}

	return token.Whitespace
}

// lexComment scans a `#` line comment.  The terminating newline is not
// part of the comment; it lexes as whitespace.
func (l *lexer) lexComment() token.Kind {
	for l.pos < len(l.text) && l.text[l.pos] != '\n' {
		l.pos++
	}

	return token.Comment
}

func (l *lexer) lexIdentOrKeyword() token.Kind {
	start := l.pos
	for l.pos < len(l.text) && isIdentByte(l.text[l.pos]) {
		l.pos++
	}

	switch l.text[start:l.pos] {
	case "let":
		return token.LetKw
	case "fnc":
		return token.FncKw
	}

	return token.Ident
}

func (l *lexer) lexInt() token.Kind {
	for l.pos < len(l.text) && isDigitByte(l.text[l.pos]) {
		l.pos++
	}

	return token.Int
}

// lexString scans a double-quoted string literal.  A string that reaches
// end of input without a closing quote is an error token.
func (l *lexer) lexString() token.Kind {
	l.pos++ // opening quote

	for l.pos < len(l.text) {
		if l.text[l.pos] == '"' {
			l.pos++
			return token.String
		}

		l.pos++
	}

	return token.Error
}

func (l *lexer) lexSymbolOrError() token.Kind {
	c := l.text[l.pos]
	l.pos++

	switch c {
	case '+':
		return token.Plus
	case '-':
		if l.pos < len(l.text) && l.text[l.pos] == '>' {
			l.pos++
			return token.Arrow
		}

		return token.Hyphen
	case '*':
		return token.Asterisk
	case '/':
		return token.Slash
	case '=':
		return token.Eq
	case ':':
		return token.Colon
	case ',':
		return token.Comma
	case ';':
		return token.Semicolon
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	case '{':
		return token.LBrace
	case '}':
		return token.RBrace
	}

	return token.Error
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

func isIdentStartByte(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentByte(c byte) bool {
	return isIdentStartByte(c) || isDigitByte(c)
}

func isDigitByte(c byte) bool {
	return '0' <= c && c <= '9'
}
