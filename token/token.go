package token

import "tern/report"

// Token represents a single lexical element of Tern source text.
type Token struct {
	Kind Kind
	Text string
	Span report.Span
}

// Kind enumerates every kind of token the lexer can produce.  The
// enumeration order is load bearing: a token's kind doubles as its record
// tag in the packed syntax tree, so kinds must stay contiguous from zero.
type Kind uint8

const (
	LetKw Kind = iota
	FncKw
	Ident
	Int
	String
	Plus
	Hyphen
	Asterisk
	Slash
	Eq
	Colon
	Comma
	Semicolon
	Arrow
	LParen
	RParen
	LBrace
	RBrace
	Whitespace
	Comment
	Error
)

// NumKinds is the number of distinct token kinds.
const NumKinds = int(Error) + 1

// IsTrivia returns whether tokens of this kind carry no syntactic meaning.
// Trivia is preserved in the syntax tree but skipped by the parser.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

var kindNames = [NumKinds]string{
	LetKw:      "LetKw",
	FncKw:      "FncKw",
	Ident:      "Ident",
	Int:        "Int",
	String:     "String",
	Plus:       "Plus",
	Hyphen:     "Hyphen",
	Asterisk:   "Asterisk",
	Slash:      "Slash",
	Eq:         "Eq",
	Colon:      "Colon",
	Comma:      "Comma",
	Semicolon:  "Semicolon",
	Arrow:      "Arrow",
	LParen:     "LParen",
	RParen:     "RParen",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	Error:      "Error",
}

func (k Kind) String() string {
	return kindNames[k]
}

var kindLabels = [NumKinds]string{
	LetKw:      "`let`",
	FncKw:      "`fnc`",
	Ident:      "identifier",
	Int:        "integer literal",
	String:     "string literal",
	Plus:       "`+`",
	Hyphen:     "`-`",
	Asterisk:   "`*`",
	Slash:      "`/`",
	Eq:         "`=`",
	Colon:      "`:`",
	Comma:      "`,`",
	Semicolon:  "`;`",
	Arrow:      "`->`",
	LParen:     "`(`",
	RParen:     "`)`",
	LBrace:     "`{`",
	RBrace:     "`}`",
	Whitespace: "whitespace",
	Comment:    "comment",
	Error:      "an unrecognized token",
}

// Label returns the way the kind is referred to in diagnostics.
func (k Kind) Label() string {
	return kindLabels[k]
}
