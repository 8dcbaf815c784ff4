package lexer

import (
	"testing"

	"tern/token"
)

// checkSingle lexes an input that should produce exactly one token
// spanning the whole input.
func checkSingle(t *testing.T, input string, kind token.Kind) {
	t.Helper()

	toks := Lex(input)
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d: %+v", len(toks), toks)
	}

	if toks[0].Kind != kind {
		t.Fatalf("expected %v, got %v", kind, toks[0].Kind)
	}

	if toks[0].Text != input {
		t.Fatalf("expected token to cover %q, got %q", input, toks[0].Text)
	}

	if toks[0].Span.Start != 0 || toks[0].Span.End != uint32(len(input)) {
		t.Fatalf("unexpected span %+v", toks[0].Span)
	}
}

func TestLexWhitespace(t *testing.T) {
	checkSingle(t, "  \n ", token.Whitespace)
}

func TestLexComment(t *testing.T) {
	checkSingle(t, "# reticulating splines", token.Comment)
}

func TestLexCommentStopsAtNewline(t *testing.T) {
	toks := Lex("# foo\nbar")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %+v", len(toks), toks)
	}

	if toks[0].Kind != token.Comment || toks[0].Text != "# foo" {
		t.Fatalf("unexpected comment token %+v", toks[0])
	}

	if toks[1].Kind != token.Whitespace || toks[2].Kind != token.Ident {
		t.Fatalf("unexpected tokens after comment: %+v", toks[1:])
	}
}

func TestLexIdent(t *testing.T) {
	checkSingle(t, "abc", token.Ident)
	checkSingle(t, "ABC", token.Ident)
	checkSingle(t, "abCdEFg", token.Ident)
	checkSingle(t, "abc123def", token.Ident)
	checkSingle(t, "a_b_c", token.Ident)
	checkSingle(t, "__main__", token.Ident)
}

func TestLexKeywords(t *testing.T) {
	checkSingle(t, "let", token.LetKw)
	checkSingle(t, "fnc", token.FncKw)
}

func TestLexKeywordPrefixIsIdent(t *testing.T) {
	checkSingle(t, "letter", token.Ident)
	checkSingle(t, "fnca", token.Ident)
}

func TestLexInt(t *testing.T) {
	checkSingle(t, "123", token.Int)
}

func TestLexIntThenIdent(t *testing.T) {
	toks := Lex("92foo")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %+v", len(toks), toks)
	}

	if toks[0].Kind != token.Int || toks[0].Text != "92" {
		t.Fatalf("unexpected first token %+v", toks[0])
	}

	if toks[1].Kind != token.Ident || toks[1].Text != "foo" {
		t.Fatalf("unexpected second token %+v", toks[1])
	}
}

func TestLexString(t *testing.T) {
	checkSingle(t, `"hello"`, token.String)
	checkSingle(t, `""`, token.String)
}

func TestLexUnterminatedString(t *testing.T) {
	checkSingle(t, `"hello`, token.Error)
}

func TestLexSymbols(t *testing.T) {
	cases := map[string]token.Kind{
		"+":  token.Plus,
		"-":  token.Hyphen,
		"*":  token.Asterisk,
		"/":  token.Slash,
		"=":  token.Eq,
		":":  token.Colon,
		",":  token.Comma,
		";":  token.Semicolon,
		"->": token.Arrow,
		"(":  token.LParen,
		")":  token.RParen,
		"{":  token.LBrace,
		"}":  token.RBrace,
	}

	for input, kind := range cases {
		checkSingle(t, input, kind)
	}
}

func TestLexError(t *testing.T) {
	checkSingle(t, "?", token.Error)
}

func TestLexLossless(t *testing.T) {
	input := "# header\nlet a = 10;\nfnc add(x: s32): s32 -> x + a;\nadd \"oops\"?"

	var rebuilt string
	for _, tok := range Lex(input) {
		rebuilt += tok.Text
	}

	if rebuilt != input {
		t.Fatalf("lexing lost text:\n%q\n%q", input, rebuilt)
	}
}
