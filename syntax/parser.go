package syntax

import "tern/token"

// Parse is the result of parsing one source file or REPL line: the packed
// syntax tree plus all syntax errors encountered.  Parsing never fails
// outright; broken input yields a tree with error nodes and missing
// pieces.
type Parse struct {
	Tree   *Tree
	Errors []SyntaxError
}

// ParseSourceFile parses a whole source file.  Every statement must be
// terminated with `;`.
func ParseSourceFile(text string, tokens []token.Token) Parse {
	return parse(text, tokens, inSourceFile)
}

// ParseReplLine parses a single line of REPL input.  Unlike a source
// file, the final statement may omit its `;`, and a trailing expression
// is kept as the root's tail expression.
func ParseReplLine(text string, tokens []token.Token) Parse {
	return parse(text, tokens, inReplLine)
}

func parse(text string, tokens []token.Token, cx stmtContext) Parse {
	p := &Parser{tokens: tokens}
	parseRoot(p, cx)
	return Parse{Tree: p.buildTree(text), Errors: p.errors}
}

// Parser holds the state of a single parse: the token stream, the event
// log the grammar appends to, and the error recovery bookkeeping.  The
// grammar functions drive it; the event log is turned into a packed tree
// afterwards.
type Parser struct {
	tokens []token.Token
	pos    int

	events []event
	errors []SyntaxError

	// end offset of the most recently consumed token, used as the
	// insertion point for missing errors
	lastTokenEnd uint32

	// expected-syntax tracking: the kinds probed for since the last time
	// the parser advanced, an optional human-readable name that overrides
	// them, and a switch that turns recording off while the expression
	// parser probes for operators
	expected         []token.Kind
	expectedName     string
	trackingDisabled bool
}

// defaultRecoverySet holds the tokens that always begin a new statement:
// when an expectation fails in front of one of these, the parser reports
// a missing error and leaves the token for the enclosing rule.
var defaultRecoverySet = NewTokenSet(token.LetKw, token.FncKw)

func (p *Parser) skipTrivia() {
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind.IsTrivia() {
		p.pos++
	}
}

func (p *Parser) atEOF() bool {
	p.skipTrivia()
	return p.pos >= len(p.tokens)
}

// at reports whether the next significant token has the given kind,
// recording the kind as expected.
func (p *Parser) at(kind token.Kind) bool {
	p.skipTrivia()
	p.recordExpected(kind)
	return p.pos < len(p.tokens) && p.tokens[p.pos].Kind == kind
}

// atSet reports whether the next significant token is in the given set.
// Unlike at, it records nothing: it is used for loop gating, not for
// expectations.
func (p *Parser) atSet(set TokenSet) bool {
	p.skipTrivia()
	return p.pos < len(p.tokens) && set.Contains(p.tokens[p.pos].Kind)
}

func (p *Parser) recordExpected(kind token.Kind) {
	if p.trackingDisabled {
		return
	}

	for _, k := range p.expected {
		if k == kind {
			return
		}
	}

	p.expected = append(p.expected, kind)
}

// bump consumes the next significant token into the current node.
func (p *Parser) bump() {
	p.skipTrivia()
	if p.pos >= len(p.tokens) {
		panic("syntax: bump at end of input")
	}

	tok := p.tokens[p.pos]
	p.pos++
	p.lastTokenEnd = tok.Span.End
	p.expected = p.expected[:0]

	p.events = append(p.events, event{kind: evAddToken})
}

// expect consumes a token of the given kind or reports an error, using
// the default recovery set.
func (p *Parser) expect(kind token.Kind) {
	p.expectWithRecovery(kind, defaultRecoverySet)
}

// expectWithRecovery consumes a token of the given kind or reports an
// error.  If the offending token is in the recovery set (or input ends),
// the error is a non-consuming missing error; otherwise the token is
// consumed into an error node.
func (p *Parser) expectWithRecovery(kind token.Kind, recovery TokenSet) {
	if p.at(kind) {
		p.bump()
		return
	}

	p.errorExpected(recovery)
}

// errorExpected reports a syntax error at the current position using the
// accumulated expected syntax.
func (p *Parser) errorExpected(recovery TokenSet) {
	expected := p.currentExpected()

	p.skipTrivia()
	if p.pos >= len(p.tokens) || recovery.Contains(p.tokens[p.pos].Kind) {
		p.errors = append(p.errors, SyntaxError{
			Expected: expected,
			Missing:  true,
			Offset:   p.lastTokenEnd,
		})
		p.expected = p.expected[:0]
		return
	}

	tok := p.tokens[p.pos]
	p.errors = append(p.errors, SyntaxError{
		Expected: expected,
		Found:    tok.Kind,
		Range:    tok.Span,
	})

	m := p.start()
	p.bump()
	m.Complete(p, NodeError)
}

func (p *Parser) currentExpected() ExpectedSyntax {
	if p.expectedName != "" {
		return ExpectedSyntax{Name: p.expectedName}
	}

	kinds := make([]token.Kind, len(p.expected))
	copy(kinds, p.expected)
	return ExpectedSyntax{Kinds: kinds}
}

// expectedSyntaxName overrides expected-kind tracking with a construct
// name until the returned restore function is called.
func (p *Parser) expectedSyntaxName(name string) func() {
	prev := p.expectedName
	p.expectedName = name
	return func() { p.expectedName = prev }
}

// disableExpectedTracking stops expectation recording until the returned
// restore function is called.
func (p *Parser) disableExpectedTracking() func() {
	prev := p.trackingDisabled
	p.trackingDisabled = true
	return func() { p.trackingDisabled = prev }
}
