package syntax

import "tern/token"

// The grammar does not build the tree directly: it appends events, which
// a second pass materializes into the packed tree.  The indirection
// exists so a completed node can retroactively gain a parent (see
// Precede) without moving any bytes.
type eventKind uint8

const (
	// evPlaceholder is an unclaimed start slot created by Parser.start.
	// Placeholders still present during materialization are skipped.
	evPlaceholder eventKind = iota

	evStartNode
	evAddToken
	evFinishNode
)

type event struct {
	kind eventKind

	// node kind for evStartNode events
	node NodeKind

	// forwardParent is 1 + the event index of a start event that must be
	// materialized before this one, even though it appears later in the
	// log; zero means none
	forwardParent int
}

// Marker is an unclaimed slot in the event log, created before a rule
// knows what kind of node it is producing.
type Marker struct {
	idx int
}

// CompletedMarker is a finished node in the event log that can still be
// wrapped by a later parent.
type CompletedMarker struct {
	idx int
}

// start claims a new slot in the event log.
func (p *Parser) start() Marker {
	p.events = append(p.events, event{kind: evPlaceholder})
	return Marker{idx: len(p.events) - 1}
}

// Complete fills the marker's slot with a start event of the given kind
// and appends the matching finish event.
func (m Marker) Complete(p *Parser, kind NodeKind) CompletedMarker {
	p.events[m.idx].kind = evStartNode
	p.events[m.idx].node = kind
	p.events = append(p.events, event{kind: evFinishNode})
	return CompletedMarker{idx: m.idx}
}

// Precede starts a new node that will become the parent of the completed
// node, linking the two through a forward-parent edge.
func (cm CompletedMarker) Precede(p *Parser) Marker {
	m := p.start()
	p.events[cm.idx].forwardParent = m.idx + 1
	return m
}

// buildTree materializes the event log into a packed tree, following
// forward-parent chains and attaching trivia to the tree as it goes:
// leading trivia right after the root opens, all other trivia directly
// after the token it follows.
func (p *Parser) buildTree(text string) *Tree {
	b := NewBuilder(text)

	cur := 0
	sawRoot := false
	var kinds []NodeKind

	for i := range p.events {
		switch p.events[i].kind {
		case evPlaceholder:
			// an abandoned slot; nothing to materialize

		case evStartNode:
			// walk the forward-parent chain: parents appear later in the
			// log but must open before this node, so collect then open in
			// reverse
			kinds = kinds[:0]
			kinds = append(kinds, p.events[i].node)

			fp := p.events[i].forwardParent
			for fp != 0 {
				idx := fp - 1
				kinds = append(kinds, p.events[idx].node)
				fp = p.events[idx].forwardParent
				p.events[idx].kind = evPlaceholder
			}

			for j := len(kinds) - 1; j >= 0; j-- {
				b.StartNode(kinds[j])
			}

			if !sawRoot {
				sawRoot = true
				cur = attachTrivia(b, p.tokens, cur)
			}

		case evAddToken:
			tok := p.tokens[cur]
			cur++
			b.AddToken(tok.Kind, tok.Span)
			cur = attachTrivia(b, p.tokens, cur)

		case evFinishNode:
			b.FinishNode()
		}
	}

	return b.Finish()
}

func attachTrivia(b *Builder, toks []token.Token, cur int) int {
	for cur < len(toks) && toks[cur].Kind.IsTrivia() {
		b.AddToken(toks[cur].Kind, toks[cur].Span)
		cur++
	}

	return cur
}
