package syntax

import (
	"fmt"
	"strings"

	"tern/report"
	"tern/token"
)

// Node is a handle to a node in a Tree: the byte offset of its StartNode
// record.  Handles are only meaningful together with the tree they came
// from.
type Node uint32

// Token is a handle to a token in a Tree: the byte offset of its AddToken
// record.
type Token uint32

// Kind returns the node's kind.
func (n Node) Kind(t *Tree) NodeKind {
	kind, _, _, _ := t.startNode(uint32(n))
	return kind
}

// Span returns the byte range of source text the node covers, trailing
// trivia included.
func (n Node) Span(t *Tree) report.Span {
	_, _, start, end := t.startNode(uint32(n))
	return report.NewSpan(start, end)
}

// Text returns the source text the node covers.
func (n Node) Text(t *Tree) string {
	_, _, start, end := t.startNode(uint32(n))
	return t.text(start, end)
}

// Kind returns the token's kind.
func (tk Token) Kind(t *Tree) token.Kind {
	kind, _, _ := t.addToken(uint32(tk))
	return kind
}

// Span returns the byte range of source text the token covers.
func (tk Token) Span(t *Tree) report.Span {
	_, start, end := t.addToken(uint32(tk))
	return report.NewSpan(start, end)
}

// Text returns the token's source text.
func (tk Token) Text(t *Tree) string {
	_, start, end := t.addToken(uint32(tk))
	return t.text(start, end)
}

// Element is either a child node or a child token.
type Element struct {
	node    Node
	tok     Token
	isToken bool
}

// Node returns the element's node handle if the element is a node.
func (e Element) Node() (Node, bool) {
	if e.isToken {
		return 0, false
	}

	return e.node, true
}

// Token returns the element's token handle if the element is a token.
func (e Element) Token() (Token, bool) {
	if !e.isToken {
		return 0, false
	}

	return e.tok, true
}

// ChildIter iterates over the direct children of a node, both nodes and
// tokens, in source order.  Child nodes are stepped over in one hop using
// their recorded finish positions.
type ChildIter struct {
	tree *Tree
	pos  uint32
	end  uint32
}

// Children returns an iterator over the node's direct children.
func (n Node) Children(t *Tree) ChildIter {
	_, finishNodePos, _, _ := t.startNode(uint32(n))
	return ChildIter{tree: t, pos: uint32(n) + startNodeSize, end: finishNodePos}
}

func (it *ChildIter) Next() (Element, bool) {
	if it.pos >= it.end {
		return Element{}, false
	}

	if it.tree.isStartNode(it.pos) {
		child := Node(it.pos)
		_, finishNodePos, _, _ := it.tree.startNode(it.pos)
		it.pos = finishNodePos + finishNodeSize
		return Element{node: child}, true
	}

	child := Token(it.pos)
	it.pos += addTokenSize
	return Element{tok: child, isToken: true}, true
}

// NodeIter iterates over nodes in a region of the tree in depth-first
// source order.
type NodeIter struct {
	tree *Tree
	pos  uint32
	end  uint32
}

// Descendants returns an iterator over the node and all nodes beneath it.
func (n Node) Descendants(t *Tree) NodeIter {
	_, finishNodePos, _, _ := t.startNode(uint32(n))
	return NodeIter{tree: t, pos: uint32(n), end: finishNodePos}
}

func (it *NodeIter) Next() (Node, bool) {
	for it.pos < it.end {
		switch {
		case it.tree.isStartNode(it.pos):
			n := Node(it.pos)
			it.pos += startNodeSize
			return n, true
		case it.tree.isAddToken(it.pos):
			it.pos += addTokenSize
		default:
			it.pos += finishNodeSize
		}
	}

	return 0, false
}

// TokenIter iterates over tokens in a region of the tree in source order.
type TokenIter struct {
	tree *Tree
	pos  uint32
	end  uint32
}

// DescendantTokens returns an iterator over every token beneath the node.
func (n Node) DescendantTokens(t *Tree) TokenIter {
	_, finishNodePos, _, _ := t.startNode(uint32(n))
	return TokenIter{tree: t, pos: uint32(n) + startNodeSize, end: finishNodePos}
}

func (it *TokenIter) Next() (Token, bool) {
	for it.pos < it.end {
		switch {
		case it.tree.isAddToken(it.pos):
			tk := Token(it.pos)
			it.pos += addTokenSize
			return tk, true
		case it.tree.isStartNode(it.pos):
			it.pos += startNodeSize
		default:
			it.pos += finishNodeSize
		}
	}

	return 0, false
}

// Dump renders the tree in an indented debug format, one node or token
// per line.
func (t *Tree) Dump() string {
	var sb strings.Builder

	indentation := 0
	idx := t.root
	for idx < uint32(len(t.data)) {
		if t.isFinishNode(idx) {
			indentation--
			idx += finishNodeSize
			continue
		}

		sb.WriteString(strings.Repeat("  ", indentation))

		if t.isStartNode(idx) {
			kind, _, start, end := t.startNode(idx)
			fmt.Fprintf(&sb, "%v@%d..%d\n", kind, start, end)
			indentation++
			idx += startNodeSize
			continue
		}

		kind, start, end := t.addToken(idx)
		fmt.Fprintf(&sb, "%v@%d..%d %q\n", kind, start, end, t.text(start, end))
		idx += addTokenSize
	}

	return sb.String()
}
