package syntax

import (
	"encoding/binary"

	"tern/report"
	"tern/token"
)

// A Tree is a frozen syntax tree packed into a single byte buffer.  The
// input text sits verbatim at the head of the buffer; the tree structure
// follows it as a flat sequence of three record types:
//
//	StartNode  = tag (1) + finish position (4) + start offset (4) + end offset (4)
//	AddToken   = tag (1) + start offset (4) + end offset (4)
//	FinishNode = tag (1)
//
// All multi-byte fields are little-endian.  Token tags occupy [0,
// token.NumKinds); node tags sit immediately above them; 0xFF closes the
// most recently opened node.  Node and token handles are plain byte
// offsets of their records, which makes navigation pointer-free and the
// whole tree trivially relocatable.
type Tree struct {
	data []byte
	root uint32
}

const (
	startNodeSize  = 1 + 4 + 4 + 4
	addTokenSize   = 1 + 4 + 4
	finishNodeSize = 1
)

const finishNodePosPlaceholder = 0

const (
	nodeTagBase   = uint8(token.NumKinds)
	finishNodeTag = 0xFF
)

// Builder constructs a Tree.  StartNode and FinishNode calls must balance
// like parentheses; violating that is a bug in the caller and panics.
type Builder struct {
	data    []byte
	root    uint32
	hasRoot bool

	// end offset of the most recently added token; new nodes open here
	// and finished nodes are patched to end here
	currentEnd uint32

	startNodeIdxs []int
}

// NewBuilder creates a builder whose buffer is seeded with the source
// text the tree will describe.
func NewBuilder(text string) *Builder {
	return &Builder{data: []byte(text)}
}

// StartNode opens a new node of the given kind.  The first node started
// becomes the root.
func (b *Builder) StartNode(kind NodeKind) {
	if !b.hasRoot {
		b.root = uint32(len(b.data))
		b.hasRoot = true
	}

	b.startNodeIdxs = append(b.startNodeIdxs, len(b.data))

	b.data = append(b.data, nodeTagBase+uint8(kind))
	b.data = appendUint32(b.data, finishNodePosPlaceholder)
	b.data = appendUint32(b.data, b.currentEnd)
	b.data = appendUint32(b.data, b.currentEnd)
}

// AddToken appends a token of the given kind covering the given span of
// the source text to the current node.
func (b *Builder) AddToken(kind token.Kind, span report.Span) {
	b.currentEnd = span.End

	b.data = append(b.data, uint8(kind))
	b.data = appendUint32(b.data, span.Start)
	b.data = appendUint32(b.data, span.End)
}

// FinishNode closes the most recently opened node, back-patching its
// finish position and end offset.
func (b *Builder) FinishNode() {
	if len(b.startNodeIdxs) == 0 {
		panic("syntax: FinishNode called with no open node")
	}

	startNodeIdx := b.startNodeIdxs[len(b.startNodeIdxs)-1]
	b.startNodeIdxs = b.startNodeIdxs[:len(b.startNodeIdxs)-1]

	finishNodePos := uint32(len(b.data))
	b.data = append(b.data, finishNodeTag)

	binary.LittleEndian.PutUint32(b.data[startNodeIdx+1:], finishNodePos)
	binary.LittleEndian.PutUint32(b.data[startNodeIdx+9:], b.currentEnd)
}

// Finish freezes the builder into a Tree, shrinking the buffer down to
// its used size.
func (b *Builder) Finish() *Tree {
	if !b.hasRoot {
		panic("syntax: Finish called before any node was started")
	}

	if len(b.startNodeIdxs) != 0 {
		panic("syntax: Finish called with unfinished nodes")
	}

	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Tree{data: data, root: b.root}
}

func appendUint32(data []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(data, buf[:]...)
}

// Root returns the handle of the root node.
func (t *Tree) Root() Node {
	return Node(t.root)
}

func (t *Tree) text(start, end uint32) string {
	return string(t.data[start:end])
}

func (t *Tree) isStartNode(idx uint32) bool {
	tag := t.data[idx]
	return tag >= nodeTagBase && tag != finishNodeTag
}

func (t *Tree) isAddToken(idx uint32) bool {
	return t.data[idx] < nodeTagBase
}

func (t *Tree) isFinishNode(idx uint32) bool {
	return t.data[idx] == finishNodeTag
}

func (t *Tree) startNode(idx uint32) (kind NodeKind, finishNodePos, start, end uint32) {
	kind = NodeKind(t.data[idx] - nodeTagBase)
	finishNodePos = binary.LittleEndian.Uint32(t.data[idx+1:])
	start = binary.LittleEndian.Uint32(t.data[idx+5:])
	end = binary.LittleEndian.Uint32(t.data[idx+9:])
	return kind, finishNodePos, start, end
}

func (t *Tree) addToken(idx uint32) (kind token.Kind, start, end uint32) {
	kind = token.Kind(t.data[idx])
	start = binary.LittleEndian.Uint32(t.data[idx+1:])
	end = binary.LittleEndian.Uint32(t.data[idx+5:])
	return kind, start, end
}
