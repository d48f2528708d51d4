package huffcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is a node of a Huffman tree.  It is either a *Leaf or an *Internal.
type Node interface {
	fmt.Stringer

	// Probability returns the combined probability of every Symbol at or
	// below this node.
	Probability() float64

	writeTo(buf *strings.Builder)
}

// Leaf is a Node that represents exactly one Symbol.
type Leaf struct {
	Symbol Symbol
	P      float64
}

// Internal is a Node that represents the merge of two subtrees.  The First
// child is reached with a 1 bit and the Second child with a 0 bit.
type Internal struct {
	First  Node
	Second Node
	P      float64
}

// NewInternal constructs an Internal node whose probability is the sum of
// its children's probabilities.
func NewInternal(first, second Node) *Internal {
	return &Internal{
		First:  first,
		Second: second,
		P:      first.Probability() + second.Probability(),
	}
}

// Probability returns the probability of this Leaf's Symbol.
func (leaf *Leaf) Probability() float64 {
	return leaf.P
}

// Probability returns the sum of both children's probabilities.
func (in *Internal) Probability() float64 {
	return in.P
}

// String renders the Leaf as a quoted symbol, e.g. "A".
func (leaf *Leaf) String() string {
	var buf strings.Builder
	leaf.writeTo(&buf)
	return buf.String()
}

// String renders the subtree as nested brackets, e.g. ["A",["B","C"]].
func (in *Internal) String() string {
	var buf strings.Builder
	in.writeTo(&buf)
	return buf.String()
}

func (leaf *Leaf) writeTo(buf *strings.Builder) {
	buf.WriteString(strconv.Quote(string(rune(leaf.Symbol))))
}

func (in *Internal) writeTo(buf *strings.Builder) {
	buf.WriteByte('[')
	writeChild(buf, in.First)
	buf.WriteByte(',')
	writeChild(buf, in.Second)
	buf.WriteByte(']')
}

func writeChild(buf *strings.Builder, child Node) {
	if isNilNode(child) {
		buf.WriteString("nil")
		return
	}
	child.writeTo(buf)
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)
