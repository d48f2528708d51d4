package huffcode

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// AssignCodes walks a Huffman tree depth-first and returns the Code for
// every Symbol at its leaves.  The First child of each Internal node extends
// the current code with a 1 bit and the Second child with a 0 bit; the walk
// starts from the empty code.
//
// AssignCodes fails with ErrInvalidTree if root is not an Internal node (a
// single-symbol tree has no branches to assign bits from) or if any Internal
// node is missing a child.  Build handles the single-symbol case itself.
//
func AssignCodes(root Node) (CodeTable, error) {
	return assignCodes(root, 0)
}

func assignCodes(root Node, numSymbols int) (CodeTable, error) {
	if isNilNode(root) {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidTree)
	}
	if _, ok := root.(*Internal); !ok {
		return nil, fmt.Errorf("%w: root is %T, expected *Internal", ErrInvalidTree, root)
	}

	// Use a stack to walk the tree.  Each item carries the code of the
	// path that led to it; leaves record that code, internal nodes push
	// their children with one more bit.  The Second child is pushed first
	// so that the First child is visited first.
	//
	// The stack holds at most one pending sibling per level, so for a
	// balanced tree its depth is about log2(numSymbols).

	type stackItem struct {
		node Node
		code Code
	}

	codes := make(CodeTable, numSymbols)
	stack := make([]stackItem, 0, log2uint32(uint32(numSymbols))+1)
	stack = append(stack, stackItem{node: root})

	for len(stack) != 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		if isNilNode(item.node) {
			return nil, fmt.Errorf("%w: missing child at code %s", ErrInvalidTree, item.code)
		}

		switch node := item.node.(type) {
		case *Leaf:
			assert.Assertf(item.code != "", "leaf %q reached with an empty code", rune(node.Symbol))
			if prev, found := codes[node.Symbol]; found {
				return nil, fmt.Errorf("%w: symbol %q appears twice, at %s and %s", ErrInvalidTree, rune(node.Symbol), prev, item.code)
			}
			codes[node.Symbol] = item.code

		case *Internal:
			stack = append(stack,
				stackItem{node: node.Second, code: item.code + "0"},
				stackItem{node: node.First, code: item.code + "1"})

		default:
			return nil, fmt.Errorf("%w: unexpected node type %T", ErrInvalidTree, node)
		}
	}

	return codes, nil
}
