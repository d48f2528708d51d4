package huffcode

import (
	"container/heap"
	"fmt"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds a Huffman tree from a table of probabilities and returns
// its root.
//
// The working collection starts with one Leaf per Symbol, ordered by
// descending probability and then by ascending Symbol.  BuildTree then
// repeatedly removes the least probable node ("least") and the next least
// probable node ("second"), merges them into an Internal node, and appends
// that node to the end of the collection.  Ties between equally probable
// nodes go to whichever node comes first in the collection.
//
// The merged node's children are [least, second] if least is a Leaf and
// second is an Internal node, and [second, least] otherwise.  This affects
// which bit each subtree receives but never the code lengths.
//
// A single-symbol table yields a bare *Leaf.  BuildTree fails with
// ErrInvalidInput if probs is empty or holds a probability outside (0, 1].
//
func BuildTree(probs ProbabilityTable) (Node, error) {
	if len(probs) == 0 {
		return nil, fmt.Errorf("%w: empty probability table", ErrInvalidInput)
	}

	// Step 1: lay out the initial working order.

	leaves := make(byDescendingProbability, 0, len(probs))
	for sym, p := range probs {
		if math.IsNaN(p) || p <= 0 || p > 1 {
			return nil, fmt.Errorf("%w: probability %v for symbol %q is outside (0, 1]", ErrInvalidInput, p, rune(sym))
		}
		leaves = append(leaves, &Leaf{Symbol: sym, P: p})
	}
	leaves.Sort()

	if len(leaves) == 1 {
		return leaves[0], nil
	}

	// Step 2: build a minheap keyed on (probability, position in the
	// working order).  Positions only ever grow, because merged nodes are
	// appended at the end, so popping the heap finds exactly the node a
	// front-to-back scan for the minimum would find.

	h := nodeHeap{list: make([]nodeAndSeq, 0, len(leaves))}
	var nextSeq uint64
	for _, leaf := range leaves {
		h.list = append(h.list, nodeAndSeq{leaf, nextSeq})
		nextSeq++
	}
	h.Init()

	// Step 3: merge until one node remains.

	for h.Len() > 1 {
		least := heap.Pop(&h).(nodeAndSeq).node
		second := heap.Pop(&h).(nodeAndSeq).node

		var merged *Internal
		if isLeaf(least) && !isLeaf(second) {
			merged = NewInternal(least, second)
		} else {
			merged = NewInternal(second, least)
		}

		heap.Push(&h, nodeAndSeq{merged, nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(h.Len() == 0, "%d nodes left over after popping the root", h.Len())
	return root, nil
}

func isLeaf(node Node) bool {
	_, ok := node.(*Leaf)
	return ok
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	ap, bp := a.node.Probability(), b.node.Probability()
	if ap != bp {
		return ap < bp
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

// type byDescendingProbability {{{

type byDescendingProbability []*Leaf

func (list byDescendingProbability) Sort() {
	sort.Sort(list)
}

func (list byDescendingProbability) Len() int {
	return len(list)
}

func (list byDescendingProbability) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byDescendingProbability) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.P != b.P {
		return a.P > b.P
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = byDescendingProbability(nil)

// }}}
