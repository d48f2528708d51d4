package huffcode

import (
	"errors"
)

// ErrInvalidInput is returned when a FrequencyTable or ProbabilityTable
// cannot be coded: it is empty, its counts sum to zero, or it holds an
// out-of-range value.
var ErrInvalidInput = errors.New("invalid Huffman input")

// ErrInvalidTree is returned by AssignCodes when the tree it was given is
// not rooted at a well-formed Internal node.
var ErrInvalidTree = errors.New("invalid Huffman tree")
