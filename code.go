package huffcode

import (
	"fmt"
	"strconv"
)

// Code is a Huffman-coded bit string, written as a sequence of '0' and '1'
// characters.  The first character is the first bit.
type Code string

// CodeTable maps each Symbol to its Code.  No Code in a CodeTable produced by
// this package is a prefix of another.
type CodeTable map[Symbol]Code

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// String returns the quoted string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
