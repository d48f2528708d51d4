package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Result is an immutable snapshot of one Huffman coding run: the counts it
// started from, the probabilities derived from them, the tree built from the
// probabilities, and the codes assigned from the tree.
//
// The tables held by a Result are never modified after Build returns, so a
// Result may be shared freely between goroutines as long as callers treat
// them as read-only.
type Result struct {
	Frequencies   FrequencyTable
	Probabilities ProbabilityTable
	Root          Node
	Codes         CodeTable

	minSize int
	maxSize int
}

// Build computes the Huffman code for the given occurrence counts.
//
// Symbols with a count of 0 receive no code.  If only one Symbol has a
// non-zero count, it is assigned the one-bit Code "0".
//
// Build fails with ErrInvalidInput under the same conditions as Normalize.
// No partial Result is returned on failure.
//
func Build(counts FrequencyTable) (*Result, error) {
	probs, err := Normalize(counts)
	if err != nil {
		return nil, err
	}

	root, err := BuildTree(probs)
	if err != nil {
		return nil, err
	}

	var codes CodeTable
	if leaf, ok := root.(*Leaf); ok {
		codes = CodeTable{leaf.Symbol: "0"}
	} else {
		codes, err = assignCodes(root, len(probs))
		if err != nil {
			return nil, err
		}
	}

	frequencies := make(FrequencyTable, len(counts))
	for sym, count := range counts {
		frequencies[sym] = count
	}

	var minSize, maxSize int
	first := true
	for _, hc := range codes {
		size := hc.Len()
		if first {
			first = false
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	return &Result{
		Frequencies:   frequencies,
		Probabilities: probs,
		Root:          root,
		Codes:         codes,
		minSize:       minSize,
		maxSize:       maxSize,
	}, nil
}

// Encode returns the Code for the given Symbol.  The second return value is
// false if the Symbol has no Code, either because it was absent from the
// input or because its count was 0.
func (r *Result) Encode(symbol Symbol) (Code, bool) {
	hc, found := r.Codes[symbol]
	return hc, found
}

// MinSize is the bit length of the shortest Code.
func (r *Result) MinSize() int {
	return r.minSize
}

// MaxSize is the bit length of the longest Code.
func (r *Result) MaxSize() int {
	return r.maxSize
}

// Symbols returns every Symbol that has a Code, in ascending order.
func (r *Result) Symbols() []Symbol {
	return sortedSymbols(r.Codes)
}

// SizeBySymbol returns the bit length of each Symbol's Code.
func (r *Result) SizeBySymbol() map[Symbol]int {
	out := make(map[Symbol]int, len(r.Codes))
	for sym, hc := range r.Codes {
		out[sym] = hc.Len()
	}
	return out
}

// ExpectedLength returns the average number of bits per Symbol, weighted by
// probability.
func (r *Result) ExpectedLength() float64 {
	var sum float64
	for _, sym := range r.Symbols() {
		sum += r.Probabilities[sym] * float64(r.Codes[sym].Len())
	}
	return sum
}

// Entropy returns the Shannon entropy of the probability distribution, in
// bits per Symbol.  No prefix code can have an ExpectedLength below it.
func (r *Result) Entropy() float64 {
	var sum float64
	for _, sym := range sortedSymbols(r.Probabilities) {
		p := r.Probabilities[sym]
		sum -= p * math.Log2(p)
	}
	return sum
}

// Fingerprint returns a 64-bit digest of the code table.  Two Results have
// the same Fingerprint if they assign the same Codes to the same Symbols.
func (r *Result) Fingerprint() uint64 {
	d := xxhash.New()
	var tmp [4]byte
	for _, sym := range r.Symbols() {
		tmp[0] = byte(sym)
		tmp[1] = byte(sym >> 8)
		tmp[2] = byte(sym >> 16)
		tmp[3] = byte(sym >> 24)
		_, _ = d.Write(tmp[:])
		_, _ = d.WriteString(string(r.Codes[sym]))
		_, _ = d.Write([]byte{':'})
	}
	return d.Sum64()
}

// Dump writes a programmer-readable debugging dump of the Result to the given
// writer.
func (r *Result) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Result{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", r.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", r.maxSize)
	fmt.Fprintf(&buf, "\tRoot = %v\n", r.Root)
	for _, sym := range sortedSymbols(r.Frequencies) {
		hc, found := r.Codes[sym]
		if !found {
			fmt.Fprintf(&buf, "\tEncode(%q) = nil\n", rune(sym))
		} else {
			fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", rune(sym), hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
