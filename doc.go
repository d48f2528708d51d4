// Package huffcode computes Huffman codes for a fixed alphabet from
// per-symbol occurrence counts.
//
// Build runs the whole pipeline: counts are normalized into probabilities,
// the two least probable nodes are merged repeatedly until a single tree
// remains, and the tree is walked to produce a prefix-free table mapping
// each Symbol to a bit string.  Packing those bit strings into bytes is left
// to the caller.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.mnc.toho-u.ac.jp/v-lab/yobology/Huffman_code/Huffman_code.htm>
//
package huffcode
