package huffcode

import (
	"sort"
)

// Symbol represents a symbol in the alphabet being coded.
type Symbol rune

// FrequencyTable maps each Symbol to its number of occurrences.
type FrequencyTable map[Symbol]uint64

// ProbabilityTable maps each Symbol to its probability of occurrence.
type ProbabilityTable map[Symbol]float64

// sortedSymbols returns the keys of m in ascending order.
func sortedSymbols[V any](m map[Symbol]V) []Symbol {
	out := make(bySymbol, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	out.Sort()
	return out
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
