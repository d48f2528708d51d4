package huffcode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	type testRow struct {
		name   string
		counts FrequencyTable
		expect string
	}

	testData := [...]testRow{
		{
			name:   "letters",
			counts: makeLetterCounts(),
			expect: `["A",["B",[["C","D"],["E",["F",["G","H"]]]]]]`,
		},
		{
			name:   "six symbols",
			counts: FrequencyTable{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45},
			expect: `["f",[["e",["b","a"]],["d","c"]]]`,
		},
		{
			name:   "two symbols",
			counts: FrequencyTable{'a': 1, 'b': 1},
			expect: `["b","a"]`,
		},
		{
			name:   "four equal symbols",
			counts: FrequencyTable{'a': 1, 'b': 1, 'c': 1, 'd': 1},
			expect: `[["d","c"],["b","a"]]`,
		},
		{
			name:   "single symbol",
			counts: FrequencyTable{'x': 7},
			expect: `"x"`,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			probs, err := Normalize(row.counts)
			require.NoError(t, err)

			root, err := BuildTree(probs)
			require.NoError(t, err)
			require.Equal(t, row.expect, root.String())
			require.InDelta(t, 1.0, root.Probability(), 1e-9)
		})
	}
}

func TestBuildTree_ChildOrdering(t *testing.T) {
	// H and G merge first as two leaves, so G (picked second) comes
	// first.  The merged node is then the least probable node and F is
	// the second, so F comes first again.  E is a leaf paired with an
	// internal node as least, so E stays first.
	probs, err := Normalize(FrequencyTable{'E': 5, 'F': 4, 'G': 2, 'H': 1})
	require.NoError(t, err)

	root, err := BuildTree(probs)
	require.NoError(t, err)

	in, ok := root.(*Internal)
	require.True(t, ok)
	require.Equal(t, `"E"`, in.First.String())
	require.Equal(t, `["F",["G","H"]]`, in.Second.String())
}

func TestBuildTree_InternalProbabilities(t *testing.T) {
	probs, err := Normalize(makeLetterCounts())
	require.NoError(t, err)

	root, err := BuildTree(probs)
	require.NoError(t, err)

	var walk func(node Node)
	walk = func(node Node) {
		in, ok := node.(*Internal)
		if !ok {
			return
		}
		require.InDelta(t, in.First.Probability()+in.Second.Probability(), in.Probability(), 1e-12)
		walk(in.First)
		walk(in.Second)
	}
	walk(root)
}

func TestBuildTree_Errors(t *testing.T) {
	tests := []struct {
		name  string
		probs ProbabilityTable
	}{
		{"nil table", nil},
		{"empty table", ProbabilityTable{}},
		{"zero probability", ProbabilityTable{'a': 0, 'b': 1}},
		{"negative probability", ProbabilityTable{'a': -0.5, 'b': 1}},
		{"probability above one", ProbabilityTable{'a': 1.5}},
		{"NaN probability", ProbabilityTable{'a': math.NaN(), 'b': 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := BuildTree(tt.probs)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.Nil(t, root)
		})
	}
}
