package huffcode

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Normalize converts a table of occurrence counts into a table of
// probabilities, count / sum(counts).
//
// Symbols with a count of 0 never occur, so they are omitted from the result
// and receive no code.  Normalize fails with ErrInvalidInput if counts is
// empty, if every count is 0, or if the counts overflow a uint64 when summed.
//
func Normalize(counts FrequencyTable) (ProbabilityTable, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: empty frequency table", ErrInvalidInput)
	}

	var total uint64
	var numNonZero int
	for sym, count := range counts {
		if count == 0 {
			continue
		}
		sum := total + count
		if sum < total {
			return nil, fmt.Errorf("%w: total count overflows at symbol %q", ErrInvalidInput, rune(sym))
		}
		total = sum
		numNonZero++
	}

	if total == 0 {
		return nil, fmt.Errorf("%w: all %d counts are zero", ErrInvalidInput, len(counts))
	}

	probs := make(ProbabilityTable, numNonZero)
	for sym, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		assert.Assertf(p > 0 && p <= 1 && !math.IsNaN(p), "probability %v for symbol %q out of range", p, rune(sym))
		probs[sym] = p
	}
	return probs, nil
}
