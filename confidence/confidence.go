// Package confidence turns a candidate language's raw log-probability score
// into a normalized [0,1] value comparable across the whole candidate set,
// and measures how decisively the top candidate beats the runner-up.
//
// All functions are safe for concurrent use by multiple goroutines.
package confidence

import (
	"sort"

	"github.com/az-ai-labs/langid/lang"
)

// Value pairs a Language with its normalized confidence. Equality compares
// both fields exactly.
type Value struct {
	Language lang.Language
	Value    float64
}

// Normalize converts raw (negative) log-probability scores into a
// descending, sum-to-one confidence list, one entry per key in scores, with
// Language-lexicographic tie-breaking.
//
// Normalize assumes scores carries genuine evidence: callers that scored no
// n-gram evidence at all (e.g. text in a script none of the candidates'
// tables recognize) must not call Normalize and should report an all-zero
// result directly instead — Normalize itself cannot tell "every candidate
// tied because there is no evidence" apart from "every candidate tied with
// equal, real evidence", and only the latter is a genuine split. When every
// score is equal, Normalize gives every candidate weight 1, so they all
// receive an even 1/n share rather than collapsing to 0.
func Normalize(scores map[lang.Language]float64) []Value {
	languages := make([]lang.Language, 0, len(scores))
	for l := range scores {
		languages = append(languages, l)
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Compare(languages[j]) < 0
	})

	// sMax is the least-negative (best) raw score. Weighting every
	// candidate against sMax, rather than against the worst score, is what
	// makes the best candidate's weight equal 1 and every weaker
	// candidate's weight a fraction below it: dividing two same-signed
	// negative numbers by the smaller-magnitude one inflates the larger
	// magnitude (worse) numbers instead of suppressing them.
	sMax := scores[languages[0]]
	for _, l := range languages {
		if scores[l] > sMax {
			sMax = scores[l]
		}
	}

	weights := make(map[lang.Language]float64, len(languages))
	var total float64
	for _, l := range languages {
		var w float64
		if scores[l] == sMax {
			// Avoids a 0/0 NaN when the best score is itself exactly 0
			// (a perfect, fully-confident match).
			w = 1
		} else {
			w = sMax / scores[l]
		}
		weights[l] = w
		total += w
	}

	values := make([]Value, len(languages))
	for i, l := range languages {
		values[i] = Value{Language: l, Value: weights[l] / total}
	}

	sort.SliceStable(values, func(i, j int) bool {
		if values[i].Value != values[j].Value {
			return values[i].Value > values[j].Value
		}
		return values[i].Language.Compare(values[j].Language) < 0
	})
	return values
}

// RelativeDistance returns the gap between the top two confidences in
// values, which must already be sorted descending (as Normalize returns
// them). Returns 0 when fewer than two values are present.
func RelativeDistance(values []Value) float64 {
	if len(values) < 2 {
		return 0
	}
	return values[0].Value - values[1].Value
}
