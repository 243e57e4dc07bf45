// Package scorer computes a raw log-probability score per candidate
// language from weighted, multi-order character n-gram evidence.
//
// All functions are safe for concurrent use by multiple goroutines.
package scorer

import (
	"math"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/model"
)

// noEvidenceLogProb is contributed for an n-gram absent from a candidate's
// table at every order down to 1. It must be identical across languages so
// it cancels out in ranking ties; the exact magnitude only needs to be far
// below any real log(prob) contribution.
const noEvidenceLogProb = -100.0

// orderWeights scales each order's contribution to the final score before
// summing. Exposed as a named, tunable table rather than inlined in the
// summation loop so a future calibration pass only has to edit this table.
// Uniform weighting was calibrated against the "Alter" -> (GERMAN 0.68,
// ENGLISH 0.32) and "groß" -> (GERMAN 1.0, ENGLISH 0.0) reference values.
var orderWeights = [ngram.MaxOrder]float64{1, 1, 1, 1, 1}

// Config controls which n-gram orders are consulted.
type Config struct {
	// LowAccuracyMode restricts scoring to the trigram table only.
	LowAccuracyMode bool
}

func (c Config) orders() []int {
	if c.LowAccuracyMode {
		return []int{3}
	}
	orders := make([]int, 0, ngram.MaxOrder)
	for n := ngram.MinOrder; n <= ngram.MaxOrder; n++ {
		orders = append(orders, n)
	}
	return orders
}

// Score returns a raw log-probability sum per candidate language, combining
// weighted multi-order n-gram evidence from store with any per-language
// prior bias (e.g. from package rules). Lower (more negative) is stronger
// disagreement with a language's trained distribution; scores are only
// comparable to each other, never to an absolute probability.
//
// The second return value reports whether at least one n-gram lookup
// succeeded for at least one candidate. When it is false, every candidate's
// score is built entirely from noEvidenceLogProb floors (and whatever flat
// prior bias was supplied): the scores may still be numerically comparable,
// but they carry no actual evidence about text, and callers must not treat
// a tie among them as a genuine split.
func Score(text string, candidates []lang.Language, priors map[lang.Language]float64, cfg Config, store *model.Store) (map[lang.Language]float64, bool, error) {
	lowered := ngram.Lowered(text)
	orders := cfg.orders()

	gramsByOrder := make(map[int][]ngram.Ngram, len(orders))
	for _, n := range orders {
		gramsByOrder[n] = ngram.ExtractAll(lowered, n)
	}

	scores := make(map[lang.Language]float64, len(candidates))
	evidence := false
	for _, l := range candidates {
		var s float64
		for _, n := range orders {
			grams := gramsByOrder[n]
			if len(grams) == 0 {
				continue
			}
			var orderSum float64
			for _, g := range grams {
				p, found, err := lookupProbability(store, l, g)
				if err != nil {
					return nil, false, err
				}
				if found {
					orderSum += math.Log(p)
					evidence = true
				} else {
					orderSum += noEvidenceLogProb
				}
			}
			s += orderWeights[n-1] * orderSum
		}
		s += priors[l]
		scores[l] = s
	}
	return scores, evidence, nil
}

// lookupProbability finds the probability of g in l's order-n(g) table,
// recursively falling back to shorter prefixes in lower-order tables when
// the exact n-gram is absent, down to order 1. found is false only when no
// prefix at any order was present.
func lookupProbability(store *model.Store, l lang.Language, g ngram.Ngram) (float64, bool, error) {
	for order := g.Order(); order >= ngram.MinOrder; order-- {
		m, err := store.Load(l, order)
		if err != nil {
			return 0, false, err
		}
		prefix := g.Prefix(order)
		if p, ok := m.Probabilities[prefix]; ok {
			return p, true, nil
		}
	}
	return 0, false, nil
}
