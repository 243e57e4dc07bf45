// Package rules short-circuits probability scoring when a text's n-grams
// already point decisively at one language, and otherwise produces a small
// per-language prior to feed into the full scorer.
//
// Two rules are consulted, mirroring the teacher's hybrid-detection control
// flow in detect.DetectAll (character-set scoring as the primary path, a
// trigram-cosine fallback only when the primary signal is ambiguous):
//
//   - Unique-ngram rule: a token containing an n-gram found in exactly one
//     surviving candidate's unique lexicon votes for that language.
//   - Most-common-ngram rule: each candidate gets a small bias proportional
//     to how many of its most-common n-grams appear in the text.
//
// All functions are safe for concurrent use by multiple goroutines.
package rules

import (
	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/model"
)

// mostCommonOrder is the n-gram order consulted by the most-common-ngram
// rule; trigrams carry the most per-language discriminating power of any
// single order without the data sparsity of 4-/5-grams.
const mostCommonOrder = 3

// mostCommonBias is the score contributed per matching most-common n-gram,
// kept small relative to uniqueBoostScore (see package script) so this rule
// only nudges the scorer rather than overriding it.
const mostCommonBias = 0.1

// Result is the outcome of applying the rule engine to a text.
type Result struct {
	// Decisive is non-nil when the unique-ngram rule found a strictly
	// dominant language: vote count >= 2 and the runner-up has 0 votes.
	// Callers should return Decisive directly with confidence 1.0, per
	// spec, without consulting the probability scorer at all.
	Decisive *lang.Language

	// Priors holds a per-language bias to merge into the scorer's raw
	// scores when Decisive is nil. Languages with no signal are absent
	// (equivalent to a zero prior).
	Priors map[lang.Language]float64
}

// Apply runs the unique-ngram and most-common-ngram rules over tokens
// (whitespace-delimited words already extracted from the input text) against
// the surviving candidates, consulting store for each candidate's lexicons.
func Apply(tokens []string, candidates []lang.Language, store *model.Store) (Result, error) {
	votes := make(map[lang.Language]int, len(candidates))
	priors := make(map[lang.Language]float64, len(candidates))

	uniqueSets := make(map[lang.Language]map[ngram.Ngram]bool, len(candidates))
	for _, l := range candidates {
		set, err := store.LoadUniqueNgrams(l)
		if err != nil {
			return Result{}, err
		}
		uniqueSets[l] = set
	}

	for _, tok := range tokens {
		for order := ngram.MinOrder; order <= ngram.MaxOrder; order++ {
			for _, g := range ngram.Extract(tok, order) {
				if owner, ok := uniqueOwner(g, candidates, uniqueSets); ok {
					votes[owner]++
				}
			}
		}
	}

	if decisive, ok := dominantVote(votes); ok {
		return Result{Decisive: &decisive}, nil
	}

	for _, l := range candidates {
		common, err := store.LoadMostCommonNgrams(l, mostCommonOrder)
		if err != nil {
			return Result{}, err
		}
		if len(common) == 0 {
			continue
		}
		commonSet := make(map[ngram.Ngram]bool, len(common))
		for _, g := range common {
			commonSet[g] = true
		}
		for _, tok := range tokens {
			for _, g := range ngram.Extract(tok, mostCommonOrder) {
				if commonSet[g] {
					priors[l] += mostCommonBias
				}
			}
		}
	}

	for l, v := range votes {
		priors[l] += float64(v)
	}

	return Result{Priors: priors}, nil
}

// uniqueOwner reports the single candidate whose unique lexicon contains g,
// or false if zero or more than one candidate claims it.
func uniqueOwner(g ngram.Ngram, candidates []lang.Language, uniqueSets map[lang.Language]map[ngram.Ngram]bool) (lang.Language, bool) {
	var owner lang.Language
	found := 0
	for _, l := range candidates {
		if uniqueSets[l][g] {
			owner = l
			found++
			if found > 1 {
				return 0, false
			}
		}
	}
	if found == 1 {
		return owner, true
	}
	return 0, false
}

// dominantVote reports whether one language has at least 2 votes while
// every other language has 0, the spec's "strictly dominant" condition.
func dominantVote(votes map[lang.Language]int) (lang.Language, bool) {
	var best lang.Language
	bestCount := 0
	contenders := 0
	for l, v := range votes {
		if v <= 0 {
			continue
		}
		contenders++
		if v > bestCount {
			best = l
			bestCount = v
		}
	}
	if contenders == 1 && bestCount >= 2 {
		return best, true
	}
	return 0, false
}
