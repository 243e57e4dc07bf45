package detector

import (
	"cmp"
	"slices"

	"github.com/az-ai-labs/langid/confidence"
	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/model"
	"github.com/az-ai-labs/langid/rules"
	"github.com/az-ai-labs/langid/script"
	"github.com/az-ai-labs/langid/scorer"
)

// Detector classifies text against the candidate set it was built with. It
// is immutable after Builder.Build and safe for concurrent use.
type Detector struct {
	candidates  []lang.Language
	minDistance float64
	lowAccuracy bool
	store       *model.Store
}

// Candidates returns the detector's candidate language set, in Builder
// order (not sorted), for callers that need to know the closed world a
// Detector classifies within.
func (d *Detector) Candidates() []lang.Language {
	out := make([]lang.Language, len(d.candidates))
	copy(out, d.candidates)
	return out
}

// DetectLanguageOf returns the most likely language of text and true, or
// (zero value, false) when there is no evidence or the top two candidates'
// confidences are closer than the configured minimum relative distance.
func (d *Detector) DetectLanguageOf(text string) (lang.Language, bool) {
	values := d.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 || values[0].Value == 0 {
		return 0, false
	}
	if d.minDistance > 0 && confidence.RelativeDistance(values) < d.minDistance {
		return 0, false
	}
	return values[0].Language, true
}

// ComputeLanguageConfidenceValues returns one Value per candidate language,
// descending by confidence with Language-lexicographic tie-breaking. Values
// sum to 1.0 (within floating point error) unless no evidence was found, in
// which case every value is 0.0.
func (d *Detector) ComputeLanguageConfidenceValues(text string) []confidence.Value {
	decisive, scores, evidence := d.scoreSurvivors(text)

	if decisive != nil {
		// Decisive rule match: the one decisive language gets full
		// confidence, everyone else 0. Built directly rather than routed
		// through Normalize, whose weighting divides by each candidate's
		// raw score and assumes negative log-probability inputs — a hard 0
		// score for every loser here would divide by zero instead of
		// producing the flat loser value Normalize is meant to produce for
		// genuine log-probability ties.
		return resort(flatValues(d.candidates, *decisive, 1.0))
	}

	if !evidence {
		// No candidate is viable (no script overlap) or no n-gram lookup
		// succeeded for any of them: every value is 0, and this must not
		// be routed through Normalize either — a tie among scores built
		// entirely from noEvidenceLogProb floors is not the same thing as
		// a tie between candidates with real, equal evidence, and only the
		// former collapses to zero.
		return resort(flatValues(d.candidates, 0, 0.0))
	}

	normalized := confidence.Normalize(scores)
	have := make(map[lang.Language]bool, len(normalized))
	for _, v := range normalized {
		have[v.Language] = true
	}
	for _, l := range d.candidates {
		if !have[l] {
			normalized = append(normalized, confidence.Value{Language: l, Value: 0})
		}
	}
	return resort(normalized)
}

// flatValues builds one Value per candidate in candidates, giving winner a
// value of winnerValue and every other candidate 0. Passing the zero
// lang.Language as winner with winnerValue 0 yields an all-zero result.
func flatValues(candidates []lang.Language, winner lang.Language, winnerValue float64) []confidence.Value {
	values := make([]confidence.Value, 0, len(candidates))
	for _, l := range candidates {
		v := 0.0
		if winnerValue != 0 && l == winner {
			v = winnerValue
		}
		values = append(values, confidence.Value{Language: l, Value: v})
	}
	return values
}

// ComputeLanguageConfidence returns l's confidence value for text, or 0.0
// when l is not in the candidate set.
func (d *Detector) ComputeLanguageConfidence(text string, l lang.Language) float64 {
	for _, v := range d.ComputeLanguageConfidenceValues(text) {
		if v.Language == l {
			return v.Value
		}
	}
	return 0
}

// scoreSurvivors runs the script filter and rule engine, then either
// returns a decisive single-language result (decisive non-nil) or the raw
// scorer output over the script-filtered candidates, plus whether that
// output carries any actual n-gram evidence.
func (d *Detector) scoreSurvivors(text string) (decisive *lang.Language, scores map[lang.Language]float64, evidence bool) {
	survivors, _ := script.FilterCandidates(text, d.candidates)
	if len(survivors) == 0 {
		return nil, nil, false
	}

	tokens := ngram.Tokens(ngram.Lowered(text))
	result, err := rules.Apply(tokens, survivors, d.store)
	if err != nil {
		// Data-absence must never surface as an error (no panic path in
		// the detection hot loop); treat a lexicon I/O failure as no
		// evidence for the affected rule and fall through to scoring.
		result = rules.Result{}
	}
	if result.Decisive != nil {
		return result.Decisive, nil, false
	}

	priors := result.Priors
	for l, boost := range script.UniqueCharacterBoost(text, survivors) {
		if priors == nil {
			priors = make(map[lang.Language]float64, len(survivors))
		}
		priors[l] += boost
	}

	cfg := scorer.Config{LowAccuracyMode: d.lowAccuracy}
	scores, hasEvidence, err := scorer.Score(text, survivors, priors, cfg, d.store)
	if err != nil {
		return nil, nil, false
	}
	return nil, scores, hasEvidence
}

func resort(values []confidence.Value) []confidence.Value {
	slices.SortStableFunc(values, func(a, b confidence.Value) int {
		if a.Value != b.Value {
			return cmp.Compare(b.Value, a.Value)
		}
		return a.Language.Compare(b.Language)
	})
	return values
}
