package train

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/langiderr"
	"github.com/az-ai-labs/langid/model"
)

// MostCommonNgramsWriter picks, per language, the Amount most frequent
// n-grams of Order from an already-built model.Store and writes them as
// the lexicon rules.Apply consults for its most-common-ngram prior.
type MostCommonNgramsWriter struct {
	Store     *model.Store
	Order     int
	OutputDir string
	Amount    int
}

// Write emits one lexicon file per language in languages, under
// OutputDir/<iso 639-1>/mostcommon-<Order>.json.br.
func (w MostCommonNgramsWriter) Write(languages []lang.Language) error {
	if len(languages) == 0 {
		return langiderr.EmptyTrainLanguageSet()
	}
	if w.Amount <= 0 {
		return langiderr.EmptyMostCommonCount()
	}

	for _, l := range languages {
		m, err := w.Store.Load(l, w.Order)
		if err != nil {
			return fmt.Errorf("train: most common ngrams for %s: %w", l, err)
		}

		dir := filepath.Join(w.OutputDir, l.IsoCode639_1())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("mostcommon-%d.json.br", w.Order)))
		if err != nil {
			return err
		}
		err = model.EncodeNgramList(f, l, topByFrequency(m.Probabilities, w.Amount))
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// topByFrequency returns the amount highest-probability n-grams in probs.
// EncodeNgramList re-sorts ASCII-ascending before writing, so the order
// returned here only needs to get the cutoff right.
func topByFrequency(probs map[ngram.Ngram]float64, amount int) []ngram.Ngram {
	all := make([]ngram.Ngram, 0, len(probs))
	for g := range probs {
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool {
		if probs[all[i]] != probs[all[j]] {
			return probs[all[i]] > probs[all[j]]
		}
		return all[i] < all[j]
	})
	if amount < len(all) {
		all = all[:amount]
	}
	return all
}
