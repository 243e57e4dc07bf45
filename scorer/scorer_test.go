package scorer

import (
	"bytes"
	"math"
	"testing"
	"testing/fstest"

	"github.com/az-ai-labs/langid/internal/fraction"
	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/model"
)

func encodeOrder(t *testing.T, language lang.Language, order int, byFraction map[fraction.Fraction][]ngram.Ngram) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := model.EncodeFractions(&buf, language, byFraction); err != nil {
		t.Fatalf("EncodeFractions: %v", err)
	}
	return buf.Bytes()
}

func TestScoreFavorsLanguageWithMatchingNgrams(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"eng/1grams.json.br": &fstest.MapFile{Data: encodeOrder(t, lang.ENGLISH, 1, map[fraction.Fraction][]ngram.Ngram{
			fraction.New(9, 10): {"e", "t", "h"},
		})},
		"deu/1grams.json.br": &fstest.MapFile{Data: encodeOrder(t, lang.GERMAN, 1, map[fraction.Fraction][]ngram.Ngram{
			fraction.New(9, 10): {"g", "r", "o"},
		})},
	}
	store := model.NewStore(fsys)

	scores, evidence, err := Score("the", []lang.Language{lang.ENGLISH, lang.GERMAN}, nil, Config{}, store)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if !evidence {
		t.Error("evidence = false, want true: at least one lookup matched")
	}
	if scores[lang.ENGLISH] <= scores[lang.GERMAN] {
		t.Fatalf("scores = %v, want ENGLISH score greater (less negative) than GERMAN", scores)
	}
}

func TestScoreReportsNoEvidenceWhenNoTablesMatch(t *testing.T) {
	t.Parallel()

	store := model.NewStore(fstest.MapFS{})

	scores, evidence, err := Score("xyz", []lang.Language{lang.ENGLISH, lang.GERMAN}, nil, Config{}, store)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if evidence {
		t.Error("evidence = true, want false: no model data exists for either candidate")
	}
	if scores[lang.ENGLISH] != scores[lang.GERMAN] {
		t.Errorf("scores = %v, want equal no-evidence floors for both candidates", scores)
	}
}

func TestScoreFallsBackToLowerOrderOnMiss(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		// Order-2 table has no "th" bigram; order-1 table has a strong
		// unigram prior for 't'. The fallback should find the order-1 entry
		// rather than collapsing straight to noEvidenceLogProb.
		"eng/1grams.json.br": &fstest.MapFile{Data: encodeOrder(t, lang.ENGLISH, 1, map[fraction.Fraction][]ngram.Ngram{
			fraction.New(1, 2): {"t"},
		})},
		"eng/2grams.json.br": &fstest.MapFile{Data: encodeOrder(t, lang.ENGLISH, 2, map[fraction.Fraction][]ngram.Ngram{
			fraction.New(1, 2): {"zz"},
		})},
	}
	store := model.NewStore(fsys)

	scores, _, err := Score("th", []lang.Language{lang.ENGLISH}, nil, Config{}, store)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	// "th" yields n-grams at orders 1 and 2 only. Without fallback, "h" and
	// "th" would both miss; the order-1 fallback turns the "th" miss into a
	// hit on "t", so the score must beat that no-fallback total.
	worstCase := math.Log(0.5) + 2*noEvidenceLogProb
	if scores[lang.ENGLISH] <= worstCase {
		t.Errorf("score %v fell through to pure no-evidence, want fallback hit to raise it", scores[lang.ENGLISH])
	}
}

func TestScoreLowAccuracyModeOnlyUsesTrigrams(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"eng/3grams.json.br": &fstest.MapFile{Data: encodeOrder(t, lang.ENGLISH, 3, map[fraction.Fraction][]ngram.Ngram{
			fraction.New(1, 1): {"the"},
		})},
	}
	store := model.NewStore(fsys)

	scores, _, err := Score("the", []lang.Language{lang.ENGLISH}, nil, Config{LowAccuracyMode: true}, store)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if scores[lang.ENGLISH] != 0 {
		t.Errorf("score = %v, want 0 (log(1.0) for the single trigram match)", scores[lang.ENGLISH])
	}
}

func TestScoreAppliesPriors(t *testing.T) {
	t.Parallel()

	store := model.NewStore(fstest.MapFS{})

	priors := map[lang.Language]float64{lang.ENGLISH: 50.0}
	scores, _, err := Score("xyz", []lang.Language{lang.ENGLISH, lang.GERMAN}, priors, Config{}, store)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if scores[lang.ENGLISH] <= scores[lang.GERMAN] {
		t.Fatalf("scores = %v, want prior to push ENGLISH above GERMAN", scores)
	}
}
