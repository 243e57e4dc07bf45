package batch

import (
	"bytes"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/az-ai-labs/langid/detector"
	"github.com/az-ai-labs/langid/internal/fraction"
	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/model"
	"github.com/az-ai-labs/langid/segment"
)

func encodeOrder1(t *testing.T, language lang.Language, byFraction map[fraction.Fraction][]ngram.Ngram) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := model.EncodeFractions(&buf, language, byFraction); err != nil {
		t.Fatalf("EncodeFractions: %v", err)
	}
	return buf.Bytes()
}

func testDetector(t *testing.T) *detector.Detector {
	t.Helper()
	fsys := fstest.MapFS{
		"eng/1grams.json.br": &fstest.MapFile{Data: encodeOrder1(t, lang.ENGLISH, map[fraction.Fraction][]ngram.Ngram{
			fraction.New(1, 2): {"e", "t"},
			fraction.New(1, 4): {"h", "r"},
		})},
		"deu/1grams.json.br": &fstest.MapFile{Data: encodeOrder1(t, lang.GERMAN, map[fraction.Fraction][]ngram.Ngram{
			fraction.New(1, 2): {"e", "r"},
			fraction.New(1, 4): {"g", "o"},
		})},
	}
	d, err := detector.FromLanguages(lang.ENGLISH, lang.GERMAN).WithModelSource(fsys).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return d
}

func TestDetectLanguagesInParallelOfPreservesOrder(t *testing.T) {
	t.Parallel()

	d := testDetector(t)
	texts := make([]string, 40)
	for i := range texts {
		if i%2 == 0 {
			texts[i] = "there"
		} else {
			texts[i] = "groß"
		}
	}

	results := DetectLanguagesInParallelOf(d, texts)
	if len(results) != len(texts) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(texts))
	}
	for i, r := range results {
		wantL, wantOK := d.DetectLanguageOf(texts[i])
		if r.Language != wantL || r.Found != wantOK {
			t.Errorf("texts[%d] = %q: got (%v,%v), want (%v,%v)", i, texts[i], r.Language, r.Found, wantL, wantOK)
		}
	}
}

func TestComputeLanguageConfidenceValuesInParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	d := testDetector(t)
	texts := []string{"there", "groß", "here", "über"}

	got := ComputeLanguageConfidenceValuesInParallel(d, texts)
	if len(got) != len(texts) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(texts))
	}
	for i, text := range texts {
		want := d.ComputeLanguageConfidenceValues(text)
		if len(got[i]) != len(want) {
			t.Errorf("text %q: len(got) = %d, want %d", text, len(got[i]), len(want))
			continue
		}
		for j := range want {
			if got[i][j] != want[j] {
				t.Errorf("text %q value[%d] = %v, want %v", text, j, got[i][j], want[j])
			}
		}
	}
}

func TestComputeLanguageConfidenceInParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	d := testDetector(t)
	texts := []string{"there", "groß", "here"}

	got := ComputeLanguageConfidenceInParallel(d, texts, lang.ENGLISH)
	for i, text := range texts {
		want := d.ComputeLanguageConfidence(text, lang.ENGLISH)
		if got[i] != want {
			t.Errorf("text %q: got %v, want %v", text, got[i], want)
		}
	}
}

func TestDetectMultipleLanguagesInParallelOfPreservesOrder(t *testing.T) {
	t.Parallel()

	d := testDetector(t)
	texts := []string{"there where here", "groß und weiter"}

	got := DetectMultipleLanguagesInParallelOf(d, texts)
	if len(got) != len(texts) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(texts))
	}
	for i, text := range texts {
		want := segment.DetectMultipleLanguagesOf(d, text)
		if !reflect.DeepEqual(got[i], want) {
			t.Errorf("text %q: got %v, want %v", text, got[i], want)
		}
	}
}

func TestRunWithZeroInputsDoesNothing(t *testing.T) {
	t.Parallel()

	d := testDetector(t)
	if got := DetectLanguagesInParallelOf(d, nil); len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}
