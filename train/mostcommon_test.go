package train

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/langiderr"
	"github.com/az-ai-labs/langid/model"
)

func TestMostCommonNgramsWriterRejectsEmptyLanguageSet(t *testing.T) {
	t.Parallel()

	w := MostCommonNgramsWriter{Store: model.NewStore(fstest.MapFS{}), Order: 3, OutputDir: t.TempDir(), Amount: 100}
	if err := w.Write(nil); !errors.Is(err, langiderr.ErrEmptyTrainLanguageSet) {
		t.Fatalf("err = %v, want ErrEmptyTrainLanguageSet", err)
	}
}

func TestMostCommonNgramsWriterRejectsZeroAmount(t *testing.T) {
	t.Parallel()

	w := MostCommonNgramsWriter{Store: model.NewStore(fstest.MapFS{}), Order: 3, OutputDir: t.TempDir(), Amount: 0}
	if err := w.Write([]lang.Language{lang.ENGLISH}); !errors.Is(err, langiderr.ErrEmptyMostCommonCount) {
		t.Fatalf("err = %v, want ErrEmptyMostCommonCount", err)
	}
}

func TestMostCommonNgramsWriterWritesUnderIsoCode639_1Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	modelDir := filepath.Join(dir, "models")
	if err := os.MkdirAll(modelDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := CreateAndWriteLanguageModelFiles(writeTemp(t, dir, "corpus.txt", "the cat sat on the mat with the rat"), modelDir, lang.ENGLISH, letterClass); err != nil {
		t.Fatalf("CreateAndWriteLanguageModelFiles: %v", err)
	}

	// model.FileName is the single source of truth for both the writer and
	// Store.Load, so the freshly written tree is loadable with no renaming.
	store := model.NewStore(os.DirFS(modelDir))

	outputDir := t.TempDir()
	w := MostCommonNgramsWriter{Store: store, Order: 1, OutputDir: outputDir, Amount: 3}
	if err := w.Write([]lang.Language{lang.ENGLISH}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lexiconPath := filepath.Join(outputDir, lang.ENGLISH.IsoCode639_1(), "mostcommon-1.json.br")
	f, err := os.Open(lexiconPath)
	if err != nil {
		t.Fatalf("Open(%s): %v", lexiconPath, err)
	}
	defer f.Close()

	language, grams, err := model.DecodeNgramList(f)
	if err != nil {
		t.Fatalf("DecodeNgramList: %v", err)
	}
	if language != lang.ENGLISH {
		t.Errorf("language = %v, want ENGLISH", language)
	}
	if len(grams) != 3 {
		t.Errorf("len(grams) = %d, want 3", len(grams))
	}
}
