package train

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/langiderr"
	"github.com/az-ai-labs/langid/model"
)

// dirFor joins outputDir with the ISO 639-3 subdirectory CreateAndWrite
// LanguageModelFiles writes language's files under.
func dirFor(outputDir string, language lang.Language) string {
	return filepath.Join(outputDir, language.IsoCode639_3())
}

var letterClass = regexp.MustCompile(`\p{L}`)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestCreateAndWriteLanguageModelFilesProducesFiveFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTemp(t, dir, "corpus.txt", "these sentences are intended for testing purposes")

	if err := CreateAndWriteLanguageModelFiles(input, dir, lang.ENGLISH, letterClass); err != nil {
		t.Fatalf("CreateAndWriteLanguageModelFiles: %v", err)
	}

	for n := ngram.MinOrder; n <= ngram.MaxOrder; n++ {
		path := filepath.Join(dir, model.FileName(lang.ENGLISH, n))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}

func TestCreateAndWriteLanguageModelFilesRoundTrips(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTemp(t, dir, "corpus.txt", "the the the cat sat on the mat")

	if err := CreateAndWriteLanguageModelFiles(input, dir, lang.ENGLISH, letterClass); err != nil {
		t.Fatalf("CreateAndWriteLanguageModelFiles: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, model.FileName(lang.ENGLISH, 1)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	m, err := model.Decode(f, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Language != lang.ENGLISH {
		t.Errorf("Language = %v, want ENGLISH", m.Language)
	}
	if _, ok := m.Probabilities[ngram.Ngram("t")]; !ok {
		t.Error("expected unigram 't' to be present")
	}
}

// TestCreateAndWriteLanguageModelFilesLoadableByStore proves the tree this
// writes needs no renaming step: a Store rooted at the same output
// directory loads it directly via model.FileName's shared path scheme.
func TestCreateAndWriteLanguageModelFilesLoadableByStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTemp(t, dir, "corpus.txt", "the the the cat sat on the mat")

	if err := CreateAndWriteLanguageModelFiles(input, dir, lang.ENGLISH, letterClass); err != nil {
		t.Fatalf("CreateAndWriteLanguageModelFiles: %v", err)
	}

	store := model.NewStore(os.DirFS(dir))
	m, err := store.Load(lang.ENGLISH, 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := m.Probabilities[ngram.Ngram("t")]; !ok {
		t.Error("expected unigram 't' to be present when loaded through Store")
	}
}

func TestCreateAndWriteLanguageModelFilesWritesReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTemp(t, dir, "corpus.txt", "the the the cat sat on the mat")

	if err := CreateAndWriteLanguageModelFiles(input, dir, lang.ENGLISH, letterClass); err != nil {
		t.Fatalf("CreateAndWriteLanguageModelFiles: %v", err)
	}

	report, err := os.ReadFile(filepath.Join(dirFor(dir, lang.ENGLISH), "report.txt"))
	if err != nil {
		t.Fatalf("ReadFile(report.txt): %v", err)
	}
	if len(report) == 0 {
		t.Fatal("report.txt is empty, want at least one order-1 line for a non-empty corpus")
	}
	if !strings.Contains(string(report), "1\tt\t") {
		t.Errorf("report = %q, want a line for the most frequent unigram 't'", report)
	}
}

func TestCreateAndWriteLanguageModelFilesRejectsRelativeInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CreateAndWriteLanguageModelFiles("relative/path.txt", dir, lang.ENGLISH, letterClass)
	if err == nil || err.Error() != "Input file path 'relative/path.txt' is not absolute" {
		t.Fatalf("err = %v, want exact absolute-path message", err)
	}
	if !errors.Is(err, langiderr.ErrInputNotAbsolute) {
		t.Error("err does not match langiderr.ErrInputNotAbsolute via errors.Is semantics")
	}
}

func TestCreateAndWriteLanguageModelFilesRejectsMissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.txt")
	err := CreateAndWriteLanguageModelFiles(missing, dir, lang.ENGLISH, letterClass)
	if !errors.Is(err, langiderr.ErrInputNotFound) {
		t.Fatalf("err = %v, want ErrInputNotFound", err)
	}
}

func TestCreateAndWriteLanguageModelFilesRejectsDirectoryAsInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CreateAndWriteLanguageModelFiles(dir, dir, lang.ENGLISH, letterClass)
	if !errors.Is(err, langiderr.ErrInputNotRegularFile) {
		t.Fatalf("err = %v, want ErrInputNotRegularFile", err)
	}
}

func TestCreateAndWriteLanguageModelFilesRejectsNonDirectoryOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTemp(t, dir, "corpus.txt", "hello world")
	err := CreateAndWriteLanguageModelFiles(input, input, lang.ENGLISH, letterClass)
	if !errors.Is(err, langiderr.ErrOutputNotDirectory) {
		t.Fatalf("err = %v, want ErrOutputNotDirectory", err)
	}
}

func TestCreateAndWriteLanguageModelFilesRejectsMissingOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeTemp(t, dir, "corpus.txt", "hello world")
	missing := filepath.Join(dir, "no-such-dir")
	err := CreateAndWriteLanguageModelFiles(input, missing, lang.ENGLISH, letterClass)
	if !errors.Is(err, langiderr.ErrOutputNotFound) {
		t.Fatalf("err = %v, want ErrOutputNotFound", err)
	}
}
