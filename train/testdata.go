package train

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/az-ai-labs/langid/internal/ngram"
)

// CreateAndWriteTestDataFiles samples a raw corpus into the three fixture
// files the detection accuracy suite reads: whole sentences, distinct
// single words, and distinct adjacent word pairs, each capped at
// maximumLines entries. It shares CreateAndWriteLanguageModelFiles' path
// validation and character filtering so a single corpus produces
// consistent training and test data.
func CreateAndWriteTestDataFiles(inputFile, outputDir string, charClass *regexp.Regexp, maximumLines int) error {
	if err := validateInputFile(inputFile); err != nil {
		return err
	}
	if err := validateOutputDir(outputDir); err != nil {
		return err
	}

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return err
	}
	text := string(raw)

	sentences := capLines(nonEmptyLines(text), maximumLines)
	if err := writeLines(outputDir, "sentences.txt", sentences); err != nil {
		return err
	}

	words := ngram.Tokens(filterCorpus(ngram.Lowered(text), charClass))

	if err := writeLines(outputDir, "single-words.txt", capLines(dedupe(words), maximumLines)); err != nil {
		return err
	}

	return writeLines(outputDir, "word-pairs.txt", capLines(dedupe(wordPairs(words)), maximumLines))
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func wordPairs(words []string) []string {
	if len(words) < 2 {
		return nil
	}
	out := make([]string, 0, len(words)-1)
	for i := 0; i+1 < len(words); i++ {
		out = append(out, words[i]+" "+words[i+1])
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func capLines(lines []string, maximumLines int) []string {
	if maximumLines >= 0 && len(lines) > maximumLines {
		return lines[:maximumLines]
	}
	return lines
}

func writeLines(outputDir, name string, lines []string) error {
	f, err := os.Create(filepath.Join(outputDir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}
