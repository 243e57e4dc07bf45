// Package train builds the on-disk n-gram model files that package model
// and package rules read at detection time, from a raw text corpus for a
// single language.
package train

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"unicode"

	"github.com/az-ai-labs/langid/internal/fraction"
	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/model"
)

// CreateAndWriteLanguageModelFiles reads inputFile, lowercases it, keeps
// only runes matching charClass or whitespace, and for every order 1..5
// counts n-grams across the filtered corpus, reduces each n-gram's
// frequency to an exact fraction, and writes the resulting table to
// outputDir as Brotli-compressed JSON, at the exact paths model.Store reads
// from (model.FileName(language, n), rooted at outputDir) so the tree this
// writes is loadable by a Store over outputDir with no renaming step. All
// five files are always produced, even when an order has no n-grams at all
// (an empty table still round-trips through model.Decode as "no evidence").
func CreateAndWriteLanguageModelFiles(inputFile, outputDir string, language lang.Language, charClass *regexp.Regexp) error {
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
	corpus := filterCorpus(ngram.Lowered(string(raw)), charClass)

	langDir := filepath.Join(outputDir, language.IsoCode639_3())
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		return err
	}

	var reportLines []string
	for n := ngram.MinOrder; n <= ngram.MaxOrder; n++ {
		counts := ngram.CountAll(corpus, n)
		byFraction := fractionTable(counts)
		if err := writeOrderFile(outputDir, model.FileName(language, n), language, byFraction); err != nil {
			return err
		}
		reportLines = append(reportLines, reportOrder(n, counts)...)
	}
	return writeReport(langDir, reportLines)
}

// reportOrder renders the ten most frequent n-grams of a given order as
// "order\tngram\trelative-frequency" lines, using fraction.RelativeFrequency
// rather than a float64 division so the report's printed frequencies don't
// carry float rounding artifacts a human reviewer might mistake for
// corpus-derived noise.
func reportOrder(order int, counts map[ngram.Ngram]int) []string {
	var total uint64
	for _, c := range counts {
		total += uint64(c)
	}
	if total == 0 {
		return nil
	}

	grams := make([]ngram.Ngram, 0, len(counts))
	for g := range counts {
		grams = append(grams, g)
	}
	sort.Slice(grams, func(i, j int) bool {
		if counts[grams[i]] != counts[grams[j]] {
			return counts[grams[i]] > counts[grams[j]]
		}
		return grams[i] < grams[j]
	})
	if len(grams) > 10 {
		grams = grams[:10]
	}

	lines := make([]string, len(grams))
	for i, g := range grams {
		freq := fraction.RelativeFrequency(uint64(counts[g]), total)
		lines[i] = fmt.Sprintf("%d\t%s\t%s", order, g, freq.String())
	}
	return lines
}

func writeReport(outputDir string, lines []string) error {
	f, err := os.Create(filepath.Join(outputDir, "report.txt"))
	if err != nil {
		return err
	}
	defer f.Close()
	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return nil
}

// filterCorpus keeps only runes matching charClass or Unicode whitespace;
// everything else (punctuation, digits, symbols not accepted by the
// caller's character class) is dropped outright rather than replaced with
// a separator, so adjacent kept runes that were not already
// whitespace-separated become part of the same token.
func filterCorpus(text string, charClass *regexp.Regexp) string {
	var kept []rune
	for _, r := range text {
		if unicode.IsSpace(r) || charClass.MatchString(string(r)) {
			kept = append(kept, r)
		}
	}
	return string(kept)
}

// fractionTable reduces a raw n-gram frequency count to exact fractions of
// the order's total occurrence count, grouping n-grams that share a
// reduced fraction under one key (the on-disk format's "num/den" ->
// space-joined n-grams shape).
func fractionTable(counts map[ngram.Ngram]int) map[fraction.Fraction][]ngram.Ngram {
	var total uint64
	for _, c := range counts {
		total += uint64(c)
	}
	byFraction := make(map[fraction.Fraction][]ngram.Ngram, len(counts))
	if total == 0 {
		return byFraction
	}
	for g, c := range counts {
		f := fraction.New(uint64(c), total)
		byFraction[f] = append(byFraction[f], g)
	}
	return byFraction
}

func writeOrderFile(outputDir, name string, language lang.Language, byFraction map[fraction.Fraction][]ngram.Ngram) error {
	f, err := os.Create(filepath.Join(outputDir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	return model.EncodeFractions(f, language, byFraction)
}
