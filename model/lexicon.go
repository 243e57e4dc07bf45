package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/andybalholm/brotli"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
)

// listFormat is the on-disk shape of both the unique-ngram set and the
// most-common-ngram list: a language name plus a flat array of n-grams,
// sorted ASCII-ascending (spec contract for MostCommonNgramsWriter, applied
// to both lexicon kinds for consistency).
type listFormat struct {
	Language string   `json:"language"`
	Ngrams   []string `json:"ngrams"`
}

// EncodeNgramList writes a Brotli-compressed JSON array of n-grams for
// language, sorted ASCII-ascending. Used by train for both the unique-ngram
// lexicon and the most-common-ngram lexicon.
func EncodeNgramList(w io.Writer, language lang.Language, ngrams []ngram.Ngram) error {
	texts := make([]string, len(ngrams))
	for i, g := range ngrams {
		texts[i] = string(g)
	}
	sort.Strings(texts)

	bw := brotli.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err := enc.Encode(listFormat{Language: language.String(), Ngrams: texts}); err != nil {
		return fmt.Errorf("model: encode ngram list: %w", err)
	}
	return bw.Close()
}

// DecodeNgramList reads a Brotli-compressed JSON n-gram array back into a
// Language and an Ngram slice.
func DecodeNgramList(r io.Reader) (lang.Language, []ngram.Ngram, error) {
	br := brotli.NewReader(r)
	var lf listFormat
	if err := json.NewDecoder(br).Decode(&lf); err != nil {
		return 0, nil, fmt.Errorf("model: decode ngram list: %w", err)
	}
	language, ok := languageFromString(lf.Language)
	if !ok {
		return 0, nil, fmt.Errorf("model: decode ngram list: unknown language %q", lf.Language)
	}
	grams := make([]ngram.Ngram, len(lf.Ngrams))
	for i, s := range lf.Ngrams {
		grams[i] = ngram.Ngram(s)
	}
	return language, grams, nil
}

func uniqueNgramsFileName(l lang.Language) string {
	return path.Join(l.IsoCode639_3(), "unique.json.br")
}

func mostCommonNgramsFileName(l lang.Language, order int) string {
	return path.Join(l.IsoCode639_1(), fmt.Sprintf("mostcommon-%d.json.br", order))
}

type lexKey struct {
	language lang.Language
}

type mcKey struct {
	language lang.Language
	order    int
}

type lexEntry struct {
	once   sync.Once
	ngrams map[ngram.Ngram]bool
	err    error
}

type mcEntry struct {
	once   sync.Once
	ngrams []ngram.Ngram
	err    error
}

// LoadUniqueNgrams returns the set of n-grams that appear only in l, among
// the languages the training corpus was built from. A missing lexicon file
// is not an error: it yields an empty set, so the unique-ngram rule simply
// never fires for that language.
func (s *Store) LoadUniqueNgrams(l lang.Language) (map[ngram.Ngram]bool, error) {
	k := lexKey{language: l}

	s.lexMu.Lock()
	if s.lexEntries == nil {
		s.lexEntries = make(map[lexKey]*lexEntry)
	}
	e, ok := s.lexEntries[k]
	if !ok {
		e = &lexEntry{}
		s.lexEntries[k] = e
	}
	s.lexMu.Unlock()

	e.once.Do(func() {
		e.ngrams, e.err = s.loadUniqueNgrams(l)
	})
	return e.ngrams, e.err
}

func (s *Store) loadUniqueNgrams(l lang.Language) (map[ngram.Ngram]bool, error) {
	f, err := s.fsys.Open(uniqueNgramsFileName(l))
	if errors.Is(err, fs.ErrNotExist) {
		return map[ngram.Ngram]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("model: load unique ngrams for %s: %w", l, err)
	}
	defer f.Close()

	_, grams, err := DecodeNgramList(f)
	if err != nil {
		return nil, fmt.Errorf("model: load unique ngrams for %s: %w", l, err)
	}
	set := make(map[ngram.Ngram]bool, len(grams))
	for _, g := range grams {
		set[g] = true
	}
	return set, nil
}

// LoadMostCommonNgrams returns the most-common-ngram list for (l, order), in
// the ASCII-ascending order the training writer stored them. A missing
// lexicon file yields an empty slice, not an error.
func (s *Store) LoadMostCommonNgrams(l lang.Language, order int) ([]ngram.Ngram, error) {
	k := mcKey{language: l, order: order}

	s.mcMu.Lock()
	if s.mcEntries == nil {
		s.mcEntries = make(map[mcKey]*mcEntry)
	}
	e, ok := s.mcEntries[k]
	if !ok {
		e = &mcEntry{}
		s.mcEntries[k] = e
	}
	s.mcMu.Unlock()

	e.once.Do(func() {
		e.ngrams, e.err = s.loadMostCommonNgrams(l, order)
	})
	return e.ngrams, e.err
}

func (s *Store) loadMostCommonNgrams(l lang.Language, order int) ([]ngram.Ngram, error) {
	f, err := s.fsys.Open(mostCommonNgramsFileName(l, order))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("model: load most common ngrams for %s order %d: %w", l, order, err)
	}
	defer f.Close()

	_, grams, err := DecodeNgramList(f)
	if err != nil {
		return nil, fmt.Errorf("model: load most common ngrams for %s order %d: %w", l, order, err)
	}
	return grams, nil
}
