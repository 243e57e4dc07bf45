// Package segment slices mixed-language text into maximal single-language
// runs using a Detector built by package detector.
//
// All functions are safe for concurrent use by multiple goroutines,
// provided the *detector.Detector they are given is (it always is, once
// built).
package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/az-ai-labs/langid/detector"
	"github.com/az-ai-labs/langid/lang"
)

// Result is one contiguous language-labeled run. StartIndex and EndIndex
// are byte offsets into the original text: text[r.StartIndex:r.EndIndex]
// reproduces the run verbatim, and the runs returned by
// DetectMultipleLanguagesOf partition the input exactly (no gaps, no
// overlap, concatenation reconstructs the input byte-for-byte).
type Result struct {
	StartIndex int
	EndIndex   int
	WordCount  int
	Language   lang.Language
}

// corroborationWindow bounds how many further letter-bearing words are
// consulted before a language flip is accepted as a new run rather than
// noise from a single borrowed word or proper noun.
const corroborationWindow = 3

// unit is one scanning step: a whitespace-delimited token, or — for
// scripts that do not separate words with whitespace (Han, Hiragana,
// Katakana, Hangul) — a single rune of such a token. hasLetter tokens
// drive both language scoring and the word count; non-letter units
// (punctuation, digits, symbols) are walked over for byte bookkeeping
// only and never scored or counted.
type unit struct {
	start, end int
	text       string
	hasLetter  bool
}

// DetectMultipleLanguagesOf greedily scans text left to right, growing a
// scoring buffer of letter-bearing words and re-running d.DetectLanguageOf
// over it. When the detected language differs from the run's current
// language and the next few letter-bearing words corroborate the new
// language, the run is closed at the start of the flipped word and a new
// run begins there.
func DetectMultipleLanguagesOf(d *detector.Detector, text string) []Result {
	if text == "" {
		return nil
	}

	units := splitUnits(text)
	if len(units) == 0 {
		// Input is non-empty but carries no non-whitespace content: one
		// run covering everything, with no language evidence at all.
		return []Result{{StartIndex: 0, EndIndex: len(text)}}
	}

	var results []Result
	segStart := 0
	segWordCount := 0
	var scoring strings.Builder
	var segLang lang.Language
	haveLang := false

	commit := func(end int) {
		results = append(results, Result{StartIndex: segStart, EndIndex: end, WordCount: segWordCount, Language: segLang})
		segStart = end
		segWordCount = 0
		scoring.Reset()
		haveLang = false
	}

	for i := range units {
		u := units[i]
		if !u.hasLetter {
			continue
		}
		segWordCount++
		if scoring.Len() > 0 {
			scoring.WriteByte(' ')
		}
		scoring.WriteString(u.text)

		detected, ok := d.DetectLanguageOf(scoring.String())
		if !ok {
			continue
		}
		if !haveLang {
			segLang, haveLang = detected, true
			continue
		}
		if detected == segLang {
			continue
		}
		if !corroborated(d, units, i, detected) {
			continue
		}

		commit(u.start)
		segWordCount = 1
		scoring.WriteString(u.text)
		segLang, haveLang = detected, true
	}
	commit(len(text))

	return results
}

// corroborated reports whether at least half of the next
// corroborationWindow letter-bearing units starting at from, scored
// cumulatively, agree with candidate.
func corroborated(d *detector.Detector, units []unit, from int, candidate lang.Language) bool {
	var buf strings.Builder
	agree, checked := 0, 0
	for i := from; i < len(units) && checked < corroborationWindow; i++ {
		if !units[i].hasLetter {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(units[i].text)
		checked++
		if l, ok := d.DetectLanguageOf(buf.String()); ok && l == candidate {
			agree++
		}
	}
	return checked > 0 && agree*2 >= checked
}

func splitUnits(text string) []unit {
	var units []unit
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		units = append(units, splitBlock(text[start:i], start)...)
	}
	return units
}

// splitBlock turns one whitespace-delimited block into scanning units. A
// block containing any Han/Hiragana/Katakana/Hangul rune is split
// character by character, since those scripts carry no inter-word
// whitespace; every other block is kept whole.
func splitBlock(block string, offset int) []unit {
	if !containsUnspacedScript(block) {
		return []unit{{
			start:     offset,
			end:       offset + len(block),
			text:      block,
			hasLetter: strings.ContainsFunc(block, unicode.IsLetter),
		}}
	}

	units := make([]unit, 0, len(block))
	i := 0
	for i < len(block) {
		r, size := utf8.DecodeRuneInString(block[i:])
		units = append(units, unit{
			start:     offset + i,
			end:       offset + i + size,
			text:      block[i : i+size],
			hasLetter: unicode.IsLetter(r),
		})
		i += size
	}
	return units
}

func containsUnspacedScript(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}
