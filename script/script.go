// Package script narrows a candidate set of languages by the writing
// systems actually present in a text, and gives a small a-priori boost to
// languages whose alphabet contains characters unique to them.
//
// Two API layers are provided:
//
//   - Structured: Detect returns a per-script letter count; FilterCandidates
//     applies the "at least one matching script survives" rule.
//   - Convenience: UniqueCharacterBoost folds the unique-character signal
//     into a per-language score map ready to merge into a rule engine's
//     priors.
//
// All functions are safe for concurrent use by multiple goroutines.
package script

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/az-ai-labs/langid/lang"
)

// supportedScripts merges every supported Script's range table into one,
// so Detect can reject a rune belonging to none of them with a single
// table lookup before paying for the per-script loop.
var supportedScripts = buildSupportedScriptsTable()

func buildSupportedScriptsTable() *unicode.RangeTable {
	scripts := lang.AllScripts()
	tables := make([]*unicode.RangeTable, len(scripts))
	for i, s := range scripts {
		tables[i] = s.RangeTable()
	}
	return rangetable.Merge(tables...)
}

// Detect counts letter runes per Script, ignoring punctuation, whitespace,
// and digits. A rune that does not belong to any supported Script is
// ignored; it contributes to no count and cannot by itself eliminate a
// candidate.
func Detect(text string) map[lang.Script]int {
	counts := make(map[lang.Script]int)
	for _, r := range text {
		if !unicode.IsLetter(r) || !unicode.Is(supportedScripts, r) {
			continue
		}
		for _, s := range lang.AllScripts() {
			if s.Contains(r) {
				counts[s]++
				break
			}
		}
	}
	return counts
}

// FilterCandidates keeps only the candidates that use at least one script
// observed in text, alongside the observed per-script counts. If text
// contains no recognized letters at all, every candidate survives
// unfiltered: an empty or punctuation-only fragment carries no script
// evidence against any language.
func FilterCandidates(text string, candidates []lang.Language) ([]lang.Language, map[lang.Script]int) {
	counts := Detect(text)
	if len(counts) == 0 {
		return candidates, counts
	}

	var survivors []lang.Language
	for _, l := range candidates {
		for _, s := range l.Scripts() {
			if counts[s] > 0 {
				survivors = append(survivors, l)
				break
			}
		}
	}
	return survivors, counts
}

// uniqueBoost is the per-rune a-priori score added to a language when that
// rune appears in the text, mirroring the teacher's schwa-is-a-strong-signal
// treatment of Azerbaijani 'ə' generalized to a small table of other
// single-language diacritics. This is not an exhaustive per-language
// lexicon (that is UniqueNgrams, built from corpus statistics); it only
// covers characters distinctive enough to hard-code.
var uniqueBoost = map[rune]lang.Language{
	'ə': lang.AZERBAIJANI,
	'Ə': lang.AZERBAIJANI,
	'ł': lang.POLISH,
	'Ł': lang.POLISH,
	'ß': lang.GERMAN,
	'ñ': lang.SPANISH,
	'Ñ': lang.SPANISH,
	'ç': lang.TURKISH,
	'ş': lang.TURKISH,
	'Ş': lang.TURKISH,
	'ő': lang.HUNGARIAN,
	'ű': lang.HUNGARIAN,
	'ā': lang.LATVIAN,
	'ē': lang.LATVIAN,
	'ı': lang.TURKISH,
	'İ': lang.TURKISH,
}

// uniqueBoostScore is the flat score contributed by each matching rune,
// calibrated to outweigh routine n-gram evidence without being absolute:
// the rule engine still treats it as a prior, not a verdict.
const uniqueBoostScore = 1.0

// UniqueCharacterBoost scans text for characters unique to one supported
// language and returns a per-language score map suitable for merging into a
// rule engine's priors. Only languages present in candidates are reported.
func UniqueCharacterBoost(text string, candidates []lang.Language) map[lang.Language]float64 {
	allowed := make(map[lang.Language]bool, len(candidates))
	for _, l := range candidates {
		allowed[l] = true
	}

	boost := make(map[lang.Language]float64)
	for _, r := range text {
		l, ok := uniqueBoost[r]
		if !ok || !allowed[l] {
			continue
		}
		boost[l] += uniqueBoostScore
	}
	return boost
}
