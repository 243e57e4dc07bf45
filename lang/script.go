package lang

import (
	"fmt"
	"unicode"
)

// Script identifies a Unicode writing system relevant to the languages
// supported by this package. Every supported Language uses one or more
// Scripts; every Script is used by at least one Language.
type Script int

const (
	Latin Script = iota
	Cyrillic
	Arabic
	Armenian
	Bengali
	Devanagari
	Ethiopic
	Georgian
	Greek
	Gujarati
	Gurmukhi
	Han
	Hangul
	Hebrew
	Hiragana
	Katakana
	Tamil
	Telugu
	Thai
)

// scriptNames holds the display name of each Script, indexed by its value.
var scriptNames = [...]string{
	Latin:      "Latin",
	Cyrillic:   "Cyrillic",
	Arabic:     "Arabic",
	Armenian:   "Armenian",
	Bengali:    "Bengali",
	Devanagari: "Devanagari",
	Ethiopic:   "Ethiopic",
	Georgian:   "Georgian",
	Greek:      "Greek",
	Gujarati:   "Gujarati",
	Gurmukhi:   "Gurmukhi",
	Han:        "Han",
	Hangul:     "Hangul",
	Hebrew:     "Hebrew",
	Hiragana:   "Hiragana",
	Katakana:   "Katakana",
	Tamil:      "Tamil",
	Telugu:     "Telugu",
	Thai:       "Thai",
}

// scriptRangeTables maps each Script to the stdlib unicode.RangeTable used
// to classify individual runes. Kept separate from scriptNames so the
// (comparatively large) range tables are not walked unless a lookup needs
// them.
var scriptRangeTables = map[Script]*unicode.RangeTable{
	Latin:      unicode.Latin,
	Cyrillic:   unicode.Cyrillic,
	Arabic:     unicode.Arabic,
	Armenian:   unicode.Armenian,
	Bengali:    unicode.Bengali,
	Devanagari: unicode.Devanagari,
	Ethiopic:   unicode.Ethiopic,
	Georgian:   unicode.Georgian,
	Greek:      unicode.Greek,
	Gujarati:   unicode.Gujarati,
	Gurmukhi:   unicode.Gurmukhi,
	Han:        unicode.Han,
	Hangul:     unicode.Hangul,
	Hebrew:     unicode.Hebrew,
	Hiragana:   unicode.Hiragana,
	Katakana:   unicode.Katakana,
	Tamil:      unicode.Tamil,
	Telugu:     unicode.Telugu,
	Thai:       unicode.Thai,
}

// AllScripts returns every supported Script value, in declaration order.
func AllScripts() []Script {
	out := make([]Script, len(scriptNames))
	for s := range scriptNames {
		out[s] = Script(s)
	}
	return out
}

// String returns the display name of the script.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// MarshalJSON encodes the script as its JSON string name.
func (s Script) MarshalJSON() ([]byte, error) {
	return marshalEnumName(s.String())
}

// UnmarshalJSON decodes a JSON string name into a Script.
func (s *Script) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnumName(data)
	if err != nil {
		return err
	}
	for i, n := range scriptNames {
		if n == name {
			*s = Script(i)
			return nil
		}
	}
	return fmt.Errorf("lang: unknown script: %q", name)
}

// RangeTable returns the stdlib unicode.RangeTable backing this Script's
// Contains check, for callers that need to compose several scripts'
// ranges together (package script merges every supported Script's table
// into one for a cheap "is this rune in any supported script" guard).
func (s Script) RangeTable() *unicode.RangeTable {
	return scriptRangeTables[s]
}

// Contains reports whether r belongs to this Script's Unicode range.
func (s Script) Contains(r rune) bool {
	rt, ok := scriptRangeTables[s]
	if !ok {
		return false
	}
	return unicode.Is(rt, r)
}

// LanguagesWithScript returns every Language that uses the given Script,
// in Language order.
func LanguagesWithScript(s Script) []Language {
	var out []Language
	for i := 0; i < numLanguages; i++ {
		l := Language(i)
		for _, ls := range languageInfos[l].scripts {
			if ls == s {
				out = append(out, l)
				break
			}
		}
	}
	return out
}
