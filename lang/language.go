// Package lang defines the closed set of natural languages this module can
// identify, together with their ISO 639-1 and ISO 639-3 codes and the
// Unicode scripts each one is written in.
//
// Language values are immutable flyweights: comparing, copying, and hashing
// them never allocates. Ordering is lexicographic by English name, giving a
// deterministic tie-break for every package downstream that ranks
// languages by score.
//
// All functions are safe for concurrent use by multiple goroutines.
package lang

import (
	"cmp"
	"fmt"
)

// Language identifies one of the natural languages this module can detect.
type Language int

// languageInfo holds the static data associated with a Language value.
type languageInfo struct {
	name     string
	iso639_1 string
	iso639_3 string
	scripts  []Script
}

// String returns the English name of the language, e.g. "English".
func (l Language) String() string {
	if int(l) >= 0 && int(l) < numLanguages {
		return languageInfos[l].name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// IsoCode639_1 returns the lowercase two-letter ISO 639-1 code, e.g. "en".
func (l Language) IsoCode639_1() string {
	if int(l) >= 0 && int(l) < numLanguages {
		return languageInfos[l].iso639_1
	}
	return ""
}

// IsoCode639_3 returns the lowercase three-letter ISO 639-3 code, e.g. "eng".
func (l Language) IsoCode639_3() string {
	if int(l) >= 0 && int(l) < numLanguages {
		return languageInfos[l].iso639_3
	}
	return ""
}

// Scripts returns the Unicode scripts this language is written in. The
// returned slice must not be mutated by callers.
func (l Language) Scripts() []Script {
	if int(l) >= 0 && int(l) < numLanguages {
		return languageInfos[l].scripts
	}
	return nil
}

// Compare orders languages lexicographically by name, giving a total,
// deterministic order used to break ties between equally scored languages.
func (l Language) Compare(other Language) int {
	return cmp.Compare(l.String(), other.String())
}

// MarshalJSON encodes the language as its English name, e.g. "English".
func (l Language) MarshalJSON() ([]byte, error) {
	return marshalEnumName(l.String())
}

// UnmarshalJSON decodes a JSON string name, e.g. "English", into a Language.
func (l *Language) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnumName(data)
	if err != nil {
		return err
	}
	found, ok := languageFromName(name)
	if !ok {
		return fmt.Errorf("lang: unknown language: %q", name)
	}
	*l = found
	return nil
}

// languageFromName looks up a Language by its exact English name.
func languageFromName(name string) (Language, bool) {
	for i := 0; i < numLanguages; i++ {
		if languageInfos[i].name == name {
			return Language(i), true
		}
	}
	return 0, false
}

// All returns every supported Language value, in Language order (which is
// also lexicographic name order, since the underlying table is built that
// way).
func All() []Language {
	out := make([]Language, numLanguages)
	for i := range out {
		out[i] = Language(i)
	}
	return out
}

// AllWithScript returns every supported Language that uses the given
// Script, in Language order. It returns exactly what LanguagesWithScript
// returns, kept as a convenience alongside All.
func AllWithScript(s Script) []Language {
	return LanguagesWithScript(s)
}
