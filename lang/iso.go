package lang

import (
	"fmt"
	"strings"
)

// errMatchingMemberNotFound is the exact message spec'd for unknown ISO
// codes passed to FromStr, matching the reference implementation's wording.
const errMatchingMemberNotFound = "Matching enum member not found"

// String returns the lowercase ISO 639-1 code, e.g. "en".
func (c IsoCode639_1) String() string {
	return iso1Strings[c]
}

// Language returns the Language identified by this ISO 639-1 code.
func (c IsoCode639_1) Language() Language {
	return iso1ToLanguage[c]
}

// IsoCode639_1FromStr parses a two-letter ISO 639-1 code case-insensitively.
func IsoCode639_1FromStr(s string) (IsoCode639_1, error) {
	c, ok := stringToIso1[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%s", errMatchingMemberNotFound)
	}
	return c, nil
}

// String returns the lowercase ISO 639-3 code, e.g. "eng".
func (c IsoCode639_3) String() string {
	return iso3Strings[c]
}

// Language returns the Language identified by this ISO 639-3 code.
func (c IsoCode639_3) Language() Language {
	return iso3ToLanguage[c]
}

// IsoCode639_3FromStr parses a three-letter ISO 639-3 code case-insensitively.
func IsoCode639_3FromStr(s string) (IsoCode639_3, error) {
	c, ok := stringToIso3[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%s", errMatchingMemberNotFound)
	}
	return c, nil
}

// IsoCode639_1Of returns the ISO 639-1 code for l as a typed IsoCode639_1
// value (as opposed to Language.IsoCode639_1, which returns a plain string).
func IsoCode639_1Of(l Language) IsoCode639_1 {
	c, _ := IsoCode639_1FromStr(l.IsoCode639_1())
	return c
}

// IsoCode639_3Of returns the ISO 639-3 code for l as a typed IsoCode639_3
// value.
func IsoCode639_3Of(l Language) IsoCode639_3 {
	c, _ := IsoCode639_3FromStr(l.IsoCode639_3())
	return c
}
