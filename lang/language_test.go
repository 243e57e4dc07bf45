package lang

import (
	"encoding/json"
	"testing"
)

func TestLanguageOrderingIsLexicographicAndTotal(t *testing.T) {
	t.Parallel()

	all := All()
	if len(all) != numLanguages {
		t.Fatalf("All() returned %d languages, want %d", len(all), numLanguages)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Compare(all[i]) >= 0 {
			t.Fatalf("languages not strictly increasing at index %d: %s >= %s", i, all[i-1], all[i])
		}
		if all[i-1].String() >= all[i].String() {
			t.Fatalf("language table not sorted by name at index %d: %s >= %s", i, all[i-1], all[i])
		}
	}
}

func TestLanguageJSONRoundTrip(t *testing.T) {
	t.Parallel()

	for _, l := range []Language{ENGLISH, GERMAN, CHINESE, AZERBAIJANI} {
		data, err := json.Marshal(l)
		if err != nil {
			t.Fatalf("Marshal(%s): %v", l, err)
		}
		var got Language
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if got != l {
			t.Errorf("round trip mismatch: got %s, want %s", got, l)
		}
	}
}

func TestLanguageUnmarshalUnknownName(t *testing.T) {
	t.Parallel()

	var l Language
	err := json.Unmarshal([]byte(`"Klingon"`), &l)
	if err == nil {
		t.Fatal("expected error for unknown language name")
	}
}

func TestLanguageScripts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang Language
		want []Script
	}{
		{ENGLISH, []Script{Latin}},
		{RUSSIAN, []Script{Cyrillic}},
		{CHINESE, []Script{Han}},
		{JAPANESE, []Script{Han, Hiragana, Katakana}},
		{KOREAN, []Script{Hangul}},
	}
	for _, tt := range tests {
		got := tt.lang.Scripts()
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.lang, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: script %d = %v, want %v", tt.lang, i, got[i], tt.want[i])
			}
		}
	}
}

func TestIsoCodesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, l := range All() {
		code1 := l.IsoCode639_1()
		parsed1, err := IsoCode639_1FromStr(code1)
		if err != nil {
			t.Fatalf("%s: IsoCode639_1FromStr(%q): %v", l, code1, err)
		}
		if parsed1.Language() != l {
			t.Errorf("%s: iso1 round trip gave %s", l, parsed1.Language())
		}

		code3 := l.IsoCode639_3()
		parsed3, err := IsoCode639_3FromStr(code3)
		if err != nil {
			t.Fatalf("%s: IsoCode639_3FromStr(%q): %v", l, code3, err)
		}
		if parsed3.Language() != l {
			t.Errorf("%s: iso3 round trip gave %s", l, parsed3.Language())
		}
	}
}

func TestIsoCodeFromStrIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"de", "DE", "De", "dE"} {
		c, err := IsoCode639_1FromStr(s)
		if err != nil {
			t.Fatalf("IsoCode639_1FromStr(%q): %v", s, err)
		}
		if c.Language() != GERMAN {
			t.Errorf("IsoCode639_1FromStr(%q) = %s, want GERMAN", s, c.Language())
		}
	}
}

func TestIsoCodeFromStrUnknown(t *testing.T) {
	t.Parallel()

	if _, err := IsoCode639_1FromStr("xx"); err == nil {
		t.Fatal("expected error for unknown ISO 639-1 code")
	} else if err.Error() != "Matching enum member not found" {
		t.Errorf("unexpected error message: %q", err.Error())
	}

	if _, err := IsoCode639_3FromStr("xxx"); err == nil {
		t.Fatal("expected error for unknown ISO 639-3 code")
	} else if err.Error() != "Matching enum member not found" {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestLanguagesWithScript(t *testing.T) {
	t.Parallel()

	cyrillic := LanguagesWithScript(Cyrillic)
	if len(cyrillic) == 0 {
		t.Fatal("expected at least one Cyrillic language")
	}
	found := false
	for _, l := range cyrillic {
		if l == RUSSIAN {
			found = true
		}
	}
	if !found {
		t.Error("expected RUSSIAN among Cyrillic languages")
	}
}
