// Package detector composes the script filter, rule engine, and
// probability scorer into a single-text language classifier, built through
// an immutable, fluent Builder.
//
// Two API layers are provided:
//
//   - Structured: ComputeLanguageConfidenceValues returns the full ranked
//     candidate list; DetectLanguageOf applies the minimum-relative-distance
//     gate on top of it.
//   - Convenience: ComputeLanguageConfidence looks up a single language's
//     value.
//
// All functions are safe for concurrent use by multiple goroutines.
package detector

import (
	"io/fs"

	"github.com/az-ai-labs/langid/data"
	"github.com/az-ai-labs/langid/langiderr"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/model"
)

// Builder accumulates detector configuration. Every With* method returns
// the same *Builder for chaining; configuration errors are recorded on
// first occurrence and surface from Build(), rather than panicking or
// returning an error from each intermediate call — the fluent chain is a
// convenience, not a point where callers are expected to check errors.
type Builder struct {
	languages   []lang.Language
	minDistance float64
	lowAccuracy bool
	preload     bool
	fsys        fs.FS
	err         error
}

func newBuilder(languages []lang.Language) *Builder {
	if len(languages) == 0 {
		return &Builder{err: langiderr.ErrEmptyLanguageSet}
	}
	return &Builder{languages: dedupe(languages)}
}

func dedupe(languages []lang.Language) []lang.Language {
	seen := make(map[lang.Language]bool, len(languages))
	out := make([]lang.Language, 0, len(languages))
	for _, l := range languages {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// FromLanguages starts a Builder restricted to the given languages.
func FromLanguages(languages ...lang.Language) *Builder {
	return newBuilder(languages)
}

// FromAllLanguages starts a Builder over every supported language.
func FromAllLanguages() *Builder {
	return newBuilder(lang.All())
}

// FromAllLanguagesWithout starts a Builder over every supported language
// except those listed.
func FromAllLanguagesWithout(excluded ...lang.Language) *Builder {
	skip := make(map[lang.Language]bool, len(excluded))
	for _, l := range excluded {
		skip[l] = true
	}
	var kept []lang.Language
	for _, l := range lang.All() {
		if !skip[l] {
			kept = append(kept, l)
		}
	}
	return newBuilder(kept)
}

// FromIsoCodes639_1 starts a Builder over the languages identified by the
// given ISO 639-1 codes.
func FromIsoCodes639_1(codes ...lang.IsoCode639_1) *Builder {
	languages := make([]lang.Language, len(codes))
	for i, c := range codes {
		languages[i] = c.Language()
	}
	return newBuilder(languages)
}

// FromIsoCodes639_3 starts a Builder over the languages identified by the
// given ISO 639-3 codes.
func FromIsoCodes639_3(codes ...lang.IsoCode639_3) *Builder {
	languages := make([]lang.Language, len(codes))
	for i, c := range codes {
		languages[i] = c.Language()
	}
	return newBuilder(languages)
}

// WithMinimumRelativeDistance sets the confidence gap below which
// DetectLanguageOf abstains rather than guessing. v must lie in [0.0, 0.99].
func (b *Builder) WithMinimumRelativeDistance(v float64) *Builder {
	if b.err != nil {
		return b
	}
	if v < 0.0 || v > 0.99 {
		b.err = langiderr.ErrDistanceOutOfRange
		return b
	}
	b.minDistance = v
	return b
}

// WithLowAccuracyMode restricts scoring to the trigram table only.
func (b *Builder) WithLowAccuracyMode() *Builder {
	b.lowAccuracy = true
	return b
}

// WithPreloadedLanguageModels loads every candidate's tables eagerly during
// Build, so no detection call blocks on disk I/O.
func (b *Builder) WithPreloadedLanguageModels() *Builder {
	b.preload = true
	return b
}

// WithModelSource overrides the filesystem model tables are read from,
// defaulting to the embedded data.Models tree. Tests and the training
// pipeline use this to point a Builder at a directory or an in-memory
// fstest.MapFS instead of the compiled-in asset tree.
func (b *Builder) WithModelSource(fsys fs.FS) *Builder {
	b.fsys = fsys
	return b
}

// Build validates the accumulated configuration and returns an immutable
// Detector, or the first configuration error encountered while chaining.
func (b *Builder) Build() (*Detector, error) {
	if b.err != nil {
		return nil, b.err
	}

	fsys := b.fsys
	if fsys == nil {
		fsys = data.Models
	}
	store := model.NewStore(fsys)
	if b.preload {
		if err := store.Preload(b.languages); err != nil {
			return nil, err
		}
	}

	return &Detector{
		candidates:  b.languages,
		minDistance: b.minDistance,
		lowAccuracy: b.lowAccuracy,
		store:       store,
	}, nil
}
