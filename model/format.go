package model

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/az-ai-labs/langid/internal/fraction"
	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
)

// fileFormat is the on-disk JSON shape of a single (language, order) model
// file, before Brotli compression. Field order matters: encoding/json
// preserves struct field order on Marshal, and the spec requires
// "language" before "ngrams" in the serialized object.
type fileFormat struct {
	Language string            `json:"language"`
	Ngrams   map[string]string `json:"ngrams"`
}

// NgramModel is the in-memory, decompressed form of one language's n-gram
// probability table for a single order. Unknown n-grams are absent from
// the map and are treated as probability 0 by the scorer.
type NgramModel struct {
	Language      lang.Language
	Order         int
	Probabilities map[ngram.Ngram]float64
}

// Encode serializes m into the same Brotli-compressed JSON shape as
// EncodeFractions, but keys each n-gram group by its float64 probability
// formatted as a decimal string (e.g. "0.25") rather than an exact
// "num/den" fraction. Decode accepts both key forms.
func Encode(w io.Writer, m *NgramModel) error {
	ff := fileFormat{
		Language: m.Language.String(),
		Ngrams:   invert(m.Probabilities),
	}

	bw := brotli.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err := enc.Encode(ff); err != nil {
		return fmt.Errorf("model: encode: %w", err)
	}
	return bw.Close()
}

// EncodeFractions serializes a fraction-keyed table directly, skipping the
// float64 round trip. This is what the training writer actually calls: it
// already has exact fraction.Fraction values and must not lose precision
// by going through NgramModel's float64 map first.
func EncodeFractions(w io.Writer, language lang.Language, byFraction map[fraction.Fraction][]ngram.Ngram) error {
	ngrams := make(map[string]string, len(byFraction))
	for f, grams := range byFraction {
		texts := make([]string, len(grams))
		for i, g := range grams {
			texts[i] = string(g)
		}
		sort.Strings(texts)
		ngrams[f.String()] = strings.Join(texts, " ")
	}

	ff := fileFormat{
		Language: language.String(),
		Ngrams:   ngrams,
	}

	bw := brotli.NewWriter(w)
	enc := json.NewEncoder(bw)
	if err := enc.Encode(ff); err != nil {
		return fmt.Errorf("model: encode: %w", err)
	}
	return bw.Close()
}

// Decode reads a Brotli-compressed JSON model file and expands its inverted
// fraction map into a flat Ngram -> float64 probability table.
func Decode(r io.Reader, order int) (*NgramModel, error) {
	br := brotli.NewReader(r)
	var ff fileFormat
	if err := json.NewDecoder(br).Decode(&ff); err != nil {
		return nil, fmt.Errorf("model: decode: %w", err)
	}

	language, ok := languageFromString(ff.Language)
	if !ok {
		return nil, fmt.Errorf("model: decode: unknown language %q", ff.Language)
	}

	probs := make(map[ngram.Ngram]float64, len(ff.Ngrams)*4)
	for frac, joined := range ff.Ngrams {
		p, err := parseFraction(frac)
		if err != nil {
			return nil, fmt.Errorf("model: decode: %w", err)
		}
		for _, g := range strings.Fields(joined) {
			probs[ngram.Ngram(g)] = p
		}
	}

	return &NgramModel{Language: language, Order: order, Probabilities: probs}, nil
}

// invert turns a flat Ngram -> float64 map into a decimal-probability-string
// -> space-joined n-grams map. Used only by Encode (the float64 path);
// EncodeFractions bypasses it to preserve exact "num/den" fractions.
func invert(probs map[ngram.Ngram]float64) map[string]string {
	byFrac := make(map[string][]string)
	for g, p := range probs {
		key := strconv.FormatFloat(p, 'g', -1, 64)
		byFrac[key] = append(byFrac[key], string(g))
	}
	for k := range byFrac {
		sort.Strings(byFrac[k])
	}
	out := make(map[string]string, len(byFrac))
	for k, grams := range byFrac {
		out[k] = strings.Join(grams, " ")
	}
	return out
}

// parseFraction parses a "num/den" string into its float64 quotient.
func parseFraction(s string) (float64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) == 2 {
		num, err1 := strconv.ParseUint(parts[0], 10, 64)
		den, err2 := strconv.ParseUint(parts[1], 10, 64)
		if err1 == nil && err2 == nil && den != 0 {
			return fraction.Fraction{Num: num, Den: den}.Float64(), nil
		}
	}
	// Fall back to a plain float, for models produced via Encode's
	// float64 path rather than EncodeFractions' exact path.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fraction key %q", s)
	}
	return f, nil
}

func languageFromString(name string) (lang.Language, bool) {
	for _, l := range lang.All() {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}
