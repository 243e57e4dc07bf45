package model

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/az-ai-labs/langid/internal/ngram"
	"github.com/az-ai-labs/langid/lang"
)

// key identifies one (language, order) model slot in a Store.
type key struct {
	language lang.Language
	order    int
}

// FileName returns the path, relative to a Store's root fs.FS, of the model
// file for a given language and order. Models are laid out one directory
// per language (named by ISO 639-3 code, matching the teacher's per-language
// data layout under data/) with one Brotli-compressed file per order.
//
// Exported so package train writes to exactly the path Load reads from:
// the two must never drift apart, since a freshly trained model tree is
// only useful if the detector can load it back without a manual rename.
func FileName(l lang.Language, order int) string {
	return path.Join(l.IsoCode639_3(), fmt.Sprintf("%dgrams.json.br", order))
}

// entry is the lazily-populated, at-most-once-loaded slot for a single
// (language, order) pair.
type entry struct {
	once  sync.Once
	model *NgramModel
	err   error
}

// Store loads and caches n-gram models by (language, order), reading
// Brotli-compressed JSON files from an underlying fs.FS. Production callers
// pass an embed.FS holding the compiled-in model set; tests and the training
// pipeline pass an os.DirFS rooted at a working directory instead.
//
// A Store is safe for concurrent use by multiple goroutines. Concurrent
// first-touch of the same (language, order) pair loads the file exactly
// once; other keys are never blocked by it, since each key guards its own
// sync.Once rather than sharing a single store-wide lock.
type Store struct {
	fsys fs.FS

	mu      sync.Mutex
	entries map[key]*entry

	lexMu      sync.Mutex
	lexEntries map[lexKey]*lexEntry

	mcMu      sync.Mutex
	mcEntries map[mcKey]*mcEntry
}

// NewStore returns a Store that reads model files from fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:    fsys,
		entries: make(map[key]*entry),
	}
}

// Load returns the n-gram model for language at the given order, loading and
// caching it on first access. A model file that does not exist is not an
// error: Load returns an empty model with a nil Probabilities-lookup miss
// for every n-gram, so a language with no order-n data simply contributes no
// evidence to the scorer rather than aborting detection.
func (s *Store) Load(l lang.Language, order int) (*NgramModel, error) {
	k := key{language: l, order: order}

	s.mu.Lock()
	e, ok := s.entries[k]
	if !ok {
		e = &entry{}
		s.entries[k] = e
	}
	s.mu.Unlock()

	e.once.Do(func() {
		e.model, e.err = s.load(l, order)
	})
	return e.model, e.err
}

func (s *Store) load(l lang.Language, order int) (*NgramModel, error) {
	f, err := s.fsys.Open(FileName(l, order))
	if errors.Is(err, fs.ErrNotExist) {
		// A missing model file means this language/order has no trained
		// data; it contributes no evidence rather than aborting detection.
		return &NgramModel{Language: l, Order: order, Probabilities: map[ngram.Ngram]float64{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("model: load %s order %d: %w", l, order, err)
	}
	defer f.Close()

	m, err := Decode(f, order)
	if err != nil {
		return nil, fmt.Errorf("model: load %s order %d: %w", l, order, err)
	}
	return m, nil
}

// Preload eagerly loads every order for the given languages, surfacing the
// first error encountered. Used by Builder.WithPreloadedLanguageModels to
// pay model-loading cost up front instead of on the first detection call.
func (s *Store) Preload(languages []lang.Language) error {
	for _, l := range languages {
		for order := ngram.MinOrder; order <= ngram.MaxOrder; order++ {
			if _, err := s.Load(l, order); err != nil {
				return err
			}
		}
	}
	return nil
}
