// Package batch fans independent single-text detector calls across a
// bounded worker pool, preserving input order in the output.
//
// All functions are safe for concurrent use by multiple goroutines.
package batch

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/langid/confidence"
	"github.com/az-ai-labs/langid/detector"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/segment"
)

// defaultConcurrency bounds the worker pool to the host's hardware
// parallelism, per the "defaults to the number of hardware threads"
// scheduling model; callers needing a different cap use the *With
// variants.
func defaultConcurrency() int {
	return runtime.GOMAXPROCS(0)
}

// Detection pairs a detected language with whether detection succeeded,
// mirroring Detector.DetectLanguageOf's (Language, bool) return for a
// single input at DetectLanguagesInParallelOf's index i.
type Detection struct {
	Language lang.Language
	Found    bool
}

// DetectLanguagesInParallelOf runs d.DetectLanguageOf(texts[i]) for every
// i concurrently; results[i] corresponds to texts[i] regardless of
// completion order.
func DetectLanguagesInParallelOf(d *detector.Detector, texts []string) []Detection {
	return DetectLanguagesInParallelOfWithConcurrency(d, texts, defaultConcurrency())
}

// DetectLanguagesInParallelOfWithConcurrency is DetectLanguagesInParallelOf
// with an explicit worker cap.
func DetectLanguagesInParallelOfWithConcurrency(d *detector.Detector, texts []string, concurrency int) []Detection {
	results := make([]Detection, len(texts))
	run(concurrency, len(texts), func(i int) {
		l, ok := d.DetectLanguageOf(texts[i])
		results[i] = Detection{Language: l, Found: ok}
	})
	return results
}

// ComputeLanguageConfidenceValuesInParallel runs
// d.ComputeLanguageConfidenceValues(texts[i]) for every i concurrently.
func ComputeLanguageConfidenceValuesInParallel(d *detector.Detector, texts []string) [][]confidence.Value {
	return ComputeLanguageConfidenceValuesInParallelWithConcurrency(d, texts, defaultConcurrency())
}

// ComputeLanguageConfidenceValuesInParallelWithConcurrency is
// ComputeLanguageConfidenceValuesInParallel with an explicit worker cap.
func ComputeLanguageConfidenceValuesInParallelWithConcurrency(d *detector.Detector, texts []string, concurrency int) [][]confidence.Value {
	results := make([][]confidence.Value, len(texts))
	run(concurrency, len(texts), func(i int) {
		results[i] = d.ComputeLanguageConfidenceValues(texts[i])
	})
	return results
}

// ComputeLanguageConfidenceInParallel runs d.ComputeLanguageConfidence(texts[i], l)
// for every i concurrently.
func ComputeLanguageConfidenceInParallel(d *detector.Detector, texts []string, l lang.Language) []float64 {
	return ComputeLanguageConfidenceInParallelWithConcurrency(d, texts, l, defaultConcurrency())
}

// ComputeLanguageConfidenceInParallelWithConcurrency is
// ComputeLanguageConfidenceInParallel with an explicit worker cap.
func ComputeLanguageConfidenceInParallelWithConcurrency(d *detector.Detector, texts []string, l lang.Language, concurrency int) []float64 {
	results := make([]float64, len(texts))
	run(concurrency, len(texts), func(i int) {
		results[i] = d.ComputeLanguageConfidence(texts[i], l)
	})
	return results
}

// DetectMultipleLanguagesInParallelOf runs
// segment.DetectMultipleLanguagesOf(d, texts[i]) for every i concurrently,
// supplementing the segmenter with the same parallel fan-out the other
// batch APIs grant single-language detection.
func DetectMultipleLanguagesInParallelOf(d *detector.Detector, texts []string) [][]segment.Result {
	return DetectMultipleLanguagesInParallelOfWithConcurrency(d, texts, defaultConcurrency())
}

// DetectMultipleLanguagesInParallelOfWithConcurrency is
// DetectMultipleLanguagesInParallelOf with an explicit worker cap.
func DetectMultipleLanguagesInParallelOfWithConcurrency(d *detector.Detector, texts []string, concurrency int) [][]segment.Result {
	results := make([][]segment.Result, len(texts))
	run(concurrency, len(texts), func(i int) {
		results[i] = segment.DetectMultipleLanguagesOf(d, texts[i])
	})
	return results
}

// run fans fn(0..n-1) across a bounded worker pool and blocks until every
// call has completed. fn never errors — per-index detector calls have no
// failure mode the caller needs to observe — so no error is threaded back
// through errgroup.Group.Wait.
func run(concurrency, n int, fn func(i int)) {
	if n == 0 {
		return
	}
	if concurrency < 1 {
		concurrency = 1
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
