// Command langid-detect classifies lines of text read from stdin (or a
// file) and prints the detected language per line ("unknown" when none is
// found). With -segment it prints one line per run instead: language, word
// count, and the run's text, tab-separated.
//
//	go run ./cmd/langid-detect -languages en,de,fr < input.txt
//	go run ./cmd/langid-detect -languages en,de -segment < mixed.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/az-ai-labs/langid/batch"
	"github.com/az-ai-labs/langid/detector"
	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/segment"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("langid-detect: ")

	languages := flag.String("languages", "", "comma-separated ISO 639-1 codes to detect among (default: all supported languages)")
	inputPath := flag.String("input", "", "input file (default: stdin)")
	lowAccuracy := flag.Bool("low-accuracy", false, "trade accuracy for speed by scoring trigrams only")
	preload := flag.Bool("preload", false, "eagerly load every candidate's model tables before the first line")
	minDistance := flag.Float64("min-distance", 0, "minimum relative confidence distance below which a line is reported as unknown")
	doSegment := flag.Bool("segment", false, "segment each line into per-language runs instead of classifying it as a whole")
	flag.Parse()

	builder := newBuilder(*languages)
	if *lowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}
	if *preload {
		builder = builder.WithPreloadedLanguageModels()
	}
	builder = builder.WithMinimumRelativeDistance(*minDistance)

	d, err := builder.Build()
	if err != nil {
		log.Fatalf("build detector: %v", err)
	}

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := readLines(in)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	if *doSegment {
		for _, line := range lines {
			printSegments(d, line)
		}
		return
	}

	for _, detection := range batch.DetectLanguagesInParallelOf(d, lines) {
		if !detection.Found {
			fmt.Println("unknown")
			continue
		}
		fmt.Println(detection.Language)
	}
}

func newBuilder(languageList string) *detector.Builder {
	if languageList == "" {
		return detector.FromAllLanguages()
	}
	codes := strings.Split(languageList, ",")
	isoCodes := make([]lang.IsoCode639_1, 0, len(codes))
	for _, c := range codes {
		code, err := lang.IsoCode639_1FromStr(strings.TrimSpace(c))
		if err != nil {
			log.Fatalf("unknown language code %q: %v", c, err)
		}
		isoCodes = append(isoCodes, code)
	}
	return detector.FromIsoCodes639_1(isoCodes...)
}

func printSegments(d *detector.Detector, line string) {
	for _, r := range segment.DetectMultipleLanguagesOf(d, line) {
		fmt.Printf("%s\t%d\t%s\n", r.Language, r.WordCount, line[r.StartIndex:r.EndIndex])
	}
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
