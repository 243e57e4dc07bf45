// Command langid-build trains the n-gram model files package data embeds,
// from a plain-text corpus for a single language. -output names the models
// root (the directory Store reads from, not a per-language subdirectory):
// the writer creates its own ISO 639-3 subdirectory underneath it.
//
//	go run ./cmd/langid-build -input /abs/path/corpus.txt -output /abs/path/models -language en -char-class '\p{L}'
package main

import (
	"flag"
	"log"
	"path/filepath"
	"regexp"

	"github.com/az-ai-labs/langid/lang"
	"github.com/az-ai-labs/langid/train"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("langid-build: ")

	inputPath := flag.String("input", "", "absolute path to the raw text corpus (required)")
	outputPath := flag.String("output", "", "absolute path to the output directory (required)")
	languageCode := flag.String("language", "", "ISO 639-1 code of the corpus language (required)")
	charClass := flag.String("char-class", `\p{L}`, "Unicode character class regex of runes to keep besides whitespace")
	testData := flag.Bool("test-data", false, "also write sentences.txt, single-words.txt, and word-pairs.txt")
	maxLines := flag.Int("max-lines", 2000, "maximum lines per test-data file")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" || *languageCode == "" {
		log.Fatal("usage: langid-build -input <file> -output <dir> -language <iso 639-1 code>")
	}

	code, err := lang.IsoCode639_1FromStr(*languageCode)
	if err != nil {
		log.Fatalf("unknown language code %q: %v", *languageCode, err)
	}
	class, err := regexp.Compile(*charClass)
	if err != nil {
		log.Fatalf("invalid char class %q: %v", *charClass, err)
	}

	if err := train.CreateAndWriteLanguageModelFiles(*inputPath, *outputPath, code.Language(), class); err != nil {
		log.Fatalf("build model files: %v", err)
	}
	log.Printf("wrote n-gram model files for %s to %s", code.Language(), *outputPath)

	if *testData {
		// Test data lives alongside that language's model files, inside the
		// same ISO 639-3 subdirectory CreateAndWriteLanguageModelFiles just
		// created under outputPath.
		langDir := filepath.Join(*outputPath, code.Language().IsoCode639_3())
		if err := train.CreateAndWriteTestDataFiles(*inputPath, langDir, class, *maxLines); err != nil {
			log.Fatalf("build test data files: %v", err)
		}
		log.Printf("wrote test data files to %s", langDir)
	}
}
