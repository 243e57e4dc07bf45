package train

import (
	"os"
	"path/filepath"

	"github.com/az-ai-labs/langid/langiderr"
)

// validateInputFile enforces spec §4.J's input contract: the path must be
// absolute, exist, and name a regular file.
func validateInputFile(path string) error {
	if !filepath.IsAbs(path) {
		return langiderr.InputNotAbsolute(path)
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return langiderr.InputNotFound(path)
	}
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return langiderr.InputNotRegularFile(path)
	}
	return nil
}

// validateOutputDir enforces spec §4.J's output contract: the path must be
// absolute, exist, and name a directory.
func validateOutputDir(path string) error {
	if !filepath.IsAbs(path) {
		return langiderr.OutputNotAbsolute(path)
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return langiderr.OutputNotFound(path)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return langiderr.OutputNotDirectory(path)
	}
	return nil
}
