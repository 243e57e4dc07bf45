// Package langiderr defines the typed configuration and training errors
// this module's builders and writers return. Every error's Error() text
// matches a fixed, test-asserted message; errors.Is still lets callers
// match by kind regardless of the dynamic path/value embedded in the text.
package langiderr

import (
	"errors"
	"fmt"
)

// Configuration errors, raised by detector.Builder. These carry no dynamic
// content, so a plain sentinel with its final message text is sufficient.
var (
	ErrEmptyLanguageSet   = errors.New("LanguageDetector needs at least 1 language to choose from")
	ErrDistanceOutOfRange = errors.New("Minimum relative distance must lie in between 0.0 and 0.99")
)

// kind identifies a training-writer error family independent of the
// dynamic path or value interpolated into its message, so errors.Is can
// match on kind alone.
type kind int

const (
	kindInputNotAbsolute kind = iota
	kindInputNotFound
	kindInputNotRegularFile
	kindOutputNotAbsolute
	kindOutputNotFound
	kindOutputNotDirectory
	kindEmptyTrainLanguageSet
	kindEmptyMostCommonCount
)

// pathError is a training-writer error whose message embeds a path or
// value, but whose identity for errors.Is purposes depends only on kind.
type pathError struct {
	kind kind
	msg  string
}

func (e *pathError) Error() string { return e.msg }

func (e *pathError) Is(target error) bool {
	t, ok := target.(*pathError)
	return ok && t.kind == e.kind
}

// Sentinels for errors.Is matching against the constructors below; their
// own Error() text is never surfaced to a caller.
var (
	ErrInputNotAbsolute      = &pathError{kind: kindInputNotAbsolute}
	ErrInputNotFound         = &pathError{kind: kindInputNotFound}
	ErrInputNotRegularFile   = &pathError{kind: kindInputNotRegularFile}
	ErrOutputNotAbsolute     = &pathError{kind: kindOutputNotAbsolute}
	ErrOutputNotFound        = &pathError{kind: kindOutputNotFound}
	ErrOutputNotDirectory    = &pathError{kind: kindOutputNotDirectory}
	ErrEmptyTrainLanguageSet = &pathError{kind: kindEmptyTrainLanguageSet}
	ErrEmptyMostCommonCount  = &pathError{kind: kindEmptyMostCommonCount}
)

// InputNotAbsolute reports that the training input file path is not absolute.
func InputNotAbsolute(path string) error {
	return &pathError{kind: kindInputNotAbsolute, msg: fmt.Sprintf("Input file path '%s' is not absolute", path)}
}

// InputNotFound reports that the training input file does not exist.
func InputNotFound(path string) error {
	return &pathError{kind: kindInputNotFound, msg: fmt.Sprintf("Input file '%s' does not exist", path)}
}

// InputNotRegularFile reports that the training input path is not a regular file.
func InputNotRegularFile(path string) error {
	return &pathError{kind: kindInputNotRegularFile, msg: fmt.Sprintf("Input file path '%s' does not represent a regular file", path)}
}

// OutputNotAbsolute reports that the training output directory path is not absolute.
func OutputNotAbsolute(path string) error {
	return &pathError{kind: kindOutputNotAbsolute, msg: fmt.Sprintf("Output directory path '%s' is not absolute", path)}
}

// OutputNotFound reports that the training output directory does not exist.
func OutputNotFound(path string) error {
	return &pathError{kind: kindOutputNotFound, msg: fmt.Sprintf("Output directory path '%s' does not exist", path)}
}

// OutputNotDirectory reports that the training output path is not a directory.
func OutputNotDirectory(path string) error {
	return &pathError{kind: kindOutputNotDirectory, msg: fmt.Sprintf("Output directory path '%s' does not represent a directory", path)}
}

// EmptyTrainLanguageSet reports that a writer was asked to process an empty language set.
func EmptyTrainLanguageSet() error {
	return &pathError{kind: kindEmptyTrainLanguageSet, msg: "Set of languages must not be empty"}
}

// EmptyMostCommonCount reports a non-positive most-common-ngram count.
func EmptyMostCommonCount() error {
	return &pathError{kind: kindEmptyMostCommonCount, msg: "Amount of most common ngrams must be greater than zero"}
}
