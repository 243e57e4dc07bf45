// Package data embeds the compiled-in language model assets consulted by
// the default detector builder entry points (FromLanguages,
// FromAllLanguages, etc.). Callers that supply their own model directory —
// tests, the training pipeline, a deployment with a freshly built corpus —
// use detector.Builder.WithModelSource instead and never touch this
// package directly.
package data

import (
	"embed"
	"io/fs"
)

//go:embed models
var rawModels embed.FS

// Models is the root of the embedded model tree, laid out as documented in
// models/LAYOUT.md, rooted so that Models.Open("eng/1grams.json.br")
// addresses a language's model file directly (no "models/" path prefix).
// It ships without trained n-gram tables; model.Store treats every lookup
// as "no evidence" until a deployment populates the tree with files
// produced by package train.
var Models = mustSub(rawModels, "models")

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
