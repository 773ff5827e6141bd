// Package api is the public surface of the extraction transform,
// following the same internal/pkg split esbuild itself uses (the
// example pack's own evanw/esbuild dependency, whose public entry point
// lives at pkg/api over an internal implementation). See spec.md §6.
package api

import (
	"github.com/cssxtract/compiler/internal/model"
	"github.com/cssxtract/compiler/internal/transform"
)

// Artifact is one extracted, minified CSS fragment with its stable hash
// and optional V3 source map (spec.md §3).
type Artifact struct {
	Hash string  `json:"hash"`
	CSS  string  `json:"css"`
	Map  *string `json:"map,omitempty"`
}

// KeyframeArtifact additionally carries the generated animation name
// ("kf_<hash>").
type KeyframeArtifact struct {
	Artifact
	Name string `json:"name"`
}

// Result is the transform's output (spec.md §6).
type Result struct {
	Code      string             `json:"code"`
	CSSRules  []Artifact         `json:"cssRules"`
	GlobalCSS []Artifact         `json:"globalCss"`
	Keyframes []KeyframeArtifact `json:"keyframes"`
	Map       *string            `json:"map,omitempty"`
}

// Transform scans source for css(...), globalCss`...`, and keyframes`...`
// construction sites, extracts each into a CSS artifact, and rewrites the
// site in place to a generated identifier. filename identifies the
// source for hashing and diagnostics; theme is an optional JSON
// serialization of a theme tree (nil if no theme applies); dir is "ltr"
// or "rtl" ("ltr" if empty). See spec.md §6.
//
// A parse failure in source is a soft-fail (spec.md §4.11, §7.3): Result
// mirrors the input unchanged with empty artifact lists and a nil error.
// Any other failure (an unsupported construction, a CSS engine error)
// returns a non-nil error and a zero Result.
func Transform(filename, source string, theme *string, dir string) (Result, error) {
	internalResult, err := transform.Transform(filename, source, theme, dir)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Code:      internalResult.Code,
		CSSRules:  toArtifacts(internalResult.CSSRules),
		GlobalCSS: toArtifacts(internalResult.GlobalCSS),
		Keyframes: toKeyframeArtifacts(internalResult.Keyframes),
		Map:       internalResult.Map,
	}, nil
}

func toArtifacts(in []model.Artifact) []Artifact {
	out := make([]Artifact, len(in))
	for i, a := range in {
		out[i] = Artifact{Hash: a.Hash, CSS: a.CSS, Map: a.Map}
	}
	return out
}

func toKeyframeArtifacts(in []model.KeyframeArtifact) []KeyframeArtifact {
	out := make([]KeyframeArtifact, len(in))
	for i, a := range in {
		out[i] = KeyframeArtifact{
			Artifact: Artifact{Hash: a.Hash, CSS: a.CSS, Map: a.Map},
			Name:     a.Name,
		}
	}
	return out
}
