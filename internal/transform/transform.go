package transform

import (
	"github.com/cssxtract/compiler/internal/cssengine"
	"github.com/cssxtract/compiler/internal/edits"
	"github.com/cssxtract/compiler/internal/handler"
	"github.com/cssxtract/compiler/internal/jsparse"
	"github.com/cssxtract/compiler/internal/model"
	"github.com/cssxtract/compiler/internal/sourcemap"
	"github.com/cssxtract/compiler/internal/theme"
)

// Result is the internal mirror of spec.md §6's Result: the rewritten
// source plus the three artifact lists and an optional JS source map.
type Result struct {
	Code      string                   `json:"code"`
	CSSRules  []model.Artifact         `json:"cssRules"`
	GlobalCSS []model.Artifact         `json:"globalCss"`
	Keyframes []model.KeyframeArtifact `json:"keyframes"`
	Map       *string                  `json:"map,omitempty"`
}

// Transform implements spec.md §6's entry point. themeJSON is the
// optional JSON serialization of the theme tree; dir is "ltr" or "rtl"
// (unused by the pipeline today, reserved per §4.7).
func Transform(filename, source string, themeJSON *string, dir string) (Result, error) {
	if dir == "" {
		dir = "ltr"
	}

	var themeTree theme.Tree
	hasTheme := themeJSON != nil
	if hasTheme {
		t, err := theme.Parse(*themeJSON)
		if err != nil {
			return Result{}, handler.New(filename, source).Engine("theme parse error", err.Error())
		}
		themeTree = t
	}

	tree, err := jsparse.Parse([]byte(source))
	if err != nil {
		return Result{}, err
	}
	defer tree.Close()

	// Soft-fail contract (spec.md §4.11, §7.3): a parser error anywhere in
	// the tree returns the input unchanged with empty artifacts and no
	// error.
	if tree.HasParseError() {
		return Result{Code: source}, nil
	}

	h := handler.New(filename, source)
	d := newDriver(filename, []byte(source), themeTree, hasTheme, h, dir)

	if err := d.walk(tree.Root()); err != nil {
		return Result{}, err
	}

	code := edits.Apply(source, d.edits)

	result := Result{
		Code:      code,
		CSSRules:  d.cssRules,
		GlobalCSS: d.globalCSS,
		Keyframes: d.keyframes,
	}
	if len(d.edits) > 0 {
		m := sourcemap.Build(filename, source, code, d.edits)
		result.Map = &m
	}
	return result, nil
}

// runCSS runs the pipeline with placeholder substitution, labeling the
// result with hash (spec.md §4.7's runAndReplacePlaceholder).
func runCSS(rawCSS, hash, placeholder, finalText, filename string, h *handler.Handler) (model.Artifact, error) {
	out, err := cssengine.RunAndReplacePlaceholder(rawCSS, finalText, placeholder, filename, h)
	if err != nil {
		return model.Artifact{}, err
	}
	return model.Artifact{Hash: hash, CSS: out.CSS, Map: out.Map}, nil
}

// runCSSPlain runs the pipeline with no placeholder substitution (globalCss
// sites carry no generated identifier, spec.md §3).
func runCSSPlain(rawCSS, hash, filename string, h *handler.Handler) (model.Artifact, error) {
	out, err := cssengine.Run(rawCSS, filename, h)
	if err != nil {
		return model.Artifact{}, err
	}
	return model.Artifact{Hash: hash, CSS: out.CSS, Map: out.Map}, nil
}
