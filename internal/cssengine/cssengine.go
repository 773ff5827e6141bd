// Package cssengine implements spec.md §4.7: the CSS pipeline facade. A
// lowered CSS fragment is first walked token-by-token (the teacher's own
// habit, internal/transform/scope-css.go, ScopeStyle) as a structural
// sanity pass, then handed to esbuild's CSS loader for the actual
// parse→minify→print-with-browser-targets job LightningCSS would do in the
// original. See SPEC_FULL.md §9 for why esbuild stands in here.
package cssengine

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/cssxtract/compiler/internal/handler"
)

// Target pins the browser floor spec.md §4.7 names: Chrome ≥105,
// Safari ≥16, Firefox ≥110 (the container-query floor).
var Target = []api.Engine{
	{Name: api.EngineChrome, Version: "105"},
	{Name: api.EngineSafari, Version: "16"},
	{Name: api.EngineFirefox, Version: "110"},
}

// Result is the pipeline's output: minified CSS text plus an optional V3
// source map JSON string.
type Result struct {
	CSS string
	Map *string
}

// Run implements §4.7 steps 1-3: tokenize (a pre-flight structural check in
// the teacher's own style), then parse, minify, and print with browser
// targets and source-map collection.
func Run(rawCSS, filename string, h *handler.Handler) (Result, error) {
	if err := tokenCheck(rawCSS); err != nil {
		return Result{}, h.Engine("LightningCSS parse error", err.Error())
	}

	result := api.Transform(rawCSS, api.TransformOptions{
		Loader:            api.LoaderCSS,
		MinifyWhitespace:  true,
		MinifySyntax:      true,
		MinifyIdentifiers: true,
		Engines:           Target,
		Sourcemap:         api.SourceMapExternal,
		Sourcefile:        filename,
	})

	if len(result.Errors) > 0 {
		return Result{}, h.Engine("LightningCSS minify error", result.Errors[0].Text)
	}

	// esbuild ends its output with a newline; the artifact CSS carries none.
	out := Result{CSS: strings.TrimRight(string(result.Code), "\n")}
	if len(result.Map) > 0 {
		m := string(result.Map)
		out.Map = &m
	}
	return out, nil
}

// RunAndReplacePlaceholder implements §4.7's placeholder-substitution
// entry point: run the pipeline, then textually replace the first
// occurrence of placeholder in the minified output with finalText.
func RunAndReplacePlaceholder(rawCSS, finalText, placeholder, filename string, h *handler.Handler) (Result, error) {
	out, err := Run(rawCSS, filename, h)
	if err != nil {
		return Result{}, err
	}
	out.CSS = strings.Replace(out.CSS, placeholder, finalText, 1)
	return out, nil
}

// tokenCheck walks rawCSS with tdewolff/parse/v2/css's grammar-level
// tokenizer, the same dependency and traversal shape the teacher's
// ScopeStyle uses (internal/transform/scope-css.go), surfacing a malformed
// token stream before the heavier esbuild pass runs.
func tokenCheck(rawCSS string) error {
	input := parse.NewInput(strings.NewReader(rawCSS))
	p := css.NewParser(input, false)
	for {
		gt, _, _ := p.Next()
		if gt == css.ErrorGrammar {
			if err := p.Err(); err != nil && err.Error() != "EOF" {
				return err
			}
			return nil
		}
	}
}
