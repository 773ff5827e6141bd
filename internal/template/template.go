// Package template implements spec.md §4.8 and §4.9: concatenating a
// tagged template's quasis and interpolations into raw CSS text for
// globalCss and keyframes sites.
package template

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cssxtract/compiler/internal/helpers"
	"github.com/cssxtract/compiler/internal/jsparse"
	"github.com/cssxtract/compiler/internal/lowering"
)

// GlobalCss implements §4.8: interpolations may be string/numeric literals
// unconditionally, or — when a theme was supplied — any expression §4.4
// accepts.
func GlobalCss(tpl *tree_sitter.Node, ctx *lowering.Context) (string, error) {
	return concatenate(tpl, ctx, ctx.HasTheme, "globalCss")
}

// Keyframes implements §4.9: like GlobalCss, but theme-backed interpolation
// is never enabled — only string/numeric literals are accepted regardless
// of whether a theme was supplied.
func Keyframes(tpl *tree_sitter.Node, ctx *lowering.Context) (string, error) {
	inner, err := concatenate(tpl, ctx, false, "keyframes")
	if err != nil {
		return "", err
	}
	return "@keyframes __kf_placeholder__ { " + strings.TrimSpace(inner) + " }", nil
}

func concatenate(tpl *tree_sitter.Node, ctx *lowering.Context, allowNonLiteral bool, tagName string) (string, error) {
	quasis, exprs := jsparse.TemplateParts(tpl, ctx.Source)
	var b strings.Builder
	for i, q := range quasis {
		b.WriteString(q)
		if i >= len(exprs) {
			continue
		}
		expr := exprs[i]
		switch {
		case jsparse.IsStringLiteral(expr):
			b.WriteString(jsparse.StringLiteralValue(expr, ctx.Source))
		case jsparse.IsNumberLiteral(expr):
			n, err := jsparse.NumberLiteralValue(expr, ctx.Source)
			if err != nil {
				return "", ctx.Handler.AtOffset(int(expr.StartByte()),
					tagName+"`...` — malformed numeric literal.",
					"extract the value to a constant or use a CSS variable.")
			}
			b.WriteString(helpers.FormatMinimalDecimal(n))
		case allowNonLiteral:
			v, err := ctx.EvalExpr(expr)
			if err != nil {
				return "", err
			}
			b.WriteString(v.AsText())
		default:
			hint := "use a string or numeric literal, or add a theme to the transform call."
			if tagName == "keyframes" {
				hint = "use a string or numeric literal."
			}
			return "", ctx.Handler.AtOffset(int(expr.StartByte()),
				tagName+"`...` — non-static interpolation is not supported without a theme.",
				hint)
		}
	}
	return b.String(), nil
}
