// Package lowering implements spec.md §4.5: recursively emitting an object
// expression tree as raw (pre-minification) CSS text.
package lowering

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cssxtract/compiler/internal/handler"
	"github.com/cssxtract/compiler/internal/jsparse"
	"github.com/cssxtract/compiler/internal/model"
	"github.com/cssxtract/compiler/internal/staticeval"
	"github.com/cssxtract/compiler/internal/theme"
)

// Context bundles the per-invocation read-mostly state the lowering pass
// and the evaluator both need (spec.md §9 "context threading").
type Context struct {
	Filename string
	Source   []byte
	Theme    theme.Tree
	HasTheme bool
	Bindings model.KeyframeBindings
	Handler  *handler.Handler
}

func (c *Context) evaluator() *staticeval.Evaluator {
	return &staticeval.Evaluator{
		Filename: c.Filename,
		Source:   c.Source,
		Theme:    c.Theme,
		HasTheme: c.HasTheme,
		Handler:  c.Handler,
	}
}

// EvalExpr exposes the §4.4 static evaluator to sibling packages (the
// template concatenators) that need it without duplicating its wiring.
func (c *Context) EvalExpr(node *tree_sitter.Node) (model.StaticValue, error) {
	return c.evaluator().Eval(node)
}

// Object lowers an object expression into raw CSS text, per spec.md §4.5.
// Every emitted declaration or nested rule ends with a newline, so a
// non-empty result ends with one (an object with no entries yields ""); the caller
// wraps it in the outer ".css_obj { ... }" rule before handing it to the
// CSS pipeline.
func Object(obj *tree_sitter.Node, indent int, ctx *Context) (string, error) {
	pad := strings.Repeat("  ", indent)
	var b strings.Builder

	for _, prop := range jsparse.ObjectProperties(obj) {
		switch {
		case jsparse.IsSpread(prop):
			frag, err := loweredSpread(prop, ctx)
			if err != nil {
				return "", err
			}
			b.WriteString(pad)
			b.WriteString(frag)
			b.WriteString("\n")

		case jsparse.IsPair(prop):
			keyNode, valueNode := jsparse.PairKeyValue(prop)
			name, ok := jsparse.StaticKeyName(keyNode, ctx.Source)
			if !ok {
				return "", ctx.Handler.AtOffset(int(keyNode.StartByte()),
					"css() — computed or dynamic property keys are not supported.",
					"use a static identifier or string literal as the key.")
			}
			frag, err := loweredValue(name, valueNode, indent, ctx)
			if err != nil {
				return "", err
			}
			b.WriteString(frag)

		default:
			return "", ctx.Handler.AtOffset(int(prop.StartByte()),
				"css() — unsupported object-literal entry.",
				"only plain properties and container(...) spreads are supported.")
		}
	}

	return b.String(), nil
}

func loweredValue(key string, value *tree_sitter.Node, indent int, ctx *Context) (string, error) {
	pad := strings.Repeat("  ", indent)
	kebab := model.CamelToKebab(key)

	switch {
	case jsparse.IsObjectExpression(value):
		body, err := Object(value, indent+1, ctx)
		if err != nil {
			return "", err
		}
		return pad + key + " {\n" + body + pad + "}\n", nil

	case jsparse.IsStringLiteral(value):
		return pad + kebab + ": " + jsparse.StringLiteralValue(value, ctx.Source) + ";\n", nil

	case jsparse.IsNumberLiteral(value):
		n, err := jsparse.NumberLiteralValue(value, ctx.Source)
		if err != nil {
			return "", ctx.Handler.AtOffset(int(value.StartByte()), "css() — malformed numeric literal.", "extract the value to a constant or use a CSS variable.")
		}
		return pad + kebab + ": " + model.Number(n).Render(kebab) + ";\n", nil

	case jsparse.IsTemplateString(value):
		text, err := loweredTemplateValue(value, ctx)
		if err != nil {
			return "", err
		}
		return pad + kebab + ": " + text + ";\n", nil

	default:
		v, err := ctx.evaluator().Eval(value)
		if err != nil {
			return "", err
		}
		return pad + kebab + ": " + v.Render(kebab) + ";\n", nil
	}
}

// loweredTemplateValue implements §4.5's special keyframe-binding rule: a
// sole-identifier interpolation matching a registered keyframe binding is
// substituted by its generated name, bypassing the evaluator (which would
// otherwise reject the identifier as a runtime variable).
func loweredTemplateValue(tpl *tree_sitter.Node, ctx *Context) (string, error) {
	quasis, exprs := jsparse.TemplateParts(tpl, ctx.Source)
	var b strings.Builder
	for i, q := range quasis {
		b.WriteString(q)
		if i >= len(exprs) {
			continue
		}
		expr := exprs[i]
		if jsparse.IsIdentifier(expr) {
			if name, bound := ctx.Bindings[jsparse.Text(expr, ctx.Source)]; bound {
				b.WriteString(name)
				continue
			}
		}
		v, err := ctx.evaluator().Eval(expr)
		if err != nil {
			return "", err
		}
		b.WriteString(v.AsText())
	}
	return b.String(), nil
}

func loweredSpread(spread *tree_sitter.Node, ctx *Context) (string, error) {
	arg := jsparse.SpreadArgument(spread)
	if !jsparse.IsCallExpression(arg) || jsparse.CalleeIdentifierName(arg, ctx.Source) != "container" {
		return "", ctx.Handler.AtOffset(int(spread.StartByte()),
			"css() — unsupported spread; only ...container(...) is allowed.",
			"inline the spread or replace it with a container(...) call.")
	}
	return Container(arg, ctx)
}
