// Package staticeval implements spec.md §4.4: reducing an expression
// subtree to a model.StaticValue, or failing with a located InvalidArg
// error.
package staticeval

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cssxtract/compiler/internal/handler"
	"github.com/cssxtract/compiler/internal/jsparse"
	"github.com/cssxtract/compiler/internal/model"
	"github.com/cssxtract/compiler/internal/theme"
)

// Evaluator bundles the read-mostly per-invocation state the static
// evaluator borrows (spec.md §9 "context threading"): the filename/source
// pair for locating diagnostics, and the optional theme.
type Evaluator struct {
	Filename string
	Source   []byte
	Theme    theme.Tree
	HasTheme bool
	Handler  *handler.Handler
}

const extractHint = "extract the value to a constant or use a CSS variable."

// Eval reduces node per spec.md §4.4's recognized shapes.
func (e *Evaluator) Eval(node *tree_sitter.Node) (model.StaticValue, error) {
	switch {
	case jsparse.IsStringLiteral(node):
		return model.String(jsparse.StringLiteralValue(node, e.Source)), nil

	case jsparse.IsNumberLiteral(node):
		n, err := jsparse.NumberLiteralValue(node, e.Source)
		if err != nil {
			return model.StaticValue{}, e.err(node, "malformed numeric literal.", extractHint)
		}
		return model.Number(n), nil

	case jsparse.IsTemplateString(node):
		return e.evalTemplate(node)

	case jsparse.IsBinaryExpression(node):
		return e.evalBinary(node)

	case jsparse.IsComputedMember(node):
		return model.StaticValue{}, e.err(node,
			"computed member access (e.g. theme.colors[key]) is not supported. Use a static property name.",
			extractHint)

	case jsparse.IsMemberExpression(node) || jsparse.IsIdentifier(node):
		return e.evalMemberOrIdentifier(node)

	default:
		return model.StaticValue{}, e.err(node, "only static values are supported.", extractHint)
	}
}

func (e *Evaluator) evalTemplate(node *tree_sitter.Node) (model.StaticValue, error) {
	quasis, exprs := jsparse.TemplateParts(node, e.Source)
	var b strings.Builder
	for i, q := range quasis {
		b.WriteString(q)
		if i < len(exprs) {
			v, err := e.Eval(exprs[i])
			if err != nil {
				return model.StaticValue{}, err
			}
			b.WriteString(v.AsText())
		}
	}
	return model.String(b.String()), nil
}

func (e *Evaluator) evalBinary(node *tree_sitter.Node) (model.StaticValue, error) {
	leftNode, op, rightNode := jsparse.BinaryOperands(node, e.Source)
	left, err := e.Eval(leftNode)
	if err != nil {
		return model.StaticValue{}, err
	}
	right, err := e.Eval(rightNode)
	if err != nil {
		return model.StaticValue{}, err
	}

	switch op {
	case "+":
		if left.Kind == model.KindNumber && right.Kind == model.KindNumber {
			return model.Number(left.Num + right.Num), nil
		}
		return model.String(left.AsText() + right.AsText()), nil
	case "-":
		if left.Kind != model.KindNumber || right.Kind != model.KindNumber {
			return model.StaticValue{}, e.err(node, "subtraction is only supported between numbers.", extractHint)
		}
		return model.Number(left.Num - right.Num), nil
	case "*":
		if left.Kind != model.KindNumber || right.Kind != model.KindNumber {
			return model.StaticValue{}, e.err(node, "multiplication is only supported between numbers.", extractHint)
		}
		return model.Number(left.Num * right.Num), nil
	case "/":
		if left.Kind != model.KindNumber || right.Kind != model.KindNumber || right.Num == 0 {
			return model.StaticValue{}, e.err(node, "division by zero or non-numeric operand.", extractHint)
		}
		return model.Number(left.Num / right.Num), nil
	default:
		return model.StaticValue{}, e.err(node, "unsupported binary operator in expression.", extractHint)
	}
}

// memberChain collects a static member/identifier chain ("theme", "colors",
// "primary"), returning ok=false the moment it hits a computed access or
// anything else that isn't a plain identifier/member chain.
func memberChain(node *tree_sitter.Node, source []byte) (chain []string, ok bool) {
	switch {
	case jsparse.IsIdentifier(node):
		return []string{jsparse.Text(node, source)}, true
	case jsparse.IsMemberExpression(node):
		object, property := jsparse.MemberObjectProperty(node, source)
		head, headOK := memberChain(object, source)
		if !headOK {
			return nil, false
		}
		return append(head, property), true
	default:
		return nil, false
	}
}

func (e *Evaluator) evalMemberOrIdentifier(node *tree_sitter.Node) (model.StaticValue, error) {
	chain, ok := memberChain(node, e.Source)
	if !ok {
		return model.StaticValue{}, e.err(node,
			"computed member access (e.g. theme.colors[key]) is not supported. Use a static property name.",
			extractHint)
	}

	if chain[0] == "theme" {
		if !e.HasTheme {
			return model.StaticValue{}, e.err(node,
				"'theme' is referenced but no theme was provided to the plugin.",
				"add a theme to the transform call.")
		}
		v, err := theme.Resolve(e.Theme, chain[1:])
		if err != nil {
			return model.StaticValue{}, e.err(node, err.Error()+".",
				"check that the path exists in the theme object and ends at a string or number.")
		}
		return v, nil
	}

	return model.StaticValue{}, e.err(node,
		"only static values are supported (identifier '"+chain[0]+"' is a runtime variable).",
		extractHint)
}

func (e *Evaluator) err(node *tree_sitter.Node, message, hint string) error {
	return e.Handler.AtOffset(int(node.StartByte()), "css() — "+message, hint)
}
