package jsparse

import (
	"strconv"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// This file is the one place that names tree-sitter-javascript/typescript
// grammar node kinds and field names. Everything elsewhere in the driver
// talks to these semantic predicates instead of bare kind strings, so a
// grammar-version drift only needs fixing in one place.

const (
	KindProgram               = "program"
	KindExpressionStatement   = "expression_statement"
	KindLexicalDeclaration    = "lexical_declaration"
	KindVariableDeclaration   = "variable_declaration"
	KindVariableDeclarator    = "variable_declarator"
	KindReturnStatement       = "return_statement"
	KindStatementBlock        = "statement_block"
	KindIfStatement           = "if_statement"
	KindExportStatement       = "export_statement"
	KindFunctionDeclaration   = "function_declaration"
	KindCallExpression        = "call_expression"
	KindArguments             = "arguments"
	KindMemberExpression      = "member_expression"
	KindSubscriptExpression   = "subscript_expression"
	KindIdentifier            = "identifier"
	KindPropertyIdentifier    = "property_identifier"
	KindString                = "string"
	KindNumber                = "number"
	KindTemplateString        = "template_string"
	KindTemplateSubstitution  = "template_substitution"
	KindStringFragment        = "string_fragment"
	KindObject                = "object"
	KindPair                  = "pair"
	KindSpreadElement         = "spread_element"
	KindShorthandPropIdent    = "shorthand_property_identifier"
	KindArrowFunction         = "arrow_function"
	KindFormalParameters      = "formal_parameters"
	KindParenthesizedExpr     = "parenthesized_expression"
	KindBinaryExpression      = "binary_expression"
	KindJSXExpression         = "jsx_expression"
	KindJSXElement            = "jsx_element"
	KindJSXSelfClosingElement = "jsx_self_closing_element"
	KindJSXOpeningElement     = "jsx_opening_element"
	KindJSXAttribute          = "jsx_attribute"
)

func Kind(n *tree_sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Kind()
}

func IsCallExpression(n *tree_sitter.Node) bool { return Kind(n) == KindCallExpression }

// IsTaggedTemplate reports whether call expression n is actually a tagged
// template (tag`...`): the grammar represents this as a call_expression
// whose "arguments" field is a template_string node directly, rather than
// an "arguments" list.
func IsTaggedTemplate(n *tree_sitter.Node) bool {
	if !IsCallExpression(n) {
		return false
	}
	args := n.ChildByFieldName("arguments")
	return Kind(args) == KindTemplateString
}

// CalleeIdentifierName returns the callee's name when the callee is a bare
// identifier (css(...), container(...), globalCss`...`, keyframes`...`),
// and "" otherwise (computed/member callees are not recognized sites).
func CalleeIdentifierName(call *tree_sitter.Node, source []byte) string {
	fn := call.ChildByFieldName("function")
	if Kind(fn) != KindIdentifier {
		return ""
	}
	return Text(fn, source)
}

// CallArguments returns the positional argument expressions of an ordinary
// (non-tagged-template) call expression.
func CallArguments(call *tree_sitter.Node) []*tree_sitter.Node {
	args := call.ChildByFieldName("arguments")
	if Kind(args) != KindArguments {
		return nil
	}
	return NamedChildren(args)
}

// TemplateQuasi returns the template_string node of a tagged template call.
func TemplateQuasi(call *tree_sitter.Node) *tree_sitter.Node {
	return call.ChildByFieldName("arguments")
}

// NamedChildren returns every named child of n, in source order.
func NamedChildren(n *tree_sitter.Node) []*tree_sitter.Node {
	if n == nil {
		return nil
	}
	out := make([]*tree_sitter.Node, 0, n.NamedChildCount())
	for i := uint(0); i < n.NamedChildCount(); i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

// TemplateParts splits a template_string node into its literal text chunks
// (quasis) and interpolated expressions, in source order: len(quasis) ==
// len(expressions)+1.
func TemplateParts(tpl *tree_sitter.Node, source []byte) (quasis []string, exprs []*tree_sitter.Node) {
	var cur strings.Builder
	for i := uint(0); i < tpl.ChildCount(); i++ {
		c := tpl.Child(i)
		switch Kind(c) {
		case KindStringFragment:
			cur.WriteString(Text(c, source))
		case KindTemplateSubstitution:
			quasis = append(quasis, cur.String())
			cur.Reset()
			named := NamedChildren(c)
			if len(named) > 0 {
				exprs = append(exprs, named[0])
			} else {
				exprs = append(exprs, nil)
			}
		default:
			// "`" delimiters and escape-sequence tokens are skipped; raw
			// text between fragments/substitutions is rare in this grammar
			// but if present it's still literal text.
			if c != nil && !c.IsNamed() && Text(c, source) != "`" {
				cur.WriteString(Text(c, source))
			}
		}
	}
	quasis = append(quasis, cur.String())
	return quasis, exprs
}

// IsObjectExpression reports whether n is an object literal `{ ... }`.
func IsObjectExpression(n *tree_sitter.Node) bool { return Kind(n) == KindObject }

// ObjectProperties returns the pair/spread entries of an object literal, in
// source order.
func ObjectProperties(obj *tree_sitter.Node) []*tree_sitter.Node {
	return NamedChildren(obj)
}

// IsPair / IsSpread classify one object-literal entry.
func IsPair(n *tree_sitter.Node) bool   { return Kind(n) == KindPair }
func IsSpread(n *tree_sitter.Node) bool { return Kind(n) == KindSpreadElement }

// SpreadArgument returns the expression being spread.
func SpreadArgument(n *tree_sitter.Node) *tree_sitter.Node {
	named := NamedChildren(n)
	if len(named) == 0 {
		return nil
	}
	return named[0]
}

// PairKeyValue returns a pair's key and value nodes.
func PairKeyValue(pair *tree_sitter.Node) (key, value *tree_sitter.Node) {
	return pair.ChildByFieldName("key"), pair.ChildByFieldName("value")
}

// StaticKeyName returns the plain string name of a property key when it is
// an identifier or a string literal, and ok=false for anything else
// (computed keys, numeric keys, private names).
func StaticKeyName(key *tree_sitter.Node, source []byte) (name string, ok bool) {
	switch Kind(key) {
	case KindPropertyIdentifier, KindIdentifier:
		return Text(key, source), true
	case KindString:
		return StringLiteralValue(key, source), true
	default:
		return "", false
	}
}

// StringLiteralValue strips the surrounding quote characters from a
// `string` node's source text. Tree-sitter-javascript always wraps the
// fragment in a single matching quote-token pair, so stripping the first
// and last byte is exact for both quote styles.
func StringLiteralValue(n *tree_sitter.Node, source []byte) string {
	raw := Text(n, source)
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func IsStringLiteral(n *tree_sitter.Node) bool { return Kind(n) == KindString }
func IsNumberLiteral(n *tree_sitter.Node) bool { return Kind(n) == KindNumber }
func IsTemplateString(n *tree_sitter.Node) bool { return Kind(n) == KindTemplateString }
func IsIdentifier(n *tree_sitter.Node) bool     { return Kind(n) == KindIdentifier }
func IsParenthesized(n *tree_sitter.Node) bool  { return Kind(n) == KindParenthesizedExpr }
func IsBinaryExpression(n *tree_sitter.Node) bool { return Kind(n) == KindBinaryExpression }
func IsMemberExpression(n *tree_sitter.Node) bool { return Kind(n) == KindMemberExpression }
func IsComputedMember(n *tree_sitter.Node) bool    { return Kind(n) == KindSubscriptExpression }
func IsArrowFunction(n *tree_sitter.Node) bool      { return Kind(n) == KindArrowFunction }
func IsVariableDeclarator(n *tree_sitter.Node) bool { return Kind(n) == KindVariableDeclarator }
func IsJSXElement(n *tree_sitter.Node) bool         { return Kind(n) == KindJSXElement }
func IsJSXSelfClosingElement(n *tree_sitter.Node) bool {
	return Kind(n) == KindJSXSelfClosingElement
}
func IsJSXExpressionContainer(n *tree_sitter.Node) bool { return Kind(n) == KindJSXExpression }
func IsJSXAttribute(n *tree_sitter.Node) bool           { return Kind(n) == KindJSXAttribute }
func IsJSXOpeningElement(n *tree_sitter.Node) bool      { return Kind(n) == KindJSXOpeningElement }

// NumberLiteralValue parses a `number` node's text as a float64.
func NumberLiteralValue(n *tree_sitter.Node, source []byte) (float64, error) {
	return strconv.ParseFloat(Text(n, source), 64)
}

// BinaryOperands returns left, operator text, right of a binary_expression.
func BinaryOperands(n *tree_sitter.Node, source []byte) (left *tree_sitter.Node, op string, right *tree_sitter.Node) {
	left = n.ChildByFieldName("left")
	right = n.ChildByFieldName("right")
	opNode := n.ChildByFieldName("operator")
	if opNode != nil {
		op = Text(opNode, source)
	}
	return left, op, right
}

// MemberObjectProperty returns a member_expression's object and property
// name text.
func MemberObjectProperty(n *tree_sitter.Node, source []byte) (object *tree_sitter.Node, property string) {
	object = n.ChildByFieldName("object")
	prop := n.ChildByFieldName("property")
	return object, Text(prop, source)
}

// Unparenthesize strips any number of wrapping parenthesized_expression
// layers around n.
func Unparenthesize(n *tree_sitter.Node) *tree_sitter.Node {
	for IsParenthesized(n) {
		named := NamedChildren(n)
		if len(named) == 0 {
			return n
		}
		n = named[0]
	}
	return n
}
