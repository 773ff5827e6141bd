package lowering

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cssxtract/compiler/internal/jsparse"
)

// Container implements spec.md §4.6: the one spread form `css` accepts,
// `...container(type)` or `...container(name, type)`.
func Container(call *tree_sitter.Node, ctx *Context) (string, error) {
	args := jsparse.CallArguments(call)

	badArity := func() (string, error) {
		return "", ctx.Handler.AtOffset(int(call.StartByte()),
			"css() — container(...) accepts 1 or 2 string-literal arguments.",
			"pass container(type) or container(name, type).")
	}

	stringArg := func(n *tree_sitter.Node) (string, bool) {
		if !jsparse.IsStringLiteral(n) {
			return "", false
		}
		return jsparse.StringLiteralValue(n, ctx.Source), true
	}

	switch len(args) {
	case 1:
		typ, ok := stringArg(args[0])
		if !ok {
			return badArity()
		}
		return "container-type: " + typ + ";", nil
	case 2:
		name, ok1 := stringArg(args[0])
		typ, ok2 := stringArg(args[1])
		if !ok1 || !ok2 {
			return badArity()
		}
		return "container-type: " + typ + ";\n  container-name: " + name + ";", nil
	default:
		return badArity()
	}
}
