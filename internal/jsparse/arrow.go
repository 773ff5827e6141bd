package jsparse

import tree_sitter "github.com/tree-sitter/go-tree-sitter"

// ArrowParamCount returns the number of parameters of an arrow function,
// handling both the single-bare-identifier form (`x => ...`) and the
// parenthesized form (`(x) => ...` / `({ x }) => ...`).
func ArrowParamCount(arrow *tree_sitter.Node) int {
	params := arrow.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	if Kind(params) == KindFormalParameters {
		return int(params.NamedChildCount())
	}
	// A lone identifier parameter with no parens is the parameter itself.
	return 1
}

// ArrowBodyObject implements spec.md §4.10's "body returns an object
// expression" recognition: concise-body (`=> ({...})`), parenthesized
// concise-body, or block body with an explicit `return {...}`.
func ArrowBodyObject(arrow *tree_sitter.Node) *tree_sitter.Node {
	body := arrow.ChildByFieldName("body")
	if body == nil {
		return nil
	}
	switch Kind(body) {
	case KindStatementBlock:
		for _, stmt := range NamedChildren(body) {
			if Kind(stmt) != KindReturnStatement {
				continue
			}
			ret := NamedChildren(stmt)
			if len(ret) == 0 {
				continue
			}
			candidate := Unparenthesize(ret[0])
			if IsObjectExpression(candidate) {
				return candidate
			}
		}
		return nil
	default:
		candidate := Unparenthesize(body)
		if IsObjectExpression(candidate) {
			return candidate
		}
		return nil
	}
}
