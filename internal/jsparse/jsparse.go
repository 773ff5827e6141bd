// Package jsparse wraps the external JS/TS/JSX parser the spec treats as a
// collaborator (spec.md §6 "Dependencies consumed"). The concrete parser is
// a tree-sitter TSX grammar — go-tree-sitter plus tree-sitter-typescript —
// which is a real, already-depended-upon combination in the example pack
// (DeusData-codebase-memory-mcp/internal/parser). It yields a concrete
// syntax tree with precise byte spans for every node; this package adds the
// handful of semantic predicates spec.md's walker needs on top of the raw
// node-kind strings (static vs. computed member access, identifier vs.
// binding position, and so on). See SPEC_FULL.md §3 "Parse tree adaptation".
package jsparse

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Tree owns the parsed tree and the source bytes it was parsed from. Close
// must be called when the caller is done with it.
type Tree struct {
	inner  *tree_sitter.Tree
	Source []byte
}

func (t *Tree) Root() *tree_sitter.Node { return t.inner.RootNode() }

func (t *Tree) Close() {
	if t.inner != nil {
		t.inner.Close()
	}
}

// HasParseError reports whether the host parser encountered anything that
// should trigger the SoftFail contract (spec.md §4.11, §7.3): a syntax
// error anywhere in the tree, or missing tokens the grammar had to
// synthesize to recover.
func (t *Tree) HasParseError() bool {
	return t.Root().HasError()
}

// Parse parses source as TSX (a JS/TS/JSX superset grammar, so one parser
// call covers all three recognized input flavors the spec names).
func Parse(source []byte) (*Tree, error) {
	lang := tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, err
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, errNilTree
	}
	return &Tree{inner: tree, Source: source}, nil
}

var errNilTree = parseError("tree-sitter returned a nil tree")

type parseError string

func (e parseError) Error() string { return string(e) }

// Text returns the verbatim source text spanned by node.
func Text(node *tree_sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}
