package jsparse

import (
	"testing"

	"gotest.tools/v3/assert"
)

func parseExpr(t *testing.T, src string) (*Tree, func()) {
	t.Helper()
	tree, err := Parse([]byte(src))
	assert.NilError(t, err)
	assert.Assert(t, !tree.HasParseError(), "unexpected parse error in %q", src)
	return tree, tree.Close
}

func TestParseDetectsSyntaxError(t *testing.T) {
	tree, err := Parse([]byte("const a = ;;; (((("))
	assert.NilError(t, err)
	defer tree.Close()
	assert.Assert(t, tree.HasParseError(), "want HasParseError() true for malformed input")
}

func TestParseWellFormedSource(t *testing.T) {
	tree, closeFn := parseExpr(t, `const a = css({ color: "red" });`)
	defer closeFn()
	assert.Assert(t, tree.Root() != nil)
}

func TestCalleeIdentifierName(t *testing.T) {
	tree, closeFn := parseExpr(t, `css({ color: "red" });`)
	defer closeFn()

	call := tree.Root().NamedChild(0).NamedChild(0)
	assert.Equal(t, Kind(call), "call_expression")
	assert.Equal(t, CalleeIdentifierName(call, tree.Source), "css")
}

func TestIsTaggedTemplate(t *testing.T) {
	tree, closeFn := parseExpr(t, "globalCss`body{margin:0}`;")
	defer closeFn()

	call := tree.Root().NamedChild(0).NamedChild(0)
	if !IsTaggedTemplate(call) {
		t.Error("IsTaggedTemplate() = false, want true")
	}
	if got := CalleeIdentifierName(call, tree.Source); got != "globalCss" {
		t.Errorf("CalleeIdentifierName() = %q, want %q", got, "globalCss")
	}
}

func TestStringLiteralValue(t *testing.T) {
	tree, closeFn := parseExpr(t, `const a = "hello";`)
	defer closeFn()

	decl := tree.Root().NamedChild(0).NamedChild(0)
	value := decl.ChildByFieldName("value")
	if !IsStringLiteral(value) {
		t.Fatalf("expected string literal, got %q", Kind(value))
	}
	if got := StringLiteralValue(value, tree.Source); got != "hello" {
		t.Errorf("StringLiteralValue() = %q, want %q", got, "hello")
	}
}
