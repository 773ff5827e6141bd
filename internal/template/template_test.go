package template

import (
	"strings"
	"testing"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/cssxtract/compiler/internal/handler"
	"github.com/cssxtract/compiler/internal/jsparse"
	"github.com/cssxtract/compiler/internal/lowering"
	"github.com/cssxtract/compiler/internal/model"
	"github.com/cssxtract/compiler/internal/theme"
)

func quasiOf(t *testing.T, src string) (*jsparse.Tree, *tree_sitter.Node) {
	t.Helper()
	full := "const a = " + src + ";"
	tree, err := jsparse.Parse([]byte(full))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tree.HasParseError() {
		t.Fatalf("unexpected parse error in %q", full)
	}
	tpl := findKind(tree.Root(), "template_string")
	if tpl == nil {
		t.Fatalf("no template_string found in %q", full)
	}
	return tree, tpl
}

func findKind(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	if n == nil {
		return nil
	}
	if n.Kind() == kind {
		return n
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if found := findKind(n.Child(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func newContext(tree *jsparse.Tree, th theme.Tree, hasTheme bool) *lowering.Context {
	return &lowering.Context{
		Filename: "test.tsx",
		Source:   tree.Source,
		Theme:    th,
		HasTheme: hasTheme,
		Bindings: model.NewKeyframeBindings(),
		Handler:  handler.New("test.tsx", string(tree.Source)),
	}
}

func TestGlobalCssLiteralConcatenation(t *testing.T) {
	tree, tpl := quasiOf(t, "globalCss`body { margin: ${0}; }`")
	defer tree.Close()
	ctx := newContext(tree, nil, false)

	got, err := GlobalCss(tpl, ctx)
	if err != nil {
		t.Fatalf("GlobalCss: %v", err)
	}
	if got != "body { margin: 0; }" {
		t.Errorf("GlobalCss() = %q", got)
	}
}

func TestGlobalCssThemeInterpolation(t *testing.T) {
	th, err := theme.Parse(`{"colors":{"bg":"white"}}`)
	if err != nil {
		t.Fatalf("theme.Parse: %v", err)
	}
	tree, tpl := quasiOf(t, "globalCss`body { background: ${theme.colors.bg}; }`")
	defer tree.Close()
	ctx := newContext(tree, th, true)

	got, err := GlobalCss(tpl, ctx)
	if err != nil {
		t.Fatalf("GlobalCss: %v", err)
	}
	if got != "body { background: white; }" {
		t.Errorf("GlobalCss() = %q", got)
	}
}

func TestGlobalCssNonLiteralWithoutThemeRejected(t *testing.T) {
	tree, tpl := quasiOf(t, "globalCss`body { margin: ${someVar}; }`")
	defer tree.Close()
	ctx := newContext(tree, nil, false)

	_, err := GlobalCss(tpl, ctx)
	if err == nil {
		t.Fatal("expected error for non-literal interpolation without a theme")
	}
}

func TestKeyframesWrapsPlaceholder(t *testing.T) {
	tree, tpl := quasiOf(t, "keyframes`from { opacity: ${0}; } to { opacity: ${1}; }`")
	defer tree.Close()
	ctx := newContext(tree, nil, false)

	got, err := Keyframes(tpl, ctx)
	if err != nil {
		t.Fatalf("Keyframes: %v", err)
	}
	if !strings.HasPrefix(got, "@keyframes __kf_placeholder__ {") {
		t.Errorf("Keyframes() = %q, want placeholder wrapper", got)
	}
	if !strings.Contains(got, "from { opacity: 0; } to { opacity: 1; }") {
		t.Errorf("Keyframes() = %q, want literal concatenation", got)
	}
}

func TestKeyframesRejectsThemeInterpolation(t *testing.T) {
	th, err := theme.Parse(`{"timing":{"fast":1}}`)
	if err != nil {
		t.Fatalf("theme.Parse: %v", err)
	}
	tree, tpl := quasiOf(t, "keyframes`from { opacity: ${theme.timing.fast}; }`")
	defer tree.Close()
	ctx := newContext(tree, th, true)

	_, err = Keyframes(tpl, ctx)
	if err == nil {
		t.Fatal("expected error: keyframes never allows theme interpolation")
	}
}
