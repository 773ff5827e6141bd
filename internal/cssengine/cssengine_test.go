package cssengine

import (
	"strings"
	"testing"

	"github.com/cssxtract/compiler/internal/handler"
)

func TestRunMinifiesAndProducesSourceMap(t *testing.T) {
	h := handler.New("test.tsx", "")
	raw := ".css_obj {\n  font-size: 12px;\n  opacity: 0.5;\n}\n"

	out, err := Run(raw, "test.css", h)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.CSS, "\n") {
		t.Errorf("Run() CSS = %q, want minified (no newlines)", out.CSS)
	}
	if !strings.Contains(out.CSS, "font-size:12px") {
		t.Errorf("Run() CSS = %q, want font-size rule", out.CSS)
	}
	if out.Map == nil || *out.Map == "" {
		t.Error("Run() did not produce a source map")
	}
}

func TestRunAndReplacePlaceholder(t *testing.T) {
	h := handler.New("test.tsx", "")
	raw := ".css_obj {\n  color: red;\n}\n"

	out, err := RunAndReplacePlaceholder(raw, ".cls_deadbeef", ".css_obj", "test.css", h)
	if err != nil {
		t.Fatalf("RunAndReplacePlaceholder: %v", err)
	}
	if !strings.Contains(out.CSS, ".cls_deadbeef") {
		t.Errorf("RunAndReplacePlaceholder() CSS = %q, want placeholder replaced", out.CSS)
	}
	if strings.Contains(out.CSS, ".css_obj") {
		t.Errorf("RunAndReplacePlaceholder() CSS = %q, placeholder should be gone", out.CSS)
	}
}

func TestRunRejectsMalformedCSS(t *testing.T) {
	h := handler.New("test.tsx", "")
	raw := "}}}{{{"

	if _, err := Run(raw, "test.css", h); err == nil {
		t.Fatal("expected error for malformed CSS")
	}
}

func TestTokenCheckAcceptsWellFormedCSS(t *testing.T) {
	if err := tokenCheck(".foo { color: red; }"); err != nil {
		t.Errorf("tokenCheck() = %v, want nil for well-formed CSS", err)
	}
}
