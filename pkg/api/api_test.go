package api

import (
	"strings"
	"testing"
)

func TestTransformPublicWrapper(t *testing.T) {
	src := `const a = css({ color: "red" })`

	result, err := Transform("input.js", src, nil, "")
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if len(result.CSSRules) != 1 {
		t.Fatalf("CSSRules = %d entries, want 1", len(result.CSSRules))
	}
	if !strings.Contains(result.Code, `"cls_`) {
		t.Errorf("Code = %q, want rewritten class identifier", result.Code)
	}
	if !strings.Contains(result.CSSRules[0].CSS, "color:red") {
		t.Errorf("CSSRules[0].CSS = %q, want color:red", result.CSSRules[0].CSS)
	}
}

func TestTransformPublicWrapperSoftFail(t *testing.T) {
	src := "const a = ;;; unparseable((("

	result, err := Transform("input.js", src, nil, "")
	if err != nil {
		t.Fatalf("Transform: %v, want soft-fail", err)
	}
	if result.Code != src {
		t.Errorf("Code = %q, want unchanged source", result.Code)
	}
}
