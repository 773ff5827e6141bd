package sourcemap

import (
	"strings"
	"testing"

	"github.com/cssxtract/compiler/internal/model"
)

func TestEncodeVLQKnownValues(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{16, "gB"},
	}
	for _, c := range cases {
		if got := encodeVLQ(c.in); got != c.want {
			t.Errorf("encodeVLQ(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildProducesWellFormedJSON(t *testing.T) {
	source := `const a = css({ color: "red" });`
	generated := `const a = "cls_deadbeef";`
	edits := []model.Edit{
		{Start: 10, End: 31, Replacement: `"cls_deadbeef"`},
	}

	out := Build("test.tsx", source, generated, edits)

	if !strings.HasPrefix(out, `{"version":3,"sources":["test.tsx"],"names":[],"mappings":"`) {
		t.Errorf("Build() = %q, want well-formed v3 source map prefix", out)
	}
	if !strings.HasSuffix(out, `"}`) {
		t.Errorf("Build() = %q, want to end with closing quote/brace", out)
	}
}

func TestBuildNoEditsProducesIdentityMapping(t *testing.T) {
	source := "const a = 1;"
	out := Build("test.tsx", source, source, nil)
	if !strings.Contains(out, `"mappings":"AAAA"`) {
		t.Errorf("Build() with no edits = %q, want a single identity mapping", out)
	}
}
