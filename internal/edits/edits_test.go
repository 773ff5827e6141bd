package edits

import (
	"testing"

	"github.com/cssxtract/compiler/internal/model"
)

func TestApplyNoEdits(t *testing.T) {
	src := "const a = 1;"
	if got := Apply(src, nil); got != src {
		t.Errorf("Apply with no edits = %q, want unchanged %q", got, src)
	}
}

func TestApplySingleEdit(t *testing.T) {
	src := `const a = css({ color: "red" });`
	site := `css({ color: "red" })`
	start := indexOf(src, site)
	edit := model.Edit{Start: start, End: start + len(site), Replacement: `"cls_abcd1234"`}

	got := Apply(src, []model.Edit{edit})
	want := `const a = "cls_abcd1234";`
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApplyMultipleEditsOutOfOrder(t *testing.T) {
	src := "AAAbbbCCCdddEEE"
	edits := []model.Edit{
		{Start: 9, End: 12, Replacement: "ddd2"},
		{Start: 0, End: 3, Replacement: "AAA2"},
		{Start: 6, End: 9, Replacement: "CCC2"},
	}
	got := Apply(src, edits)
	want := "AAA2bbbCCC2ddd2EEE"
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApplyReplacementLocality(t *testing.T) {
	src := "prefix_MARKER_suffix"
	edit := model.Edit{Start: 7, End: 13, Replacement: "X"}
	got := Apply(src, []model.Edit{edit})

	wantLen := len(src) + len(edit.Replacement) - (edit.End - edit.Start)
	if len(got) != wantLen {
		t.Fatalf("len(got) = %d, want %d", len(got), wantLen)
	}
	if got[:7] != src[:7] {
		t.Errorf("prefix changed: got %q want %q", got[:7], src[:7])
	}
	if got[8:] != src[13:] {
		t.Errorf("suffix changed: got %q want %q", got[8:], src[13:])
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
