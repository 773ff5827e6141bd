package theme

import (
	"testing"

	"github.com/cssxtract/compiler/internal/model"
)

func TestResolveNestedString(t *testing.T) {
	tree, err := Parse(`{"a":{"b":{"c":"red"}}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := Resolve(tree, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := model.String("red")
	if got != want {
		t.Errorf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestResolveNumber(t *testing.T) {
	tree, err := Parse(`{"spacing":{"md":16}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := Resolve(tree, []string{"spacing", "md"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Kind != model.KindNumber || got.Num != 16 {
		t.Errorf("Resolve() = %+v, want Number(16)", got)
	}
}

func TestResolveMissingPath(t *testing.T) {
	tree, err := Parse(`{"a":{"b":"x"}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = Resolve(tree, []string{"a", "b", "c"})
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	want := "theme.a.b.c does not exist"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestResolveNonScalarLeaf(t *testing.T) {
	tree, err := Parse(`{"a":{"b":{"c":"x"}}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = Resolve(tree, []string{"a", "b"})
	if err == nil {
		t.Fatal("expected error for non-scalar leaf")
	}
	want := "theme.a.b resolves to a non-scalar value"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}
