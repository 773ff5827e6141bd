package model

import "testing"

func TestCamelToKebab(t *testing.T) {
	cases := map[string]string{
		"fontSize":       "font-size",
		"color":          "color",
		"backgroundColor": "background-color",
		"WebkitFilter":   "-webkit-filter",
		"zIndex":         "z-index",
	}
	for in, want := range cases {
		if got := CamelToKebab(in); got != want {
			t.Errorf("CamelToKebab(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelToKebabIdempotent(t *testing.T) {
	cases := []string{"font-size", "color", "-webkit-filter", "background-color"}
	for _, in := range cases {
		once := CamelToKebab(in)
		twice := CamelToKebab(once)
		if once != twice {
			t.Errorf("CamelToKebab not idempotent on %q: once=%q twice=%q", in, once, twice)
		}
	}
}
