package helpers

import "testing"

func TestFormatMinimalDecimal(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{-3, "-3"},
		{0.5, "0.5"},
		{1.5, "1.5"},
		{100, "100"},
		{0.1, "0.1"},
	}
	for _, c := range cases {
		if got := FormatMinimalDecimal(c.in); got != c.want {
			t.Errorf("FormatMinimalDecimal(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
