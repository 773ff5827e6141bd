package model

import "testing"

func TestStaticValueRenderUnitRule(t *testing.T) {
	cases := []struct {
		value StaticValue
		prop  string
		want  string
	}{
		{Number(12), "font-size", "12px"},
		{Number(0.5), "opacity", "0.5"},
		{Number(0), "font-size", "0"},
		{Number(2), "z-index", "2"},
		{Number(1.5), "line-height", "1.5"},
		{String("red"), "color", "red"},
	}
	for _, c := range cases {
		if got := c.value.Render(c.prop); got != c.want {
			t.Errorf("Render(%+v, %q) = %q, want %q", c.value, c.prop, got, c.want)
		}
	}
}

func TestStaticValueAsText(t *testing.T) {
	if got := Number(2).AsText(); got != "2" {
		t.Errorf("AsText() = %q, want %q", got, "2")
	}
	if got := String("blue").AsText(); got != "blue" {
		t.Errorf("AsText() = %q, want %q", got, "blue")
	}
}
