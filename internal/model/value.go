// Package model holds the extraction's data model: the StaticValue the
// evaluator produces, the Artifact/Edit types the driver emits, and the
// KeyframeBindings map threaded through a single transform call. None of
// these types outlive one Transform invocation (spec.md §3 "Lifecycle").
package model

import "github.com/cssxtract/compiler/internal/helpers"

// ValueKind tags which case of StaticValue is populated.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
)

// StaticValue is the evaluator's result type: either a verbatim CSS value
// fragment (String) or an f64 (Number). See spec.md §3, §4.4.
type StaticValue struct {
	Kind ValueKind
	Str  string
	Num  float64
}

func String(s string) StaticValue { return StaticValue{Kind: KindString, Str: s} }
func Number(n float64) StaticValue { return StaticValue{Kind: KindNumber, Num: n} }

// AsText renders the value the way a template-literal interpolation or
// binary-expression concatenation would: strings verbatim, numbers in
// minimal decimal form, with no unit suffix.
func (v StaticValue) AsText() string {
	switch v.Kind {
	case KindString:
		return v.Str
	default:
		return helpers.FormatMinimalDecimal(v.Num)
	}
}

// Render implements StaticValue.render(propertyName) from spec.md §4.4:
// strings render verbatim; numbers render as integers when the fractional
// part is zero (otherwise the float's default decimal form) and receive a
// "px" suffix unless prop is unitless or the value is exactly zero.
func (v StaticValue) Render(kebabProp string) string {
	if v.Kind == KindString {
		return v.Str
	}
	n := v.Num
	if n == 0 {
		return "0"
	}
	rendered := helpers.FormatMinimalDecimal(n)
	if Unitless[kebabProp] {
		return rendered
	}
	return rendered + "px"
}
