package model

// Unitless is the glossary's set of CSS properties whose numeric values
// never receive a "px" suffix, keyed by kebab-case property name.
var Unitless = map[string]bool{
	"opacity":           true,
	"z-index":           true,
	"line-height":       true,
	"flex":              true,
	"flex-grow":         true,
	"flex-shrink":       true,
	"order":             true,
	"font-weight":       true,
	"tab-size":          true,
	"orphans":           true,
	"widows":            true,
	"counter-increment": true,
	"counter-reset":     true,
}
