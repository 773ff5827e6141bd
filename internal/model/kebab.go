package model

import "unicode"

// CamelToKebab implements spec.md §4.1 exactly: every uppercase letter is
// preceded by "-" and lowercased; non-ASCII uppercase letters are lowered
// uniformly to their single lowercase rune. It is idempotent on already-kebab
// input because kebab-case contains no uppercase letters.
//
// A library case-converter (github.com/iancoleman/strcase.ToKebab) groups
// runs of uppercase letters as acronyms and never puts a separator before a
// leading capital — not a byte-for-byte match for the per-character rule
// spec.md pins down, so this stays a small hand-rolled loop; see DESIGN.md.
func CamelToKebab(s string) string {
	var b []byte
	for _, r := range s {
		if unicode.IsUpper(r) {
			b = append(b, '-')
			b = append(b, []byte(string(unicode.ToLower(r)))...)
		} else {
			b = append(b, []byte(string(r))...)
		}
	}
	return string(b)
}
