// Package edits applies the driver's byte-range replacements to the
// original source buffer. See spec.md §4.11.
package edits

import (
	"sort"
	"strings"

	"github.com/cssxtract/compiler/internal/model"
)

// Apply sorts edits by ascending start offset and splices each replacement
// in a single left-to-right pass, copying the untouched gaps between sites
// verbatim. This is the forward-pass equivalent of the spec's
// descending-start splice (applying the highest offset first keeps earlier
// offsets valid in a mutate-in-place buffer; walking ascending against an
// immutable buffer and a fresh builder gets the same result without ever
// needing to re-index). Edit spans are assumed non-overlapping, per the
// driver's contract.
func Apply(source string, in []model.Edit) string {
	if len(in) == 0 {
		return source
	}
	sorted := make([]model.Edit, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var b strings.Builder
	b.Grow(len(source))
	cursor := 0
	for _, e := range sorted {
		b.WriteString(source[cursor:e.Start])
		b.WriteString(e.Replacement)
		cursor = e.End
	}
	b.WriteString(source[cursor:])
	return b.String()
}
