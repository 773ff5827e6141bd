// Package sourcemap hand-builds a V3 JSON source map for the rewritten JS
// source text. Nothing in the example pack generates a JS source map (the
// CSS engine facade gets its map for free from esbuild; see DESIGN.md for
// why this one component is stdlib-only) — this is a from-scratch
// VLQ mapping builder keyed off the same []model.Edit list the edit
// applier already threads through the driver.
package sourcemap

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cssxtract/compiler/internal/loc"
	"github.com/cssxtract/compiler/internal/model"
)

// breakpoint is one generated-offset -> original-offset correspondence the
// builder knows is exact: the boundaries of the copied stretches between
// edits, where generated and original text are byte-identical.
type breakpoint struct {
	generated int
	original  int
}

// Build returns a V3 source map JSON string mapping generated into source,
// given the edits that were spliced to produce generated from source.
func Build(filename, source, generated string, edits []model.Edit) string {
	sorted := make([]model.Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	breakpoints := []breakpoint{{generated: 0, original: 0}}
	genPos, origPos := 0, 0
	for _, e := range sorted {
		genPos += e.Start - origPos
		origPos = e.Start
		breakpoints = append(breakpoints, breakpoint{generated: genPos, original: origPos})

		genPos += len(e.Replacement)
		origPos = e.End
		breakpoints = append(breakpoints, breakpoint{generated: genPos, original: origPos})
	}

	return encode(filename, source, generated, breakpoints)
}

type segment struct {
	genLine, genCol   int
	origLine, origCol int
}

func encode(filename, source, generated string, breakpoints []breakpoint) string {
	segments := make([]segment, 0, len(breakpoints))
	for _, bp := range breakpoints {
		gp := loc.OffsetToPosition(generated, bp.generated)
		op := loc.OffsetToPosition(source, bp.original)
		segments = append(segments, segment{
			genLine: gp.Line - 1, genCol: gp.Column - 1,
			origLine: op.Line - 1, origCol: op.Column - 1,
		})
	}
	sort.SliceStable(segments, func(i, j int) bool {
		if segments[i].genLine != segments[j].genLine {
			return segments[i].genLine < segments[j].genLine
		}
		return segments[i].genCol < segments[j].genCol
	})

	var mappings strings.Builder
	curLine := 0
	prevGenCol, prevOrigLine, prevOrigCol := 0, 0, 0
	first := true

	for _, s := range segments {
		for curLine < s.genLine {
			mappings.WriteByte(';')
			curLine++
			prevGenCol = 0
			first = true
		}
		if !first {
			mappings.WriteByte(',')
		}
		first = false

		mappings.WriteString(encodeVLQ(s.genCol - prevGenCol))
		mappings.WriteString(encodeVLQ(0)) // sourceIndex delta, always source 0
		mappings.WriteString(encodeVLQ(s.origLine - prevOrigLine))
		mappings.WriteString(encodeVLQ(s.origCol - prevOrigCol))

		prevGenCol = s.genCol
		prevOrigLine = s.origLine
		prevOrigCol = s.origCol
	}

	var b strings.Builder
	b.WriteString(`{"version":3,"sources":[`)
	b.WriteString(strconv.Quote(filename))
	b.WriteString(`],"names":[],"mappings":"`)
	b.WriteString(mappings.String())
	b.WriteString(`"}`)
	return b.String()
}
