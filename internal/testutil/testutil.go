// Package testutil holds small test-only helpers shared across this
// module's test files, adapted from the teacher's
// internal/test_utils/test_utils.go (ANSIDiff, Dedent, MakeSnapshot) for
// comparing CSS and JS snippets without fighting indentation noise in
// table-driven test literals, and for snapshotting whole extraction
// results the way the teacher snapshots printer output.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
	"github.com/pkg/diff"
)

// Dedent strips the common leading whitespace from a multi-line string
// literal and trims surrounding blank lines, so table-driven test cases
// can be written indented to match the surrounding Go code.
func Dedent(input string) string {
	return strings.Trim(dedent.Dedent(input), "\r\n")
}

// ANSIDiff renders cmp.Diff(x, y) with red/green ANSI coloring for
// terminal-friendly test failure output.
func ANSIDiff(x, y interface{}, opts ...cmp.Option) string {
	escape := func(code int) string { return fmt.Sprintf("\x1b[%dm", code) }
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "-"):
			lines[i] = escape(31) + s + escape(0)
		case strings.HasPrefix(s, "+"):
			lines[i] = escape(32) + s + escape(0)
		}
	}
	return strings.Join(lines, "\n")
}

// SnapshotScenario snapshots an end-to-end extraction scenario, pairing the
// source input with its rendered output (e.g. the rewritten code, or a
// joined dump of the artifact lists) the way the teacher's MakeSnapshot
// pairs printer input/output in internal/test_utils/test_utils.go.
func SnapshotScenario(t *testing.T, name, input, output string) {
	t.Helper()
	s := snaps.WithConfig(snaps.Filename(redactName(name)), snaps.Dir("__snapshots__"))
	snapshot := "## Input\n\n```\n" + Dedent(input) + "\n```\n\n## Output\n\n```\n" + Dedent(output) + "\n```"
	s.MatchSnapshot(t, snapshot)
}

// UnifiedDiff renders a line-oriented unified diff between two CSS or JS
// snippets, for assertion failures where ANSIDiff's struct-oriented cmp.Diff
// is the wrong shape (comparing two whole source texts rather than two Go
// values).
func UnifiedDiff(aName, bName, a, b string) string {
	var buf strings.Builder
	if err := diff.Text(aName, bName, a, b, &buf); err != nil {
		return fmt.Sprintf("<diff error: %v>", err)
	}
	return buf.String()
}

func redactName(name string) string {
	replacer := strings.NewReplacer(
		"#", "_", "<", "_", ">", "_", ")", "_", "(", "_",
		":", "_", " ", "_", "'", "_", "\"", "_", "@", "_",
		"`", "_", "+", "_",
	)
	return replacer.Replace(name)
}
