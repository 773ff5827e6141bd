package loc

import "strconv"

// DiagnosticSeverity mirrors the error taxonomy in spec.md §7: InvalidArg and
// GenericFailure are raised as errors. SoftFail never produces a diagnostic
// at all — it's expressed by the Result shape, not by this type.
type DiagnosticSeverity int

const (
	InvalidArg DiagnosticSeverity = iota + 1
	GenericFailure
)

func (s DiagnosticSeverity) String() string {
	switch s {
	case InvalidArg:
		return "InvalidArg"
	case GenericFailure:
		return "GenericFailure"
	default:
		return "Unknown"
	}
}

// DiagnosticLocation is the file:line:col triple prefixed to every
// user-facing error.
type DiagnosticLocation struct {
	File   string
	Line   int
	Column int
}

func (l DiagnosticLocation) String() string {
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}
