// Package handler formats the diagnostics produced while lowering a single
// construction site. Unlike the teacher compiler's Handler — which
// accumulates errors, warnings, infos and hints across a whole document —
// this transform's error contract is fail-fast: the first InvalidArg or
// GenericFailure aborts the call and any artifacts gathered so far are
// discarded by the caller (internal/transform). Handler's job is reduced to
// building well-formed, located errors.
package handler

import (
	"fmt"

	"github.com/cssxtract/compiler/internal/loc"
)

type Handler struct {
	filename string
	source   string
}

func New(filename, source string) *Handler {
	return &Handler{filename: filename, source: source}
}

// StaticError is the InvalidArg case of the taxonomy: a user-facing
// static-analysis failure (missing theme key, dynamic identifier, malformed
// spread, and so on). Always ends with a "Hint:" line.
type StaticError struct {
	Location loc.DiagnosticLocation
	Message  string
	Hint     string
}

func (e *StaticError) Error() string {
	return fmt.Sprintf("%s: %s\nHint: %s", e.Location, e.Message, e.Hint)
}

// EngineError is the GenericFailure case: a CSS engine (parse/minify/print)
// failure. For CSS engine failures Label is one of "LightningCSS parse
// error" or "LightningCSS minify error" regardless of which Go library
// actually backs the pipeline — see SPEC_FULL.md §4.7 for why that label
// survives the substitution. Transform also reports an invalid theme JSON
// through this type, with Label "theme parse error".
type EngineError struct {
	Filename string
	Label    string
	Detail   string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Filename, e.Label, e.Detail)
}

// AtOffset builds a StaticError located at the given byte offset in the
// handler's source, formatting the file:line:col prefix the way every
// diagnostic in this package does.
func (h *Handler) AtOffset(offset int, message, hint string) *StaticError {
	pos := loc.OffsetToPosition(h.source, offset)
	return &StaticError{
		Location: loc.DiagnosticLocation{File: h.filename, Line: pos.Line, Column: pos.Column},
		Message:  message,
		Hint:     hint,
	}
}

func (h *Handler) Engine(label, detail string) *EngineError {
	return &EngineError{Filename: h.filename, Label: label, Detail: detail}
}
