package model

// Artifact is one extraction output: a stable hash, the minified CSS, and
// an optional V3 source map. See spec.md §3.
type Artifact struct {
	Hash string  `json:"hash"`
	CSS  string  `json:"css"`
	Map  *string `json:"map,omitempty"`
}

// KeyframeArtifact additionally carries the generated animation name.
type KeyframeArtifact struct {
	Artifact
	Name string `json:"name"`
}

// Edit is a single byte-range replacement produced by the driver. Edits
// never overlap; their ranges equal exactly the spans of the recognized
// construction sites (spec.md §3).
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// KeyframeBindings is an in-order mapping from a binding identifier (the
// variable that received a keyframes`...` result) to the generated
// animation name "kf_<hash>". Declaration order in the source establishes
// visibility: only bindings registered before a given site are visible to
// it, which falls out naturally from this being mutated during a single
// left-to-right walk (spec.md §3, §4.10, §5).
type KeyframeBindings map[string]string

func NewKeyframeBindings() KeyframeBindings {
	return make(KeyframeBindings)
}
