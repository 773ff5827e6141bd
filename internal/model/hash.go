package model

import (
	"fmt"
	"hash/fnv"
)

// Hash8 is spec.md §4.1's hash8: 32-bit FNV-1a over the UTF-8 bytes of s,
// formatted as 8 lowercase hex digits. The teacher compiler hashes its own
// documents with a vendored xxhash (internal/hash.go, internal/xxhash); the
// spec instead pins the exact FNV-1a constants (offset basis 0x811c9dc5,
// prime 0x01000193), which is precisely what Go's standard hash/fnv
// implements — no pack dependency does anything more specific than the
// standard library already does here, so this one component is stdlib by
// necessity rather than by default (see DESIGN.md).
func Hash8(s string) string {
	h := fnv.New32a()
	// hash.Hash.Write never returns an error.
	_, _ = h.Write([]byte(s))
	return fmt.Sprintf("%08x", h.Sum32())
}

// SiteHash hashes "<filename>:<offset>" for class, keyframe and globalCss
// sites alike — spec.md §3's invariant that the generated identifier is a deterministic function of
// (filename, site.start).
func SiteHash(filename string, offset int) string {
	return Hash8(fmt.Sprintf("%s:%d", filename, offset))
}
