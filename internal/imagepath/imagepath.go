// Package imagepath derives the location of a redacted page image from its
// source document path and page number.
//
// The pipeline names its output files "<stem>_<page>.png" with the page
// zero-padded to three digits, under a fixed image root. Derivation exists so
// the backend does not need to echo an image location for every entry; it is
// only a fallback, and an explicit image_path from the backend always wins.
package imagepath

import (
	"fmt"
	"strings"

	"github.com/example/redactview/internal/constants"
)

// Derive maps a source document path and a 1-based page number to the
// predictable redacted-image location.
//
// The stem is the final path segment with exactly its last extension removed:
// dots earlier in the segment are preserved, a segment without a dot is used
// whole, and a path without a separator is treated as a single segment. Pages
// outside [0,999] widen past three digits rather than truncating.
func Derive(filePath string, page int) string {
	segment := filePath
	if idx := strings.LastIndexByte(filePath, '/'); idx >= 0 {
		segment = filePath[idx+1:]
	}

	stem := segment
	if idx := strings.LastIndexByte(segment, '.'); idx >= 0 {
		stem = segment[:idx]
	}

	return fmt.Sprintf("%s/%s_%03d.png", constants.ImageRoot, stem, page)
}

// Label builds the human-readable gallery caption for a page:
// "<filename> · Page <n>". The filename is the final segment of the source
// path with its extension intact, independent of where the image came from.
func Label(filePath string, page int) string {
	segment := filePath
	if idx := strings.LastIndexByte(filePath, '/'); idx >= 0 {
		segment = filePath[idx+1:]
	}
	return fmt.Sprintf("%s · Page %d", segment, page)
}
