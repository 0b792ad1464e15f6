// Package render paints view models into the dashboard's render regions as
// HTML fragments. Render operations are stateless and idempotent: each one
// clears its target region and repaints it whole, so repeated calls with the
// same input produce the same visible output and interleaved writers can only
// replace a complete fragment, never tear one.
package render

import "sync"

// Region is an owned handle for one render target. The dashboard passes its
// regions explicitly to render operations instead of looking them up through
// package state, so tests can inject isolated targets.
type Region struct {
	mu   sync.Mutex
	html string
}

// NewRegion returns an empty region.
func NewRegion() *Region {
	return &Region{}
}

// Set replaces the region's entire content.
func (r *Region) Set(html string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.html = html
}

// Clear empties the region.
func (r *Region) Clear() {
	r.Set("")
}

// HTML returns the region's current content.
func (r *Region) HTML() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.html
}

// StatusLine is the single-line text target for upload feedback. Unlike the
// regions it holds plain text; the page assembler escapes it.
type StatusLine struct {
	mu   sync.Mutex
	text string
}

// NewStatusLine returns an empty status line.
func NewStatusLine() *StatusLine {
	return &StatusLine{}
}

// Set replaces the status text.
func (s *StatusLine) Set(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

// Text returns the current status text.
func (s *StatusLine) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}
