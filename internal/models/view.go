// Package models provides data structures for the redaction review dashboard.
// This file contains the derived view models painted into the render regions.
// None of them are persisted; each report load replaces all of them.
package models

// GalleryCard is one card in the redacted-page gallery. Every report entry
// produces exactly one card, whether or not it carries detections.
type GalleryCard struct {
	// ImagePath locates the redacted page image, either echoed by the backend
	// or derived from the entry's file and page.
	ImagePath string

	// Label is the human-readable caption: "<filename> · Page <n>".
	Label string
}

// DetectionRow is one row of the detections table: a single detection joined
// with its parent entry's page context.
type DetectionRow struct {
	File       string
	Page       int
	Language   string
	Type       string
	TextSample string
	Confidence float64
}

// TypeCounts accumulates detection occurrences per type while preserving
// first-seen order across the flattened detection stream. It is rebuilt from
// scratch on every report load and never merged across loads.
type TypeCounts struct {
	order  []string
	counts map[string]int
}

// NewTypeCounts returns an empty, ready-to-use counter.
func NewTypeCounts() *TypeCounts {
	return &TypeCounts{counts: make(map[string]int)}
}

// Add increments the count for a detection type, registering the type's
// position on first sight.
func (tc *TypeCounts) Add(detectionType string) {
	if _, seen := tc.counts[detectionType]; !seen {
		tc.order = append(tc.order, detectionType)
	}
	tc.counts[detectionType]++
}

// Len returns the number of distinct detection types counted.
func (tc *TypeCounts) Len() int {
	return len(tc.order)
}

// Total returns the number of detections counted across all types.
func (tc *TypeCounts) Total() int {
	total := 0
	for _, n := range tc.counts {
		total += n
	}
	return total
}

// Count returns the occurrence count for a type, zero if unseen.
func (tc *TypeCounts) Count(detectionType string) int {
	return tc.counts[detectionType]
}

// Each visits every counted type in first-seen order.
func (tc *TypeCounts) Each(fn func(detectionType string, count int)) {
	for _, t := range tc.order {
		fn(t, tc.counts[t])
	}
}
