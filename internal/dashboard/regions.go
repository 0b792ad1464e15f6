// Package dashboard orchestrates the review dashboard: it owns the render
// regions, drives report loads through the pipeline client, handles document
// uploads, and assembles the full page served to the operator.
package dashboard

import "github.com/example/redactview/internal/render"

// Regions bundles the dashboard's render targets. They are owned handles
// passed explicitly to render operations rather than ambient globals, so
// tests can inject isolated targets and overlapping flows (initial load,
// refresh, post-upload reload) are visible as writers to one shared sink.
type Regions struct {
	// Gallery holds the redacted-page cards.
	Gallery *render.Region

	// Detections holds the detections table body.
	Detections *render.Region

	// Summary holds the per-type count pills.
	Summary *render.Region

	// Status is the single-line upload feedback target.
	Status *render.StatusLine
}

// NewRegions returns a fresh, empty set of render targets.
func NewRegions() *Regions {
	return &Regions{
		Gallery:    render.NewRegion(),
		Detections: render.NewRegion(),
		Summary:    render.NewRegion(),
		Status:     render.NewStatusLine(),
	}
}
