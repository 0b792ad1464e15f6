// Package view converts raw report entries into the three independent view
// models the renderer paints: gallery cards, flattened detection rows, and
// per-type counts. The transformation is pure; a fresh View is built on every
// report load and the previous one is discarded whole.
package view

import (
	"github.com/example/redactview/internal/imagepath"
	"github.com/example/redactview/internal/models"
)

// View bundles the three derived view models for one report load.
type View struct {
	// Cards has exactly one element per report entry, including entries with
	// zero detections.
	Cards []models.GalleryCard

	// Rows is the flattened detection stream; entries without detections
	// contribute no rows.
	Rows []models.DetectionRow

	// Counts tallies detections per type in first-seen order across the whole
	// stream. Confidence plays no part in counting.
	Counts *models.TypeCounts
}

// Transform derives all three view models from a report in one pass over the
// entries. No filtering occurs: every detection present is both counted and
// listed.
func Transform(entries []models.ReportEntry) *View {
	v := &View{
		Cards:  make([]models.GalleryCard, 0, len(entries)),
		Rows:   make([]models.DetectionRow, 0),
		Counts: models.NewTypeCounts(),
	}

	for _, entry := range entries {
		image := entry.ImagePath
		if image == "" {
			image = imagepath.Derive(entry.File, entry.Page)
		}
		v.Cards = append(v.Cards, models.GalleryCard{
			ImagePath: image,
			Label:     imagepath.Label(entry.File, entry.Page),
		})

		for _, d := range entry.Detections {
			v.Rows = append(v.Rows, models.DetectionRow{
				File:       entry.File,
				Page:       entry.Page,
				Language:   entry.Language,
				Type:       d.Type,
				TextSample: d.TextSample,
				Confidence: d.Confidence,
			})
			v.Counts.Add(d.Type)
		}
	}

	return v
}
