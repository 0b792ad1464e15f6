package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/example/redactview/internal/constants"
	"github.com/example/redactview/internal/models"
)

// Gallery paints one card per report entry into the gallery region, or the
// empty-state message when the report has no pages. Images are declared lazy
// so the browser defers fetching offscreen cards.
func Gallery(r *Region, cards []models.GalleryCard) {
	if len(cards) == 0 {
		GalleryMessage(r, constants.MsgGalleryEmpty)
		return
	}

	var b strings.Builder
	for _, card := range cards {
		b.WriteString("<figure class=\"card\">\n")
		fmt.Fprintf(&b, "  <img src=\"%s\" alt=\"%s\" loading=\"lazy\">\n",
			html.EscapeString(card.ImagePath), html.EscapeString(card.Label))
		fmt.Fprintf(&b, "  <figcaption>%s</figcaption>\n", html.EscapeString(card.Label))
		b.WriteString("</figure>\n")
	}
	r.Set(b.String())
}

// GalleryMessage replaces the gallery region with a single placeholder
// message. Used for the empty, loading, and error states.
func GalleryMessage(r *Region, message string) {
	r.Set(fmt.Sprintf("<p class=\"placeholder\">%s</p>\n", html.EscapeString(message)))
}

// Detections paints the table body for the detections region: one row per
// detection with file, page, language, type, text sample, and confidence to
// two decimal places.
//
// The empty state is checked twice: once on the input and once on the number
// of rows actually appended. The second check looks redundant given the first,
// but it guarantees the placeholder appears whenever the loop produced
// nothing, matching the gallery's always-show-something behavior even if row
// materialization and the logical input ever disagree.
func Detections(r *Region, rows []models.DetectionRow) {
	if len(rows) == 0 {
		DetectionsMessage(r, constants.MsgDetectionsEmpty)
		return
	}

	var b strings.Builder
	appended := 0
	for _, row := range rows {
		fmt.Fprintf(&b,
			"<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%.2f</td></tr>\n",
			html.EscapeString(row.File),
			row.Page,
			html.EscapeString(row.Language),
			html.EscapeString(row.Type),
			html.EscapeString(row.TextSample),
			row.Confidence,
		)
		appended++
	}

	if appended == 0 {
		DetectionsMessage(r, constants.MsgDetectionsEmpty)
		return
	}
	r.Set(b.String())
}

// DetectionsMessage replaces the detections region with a single placeholder
// row spanning every column.
func DetectionsMessage(r *Region, message string) {
	r.Set(fmt.Sprintf("<tr><td colspan=\"%d\" class=\"placeholder\">%s</td></tr>\n",
		constants.DetectionTableColumns, html.EscapeString(message)))
}

// Summary paints one pill per detection type in first-seen order. An empty
// count set clears the region and leaves it empty; the summary has no
// placeholder text.
func Summary(r *Region, counts *models.TypeCounts) {
	if counts == nil || counts.Len() == 0 {
		r.Clear()
		return
	}

	var b strings.Builder
	counts.Each(func(detectionType string, count int) {
		fmt.Fprintf(&b, "<span class=\"pill\">%s: %d</span>\n",
			html.EscapeString(detectionType), count)
	})
	r.Set(b.String())
}
