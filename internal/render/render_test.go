package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/redactview/internal/models"
	"github.com/example/redactview/internal/render"
)

func TestGallery_EmptyShowsPlaceholder(t *testing.T) {
	r := render.NewRegion()

	render.Gallery(r, nil)

	assert.Equal(t, "<p class=\"placeholder\">No redacted pages found.</p>\n", r.HTML())
}

func TestGallery_PaintsOneFigurePerCard(t *testing.T) {
	r := render.NewRegion()
	cards := []models.GalleryCard{
		{ImagePath: "/out/redacted_images/inv_001.png", Label: "inv.pdf · Page 1"},
		{ImagePath: "/out/redacted_images/inv_002.png", Label: "inv.pdf · Page 2"},
	}

	render.Gallery(r, cards)

	html := r.HTML()
	assert.Contains(t, html, "<img src=\"/out/redacted_images/inv_001.png\"")
	assert.Contains(t, html, "loading=\"lazy\"")
	assert.Contains(t, html, "<figcaption>inv.pdf · Page 1</figcaption>")
	assert.Contains(t, html, "<figcaption>inv.pdf · Page 2</figcaption>")
	assert.Equal(t, 2, strings.Count(html, "<figure class=\"card\">"))
}

func TestGallery_EscapesLabel(t *testing.T) {
	r := render.NewRegion()
	cards := []models.GalleryCard{
		{ImagePath: "/out/redacted_images/x_001.png", Label: "<script>alert(1)</script> · Page 1"},
	}

	render.Gallery(r, cards)

	assert.NotContains(t, r.HTML(), "<script>")
	assert.Contains(t, r.HTML(), "&lt;script&gt;")
}

func TestGallery_Idempotent(t *testing.T) {
	r := render.NewRegion()
	cards := []models.GalleryCard{
		{ImagePath: "/out/redacted_images/inv_001.png", Label: "inv.pdf · Page 1"},
	}

	render.Gallery(r, cards)
	first := r.HTML()
	render.Gallery(r, cards)

	assert.Equal(t, first, r.HTML(), "repainting the same cards must not duplicate content")
}

func TestDetections_EmptyShowsPlaceholderRow(t *testing.T) {
	r := render.NewRegion()

	render.Detections(r, nil)

	assert.Equal(t,
		"<tr><td colspan=\"6\" class=\"placeholder\">No detections in report.</td></tr>\n",
		r.HTML())
}

func TestDetections_FormatsConfidenceToTwoDecimals(t *testing.T) {
	r := render.NewRegion()
	rows := []models.DetectionRow{
		{File: "a/inv.pdf", Page: 1, Language: "en", Type: "EMAIL", TextSample: "jo***", Confidence: 0.9},
		{File: "a/inv.pdf", Page: 1, Language: "en", Type: "IBAN", TextSample: "DE***", Confidence: 0.777},
	}

	render.Detections(r, rows)

	html := r.HTML()
	assert.Contains(t, html, "<td>0.90</td>")
	assert.Contains(t, html, "<td>0.78</td>")
	assert.Equal(t, 2, strings.Count(html, "<tr>"))
}

func TestDetections_EscapesCellContent(t *testing.T) {
	r := render.NewRegion()
	rows := []models.DetectionRow{
		{File: "a/<b>.pdf", Page: 1, Language: "en", Type: "EMAIL", TextSample: "<img onerror=x>", Confidence: 0.5},
	}

	render.Detections(r, rows)

	assert.NotContains(t, r.HTML(), "<img onerror")
	assert.Contains(t, r.HTML(), "&lt;img onerror=x&gt;")
	assert.Contains(t, r.HTML(), "a/&lt;b&gt;.pdf")
}

func TestSummary_EmptyClearsRegion(t *testing.T) {
	r := render.NewRegion()
	r.Set("<span class=\"pill\">EMAIL: 3</span>\n")

	render.Summary(r, models.NewTypeCounts())

	assert.Empty(t, r.HTML(), "summary has no placeholder text")

	render.Summary(r, nil)
	assert.Empty(t, r.HTML())
}

func TestSummary_PillsInFirstSeenOrder(t *testing.T) {
	r := render.NewRegion()
	counts := models.NewTypeCounts()
	counts.Add("EMAIL")
	counts.Add("IBAN")
	counts.Add("EMAIL")
	counts.Add("PHONE")

	render.Summary(r, counts)

	assert.Equal(t,
		"<span class=\"pill\">EMAIL: 2</span>\n"+
			"<span class=\"pill\">IBAN: 1</span>\n"+
			"<span class=\"pill\">PHONE: 1</span>\n",
		r.HTML())
}

func TestRegion_SetReplacesWholeContent(t *testing.T) {
	r := render.NewRegion()
	r.Set("first")
	r.Set("second")

	assert.Equal(t, "second", r.HTML())

	r.Clear()
	assert.Empty(t, r.HTML())
}
