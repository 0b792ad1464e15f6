// Package models provides data structures for the redaction review dashboard.
// This file contains the raw report schema as served by the pipeline backend.
package models

// ReportEntry describes one processed page of an uploaded document, as
// returned by the pipeline's report endpoint. Entries are transient: they are
// decoded fresh on every report load and discarded when the view is rebuilt.
type ReportEntry struct {
	// File is the source document path as stored by the pipeline.
	File string `json:"file" validate:"required"`

	// FileHash is the SHA-256 of the source document. Informational only.
	FileHash string `json:"file_hash,omitempty"`

	// Page is the 1-based page number within the source document.
	Page int `json:"page" validate:"gte=1"`

	// Language is the language code detected for the page text.
	Language string `json:"language"`

	// ImagePath is the explicit location of the redacted page image. When
	// empty the image location is derived from File and Page instead; the
	// backend only sets this when processing produced a non-standard name.
	ImagePath string `json:"image_path,omitempty"`

	// Detections lists the sensitive items identified on this page, in the
	// order the pipeline found them. A page with nothing to redact has an
	// empty list but still appears in the report.
	Detections []Detection `json:"detections" validate:"dive"`
}

// Detection is one instance of sensitive information identified on a page.
type Detection struct {
	// Type is the category label, e.g. "SSN" or "EMAIL".
	Type string `json:"type" validate:"required"`

	// TextSample is a redacted or representative snippet of the matched text.
	// It is sensitive by definition and must never be logged verbatim.
	TextSample string `json:"text_sample"`

	// Confidence is the OCR line confidence for the match, in [0,1].
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`

	// BBox is the pixel bounding box that was blacked out, as [x1,y1,x2,y2].
	// Carried through for completeness; the dashboard does not render it.
	BBox []float64 `json:"bbox_xyxy,omitempty"`
}
