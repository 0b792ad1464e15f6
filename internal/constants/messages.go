// Package constants provides shared constant values used throughout the application.
//
// The messages.go file defines every operator-visible string painted into the
// dashboard's render regions and status line. Centralizing them keeps the UI
// wording consistent and lets tests assert against the exact text.
package constants

// Gallery region messages.
const (
	// MsgGalleryEmpty is shown when the report contains no processed pages.
	MsgGalleryEmpty = "No redacted pages found."

	// MsgGalleryLoading is the gallery placeholder while a load is in flight.
	MsgGalleryLoading = "Loading report…"

	// MsgGalleryLoadFailed replaces the gallery when the report cannot be fetched.
	MsgGalleryLoadFailed = "Unable to load report. Upload invoices to start."
)

// Detections table messages.
const (
	// MsgDetectionsEmpty fills the single placeholder row when no detections exist.
	MsgDetectionsEmpty = "No detections in report."

	// MsgDetectionsLoading fills the placeholder row while a load is in flight.
	MsgDetectionsLoading = "Loading…"

	// MsgDetectionsUnavailable fills the placeholder row after a failed load.
	MsgDetectionsUnavailable = "Report not available."
)

// Status line messages for the upload flow.
const (
	// MsgSelectFile is set when the operator submits without choosing a file.
	MsgSelectFile = "Please select a file to upload."

	// MsgUploading is set immediately before the upload request is issued.
	MsgUploading = "Uploading and processing…"

	// MsgUploadFailed is the generic upload failure text, used when the error
	// body is unreadable or lacks a message field.
	MsgUploadFailed = "Error: Upload failed"

	// FmtUploadError formats a backend-supplied error message.
	FmtUploadError = "Error: %s"

	// FmtUploadProcessed reports how many pages the backend processed.
	FmtUploadProcessed = "Processed %d page(s)."
)

// DetectionTableColumns is the number of columns in the detections table:
// file, page, language, type, text sample, confidence. Placeholder rows span
// all of them.
const DetectionTableColumns = 6
