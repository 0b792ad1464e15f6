// Package constants provides shared constant values used throughout the application.
//
// The routes.go file defines URL paths for the dashboard's own routes and for
// the two pipeline backend endpoints it consumes. Keeping both sides here makes
// the HTTP surface of the application visible in one place.
package constants

// Dashboard routes served to the operator's browser.
const (
	// DashboardPath serves the assembled review page.
	DashboardPath = "/"

	// UploadPath receives the browser's multipart form post.
	UploadPath = "/upload"

	// RefreshPath re-runs the report loader independently of uploads.
	RefreshPath = "/refresh"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"

	// VersionPath reports the application version and environment.
	VersionPath = "/version"
)

// Pipeline backend endpoints consumed by the dashboard.
const (
	// ReportEndpoint returns the full report as a JSON array of entries.
	ReportEndpoint = "/api/report"

	// UploadEndpoint accepts a multipart document upload for processing.
	UploadEndpoint = "/api/upload"
)

// ImageRoot is the base path under which the pipeline serves redacted page
// images. It mirrors the pipeline's output directory naming convention and is
// fixed at build time, not server-configurable.
const ImageRoot = "/out/redacted_images"
