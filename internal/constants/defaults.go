// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration
// settings and establish boundaries for resource usage.
package constants

import "time"

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port for the dashboard.
	DefaultServerPort = 8090

	// DefaultPipelineBaseURL is the default base URL of the redaction pipeline backend.
	DefaultPipelineBaseURL = "http://localhost:8000"

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"

	// DefaultAppName is the application name used in log context.
	DefaultAppName = "redactview"
)

// Server timeouts.
const (
	// DefaultReadTimeout is the default HTTP server read timeout.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the default HTTP server write timeout.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the default HTTP keep-alive idle timeout.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout is the default grace period for shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// Upload limits.
const (
	// MaxUploadSize is the maximum size in bytes accepted for a document upload.
	// The pipeline rasterizes pages at 300 DPI, so inputs are bounded here rather
	// than on the backend's disk.
	MaxUploadSize = 64 << 20 // 64 MiB

	// UploadFieldName is the multipart form field carrying the document bytes,
	// on both the browser-facing form and the backend endpoint.
	UploadFieldName = "file"
)

// SupportedUploadExts lists the document extensions the pipeline can process.
// Used only to populate the upload control's accept attribute; the backend
// remains the authority on what it rejects.
var SupportedUploadExts = []string{".pdf", ".jpg", ".jpeg", ".png", ".tiff", ".tif"}
