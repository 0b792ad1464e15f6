package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/example/redactview/internal/constants"
	"github.com/example/redactview/internal/utils"
)

// DocumentUploader is the slice of the pipeline client the upload flow needs.
type DocumentUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (int, error)
}

// Uploader validates the operator's file selection, forwards the document to
// the pipeline, interprets the response into the status line, and re-runs the
// report loader after a successful upload.
type Uploader struct {
	client DocumentUploader
	loader *Loader
	status *Regions
}

// NewUploader creates an uploader that reports through the given regions'
// status line and reloads through the given loader.
func NewUploader(client DocumentUploader, loader *Loader, regions *Regions) *Uploader {
	return &Uploader{client: client, loader: loader, status: regions}
}

// Submit handles one operator-initiated upload.
//
// With no file selected it sets the guard message and issues no network call.
// Otherwise it announces the upload, posts the document, and either surfaces
// the backend's error message ("Error: <message>", generic fallback when the
// body carries none) while leaving the current report untouched, or reports
// the processed page count and triggers a reload. The reload has its own
// failure handling; a reload failure does not retract the success status of
// the upload itself.
func (u *Uploader) Submit(ctx context.Context, filename string, content io.Reader) {
	if content == nil || filename == "" {
		u.status.Status.Set(constants.MsgSelectFile)
		return
	}

	attempt := uuid.NewString()
	u.status.Status.Set(constants.MsgUploading)
	log.Info().Str("attempt", attempt).Str("filename", filename).Msg("Uploading document")

	pages, err := u.client.Upload(ctx, filename, content)
	if err != nil {
		log.Warn().Err(err).Str("attempt", attempt).Str("filename", filename).Msg("Upload failed")
		if msg := utils.UserMessage(err); msg != "" {
			u.status.Status.Set(fmt.Sprintf(constants.FmtUploadError, msg))
		} else {
			u.status.Status.Set(constants.MsgUploadFailed)
		}
		return
	}

	u.status.Status.Set(fmt.Sprintf(constants.FmtUploadProcessed, pages))
	log.Info().Str("attempt", attempt).Int("pages", pages).Msg("Document processed")

	u.loader.Load(ctx)
}
