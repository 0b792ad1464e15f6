package dashboard

import (
	"context"
	"io"
)

// Client joins the two pipeline operations the dashboard consumes.
type Client interface {
	ReportFetcher
	DocumentUploader
}

// Dashboard wires the regions, loader, and uploader into one unit the server
// hands requests to.
type Dashboard struct {
	Regions  *Regions
	Loader   *Loader
	Uploader *Uploader
}

// New builds a dashboard around a pipeline client.
func New(client Client) *Dashboard {
	regions := NewRegions()
	loader := NewLoader(client, regions)
	return &Dashboard{
		Regions:  regions,
		Loader:   loader,
		Uploader: NewUploader(client, loader, regions),
	}
}

// Refresh re-runs the report loader. Used for the initial page load and the
// manual refresh control; both repaint the regions from a fresh fetch.
func (d *Dashboard) Refresh(ctx context.Context) State {
	return d.Loader.Load(ctx)
}

// SubmitUpload forwards an operator upload through the controller.
func (d *Dashboard) SubmitUpload(ctx context.Context, filename string, content io.Reader) {
	d.Uploader.Submit(ctx, filename, content)
}
