package dashboard

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/example/redactview/internal/constants"
	"github.com/example/redactview/internal/models"
	"github.com/example/redactview/internal/render"
	"github.com/example/redactview/internal/utils"
	"github.com/example/redactview/internal/view"
)

// State is the report loader's position in its lifecycle. Each load attempt
// moves Loading → Loaded or Loading → Error; failure is terminal for that
// attempt, with no retry and no partial rendering.
type State int

const (
	// StateLoading means a fetch is in flight and placeholders are painted.
	StateLoading State = iota

	// StateLoaded means the attempt fetched, transformed, and rendered a report.
	StateLoaded

	// StateError means the attempt failed and the error placeholders are shown.
	StateError
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ReportFetcher is the slice of the pipeline client the loader needs.
type ReportFetcher interface {
	FetchReport(ctx context.Context) ([]models.ReportEntry, error)
}

// Loader drives one report retrieval at a time into the render regions.
//
// Overlapping loads are legal: nothing stops a second refresh before the
// first resolves. The generation counter turns the resulting race into a
// defined policy — only the most recent outstanding attempt commits its
// result, so the regions always show one complete rendering, never a stale
// one that happened to resolve last.
type Loader struct {
	fetcher ReportFetcher
	regions *Regions
	gen     atomic.Uint64
}

// NewLoader creates a loader writing into the given regions.
func NewLoader(fetcher ReportFetcher, regions *Regions) *Loader {
	return &Loader{fetcher: fetcher, regions: regions}
}

// Load performs one retrieval attempt and returns the state it ended in.
//
// On entry it paints loading placeholders into the gallery and detections
// regions and unconditionally clears the summary. On any failure — transport
// error, non-success status, or a body that fails parsing or validation — it
// paints the fixed error placeholders. On success it rebuilds all three view
// models and repaints all three regions. The three renders are independent
// and order does not matter.
func (l *Loader) Load(ctx context.Context) State {
	gen := l.gen.Add(1)
	attempt := uuid.NewString()
	log.Info().Str("attempt", attempt).Uint64("generation", gen).Msg("Loading report")

	render.GalleryMessage(l.regions.Gallery, constants.MsgGalleryLoading)
	render.DetectionsMessage(l.regions.Detections, constants.MsgDetectionsLoading)
	l.regions.Summary.Clear()

	entries, err := l.fetcher.FetchReport(ctx)

	// The fetch was the suspension point; if another attempt started since,
	// this one is stale and must not repaint the shared regions.
	if gen != l.gen.Load() {
		log.Info().Str("attempt", attempt).Uint64("generation", gen).Msg("Load superseded, result discarded")
		if err != nil {
			return StateError
		}
		return StateLoaded
	}

	if err != nil {
		log.Warn().Err(err).Str("attempt", attempt).Msg("Report load failed")
		render.GalleryMessage(l.regions.Gallery, constants.MsgGalleryLoadFailed)
		render.DetectionsMessage(l.regions.Detections, constants.MsgDetectionsUnavailable)
		return StateError
	}

	v := view.Transform(entries)
	render.Gallery(l.regions.Gallery, v.Cards)
	render.Detections(l.regions.Detections, v.Rows)
	render.Summary(l.regions.Summary, v.Counts)

	for _, row := range v.Rows {
		// Samples are sensitive by definition; only a masked form reaches logs.
		log.Debug().
			Str("file", row.File).
			Int("page", row.Page).
			Str("type", row.Type).
			Str("sample", utils.SanitizeSample(row.TextSample)).
			Msg("Detection")
	}

	log.Info().
		Str("attempt", attempt).
		Int("pages", len(v.Cards)).
		Int("detections", len(v.Rows)).
		Int("types", v.Counts.Len()).
		Msg("Report rendered")

	return StateLoaded
}
