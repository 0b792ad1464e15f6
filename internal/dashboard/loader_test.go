package dashboard_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/redactview/internal/dashboard"
	"github.com/example/redactview/internal/models"
	"github.com/example/redactview/internal/utils"
)

// stubFetcher runs a per-call function so tests can control each fetch
// independently, including blocking one mid-flight.
type stubFetcher struct {
	mu    sync.Mutex
	calls int
	fn    func(call int) ([]models.ReportEntry, error)
}

func (s *stubFetcher) FetchReport(ctx context.Context) ([]models.ReportEntry, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	return s.fn(call)
}

func reportFixture(file string) []models.ReportEntry {
	return []models.ReportEntry{
		{
			File:     file,
			Page:     1,
			Language: "en",
			Detections: []models.Detection{
				{Type: "EMAIL", TextSample: "jo***", Confidence: 0.91},
			},
		},
	}
}

func TestLoad_SuccessRendersAllRegions(t *testing.T) {
	regions := dashboard.NewRegions()
	fetcher := &stubFetcher{fn: func(int) ([]models.ReportEntry, error) {
		return reportFixture("a/inv.pdf"), nil
	}}
	loader := dashboard.NewLoader(fetcher, regions)

	state := loader.Load(context.Background())

	assert.Equal(t, dashboard.StateLoaded, state)
	assert.Contains(t, regions.Gallery.HTML(), "inv.pdf · Page 1")
	assert.Contains(t, regions.Gallery.HTML(), "/out/redacted_images/inv_001.png")
	assert.Contains(t, regions.Detections.HTML(), "<td>EMAIL</td>")
	assert.Contains(t, regions.Detections.HTML(), "<td>0.91</td>")
	assert.Contains(t, regions.Summary.HTML(), "EMAIL: 1")
}

func TestLoad_EmptyReportRendersEmptyStates(t *testing.T) {
	regions := dashboard.NewRegions()
	fetcher := &stubFetcher{fn: func(int) ([]models.ReportEntry, error) {
		return []models.ReportEntry{}, nil
	}}
	loader := dashboard.NewLoader(fetcher, regions)

	state := loader.Load(context.Background())

	assert.Equal(t, dashboard.StateLoaded, state)
	assert.Contains(t, regions.Gallery.HTML(), "No redacted pages found.")
	assert.Contains(t, regions.Detections.HTML(), "No detections in report.")
	assert.Empty(t, regions.Summary.HTML())
}

func TestLoad_PaintsPlaceholdersBeforeFetch(t *testing.T) {
	regions := dashboard.NewRegions()
	regions.Summary.Set("<span class=\"pill\">EMAIL: 9</span>\n")

	var galleryDuringFetch, detectionsDuringFetch, summaryDuringFetch string
	fetcher := &stubFetcher{fn: func(int) ([]models.ReportEntry, error) {
		galleryDuringFetch = regions.Gallery.HTML()
		detectionsDuringFetch = regions.Detections.HTML()
		summaryDuringFetch = regions.Summary.HTML()
		return reportFixture("a/inv.pdf"), nil
	}}
	loader := dashboard.NewLoader(fetcher, regions)

	loader.Load(context.Background())

	assert.Contains(t, galleryDuringFetch, "Loading report…")
	assert.Contains(t, detectionsDuringFetch, "Loading…")
	assert.Empty(t, summaryDuringFetch, "summary must be cleared while a load is in flight")
}

func TestLoad_FailureRendersErrorPlaceholders(t *testing.T) {
	regions := dashboard.NewRegions()
	fetcher := &stubFetcher{fn: func(int) ([]models.ReportEntry, error) {
		return nil, utils.NewNetworkError(500, "backend down")
	}}
	loader := dashboard.NewLoader(fetcher, regions)

	state := loader.Load(context.Background())

	assert.Equal(t, dashboard.StateError, state)
	assert.Contains(t, regions.Gallery.HTML(), "Unable to load report. Upload invoices to start.")
	assert.Contains(t, regions.Detections.HTML(), "Report not available.")
	assert.Contains(t, regions.Detections.HTML(), "colspan=\"6\"")
	assert.Empty(t, regions.Summary.HTML())
}

func TestLoad_ParseFailureRendersSameErrorState(t *testing.T) {
	regions := dashboard.NewRegions()
	fetcher := &stubFetcher{fn: func(int) ([]models.ReportEntry, error) {
		return nil, utils.NewParseError(assert.AnError)
	}}
	loader := dashboard.NewLoader(fetcher, regions)

	state := loader.Load(context.Background())

	assert.Equal(t, dashboard.StateError, state)
	assert.Contains(t, regions.Gallery.HTML(), "Unable to load report. Upload invoices to start.")
}

func TestLoad_SupersededAttemptDoesNotRepaint(t *testing.T) {
	regions := dashboard.NewRegions()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	fetcher := &stubFetcher{fn: func(call int) ([]models.ReportEntry, error) {
		if call == 1 {
			close(firstStarted)
			<-releaseFirst
			return reportFixture("stale/old.pdf"), nil
		}
		return reportFixture("fresh/new.pdf"), nil
	}}
	loader := dashboard.NewLoader(fetcher, regions)

	firstDone := make(chan dashboard.State, 1)
	go func() {
		firstDone <- loader.Load(context.Background())
	}()
	<-firstStarted

	// A second attempt starts while the first is suspended in its fetch.
	state := loader.Load(context.Background())
	require.Equal(t, dashboard.StateLoaded, state)
	require.Contains(t, regions.Gallery.HTML(), "new.pdf · Page 1")

	// The first attempt now resolves, but it is stale and must not commit.
	close(releaseFirst)
	firstState := <-firstDone

	assert.Equal(t, dashboard.StateLoaded, firstState, "the stale attempt still reports how its fetch went")
	assert.Contains(t, regions.Gallery.HTML(), "new.pdf · Page 1")
	assert.NotContains(t, regions.Gallery.HTML(), "old.pdf")
	assert.NotContains(t, regions.Detections.HTML(), "stale/old.pdf")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "loading", dashboard.StateLoading.String())
	assert.Equal(t, "loaded", dashboard.StateLoaded.String())
	assert.Equal(t, "error", dashboard.StateError.String())
	assert.Equal(t, "unknown", dashboard.State(99).String())
}
