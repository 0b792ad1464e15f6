// Package handlers contains the HTTP handlers for the dashboard's routes:
// the assembled review page, the upload and refresh controls, and the
// redacted-image asset proxy.
package handlers

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/example/redactview/internal/constants"
	"github.com/example/redactview/internal/dashboard"
	"github.com/example/redactview/internal/utils"
)

// DashboardHandler serves the review page and routes operator actions into
// the dashboard's loader and uploader.
type DashboardHandler struct {
	dash    *dashboard.Dashboard
	version string
}

// NewDashboardHandler creates a handler around the given dashboard.
func NewDashboardHandler(dash *dashboard.Dashboard, version string) *DashboardHandler {
	return &DashboardHandler{dash: dash, version: version}
}

// ServePage handles GET / by assembling the page around the current region
// contents. The regions were last painted by whichever load or upload
// resolved most recently; serving the page does not itself trigger a load.
func (h *DashboardHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	utils.HTML(w, http.StatusOK, dashboard.Page(h.dash.Regions, h.version))
}

// Refresh handles POST /refresh: it re-runs the report loader and redirects
// back to the page. Runs independently of any upload in flight; if the two
// overlap, the loader's generation counter decides which result stays
// visible.
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	state := h.dash.Refresh(r.Context())
	log.Info().Stringer("state", state).Msg("Manual refresh completed")
	http.Redirect(w, r, constants.DashboardPath, http.StatusSeeOther)
}

// Upload handles POST /upload: it pulls the single file field out of the
// browser's form post and hands it to the upload controller. A submit with
// no file selected still lands here and becomes the controller's guard
// message; either way the browser is redirected back to the page, where the
// status line tells the operator what happened. The redirect also serves a
// fresh form, which is what clears the file selection control.
func (h *DashboardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize)

	file, header, err := r.FormFile(constants.UploadFieldName)
	if err != nil {
		// Missing or unreadable file part: the controller's no-file guard.
		h.dash.SubmitUpload(r.Context(), "", nil)
		http.Redirect(w, r, constants.DashboardPath, http.StatusSeeOther)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close uploaded file")
		}
	}()

	if header.Filename == "" {
		h.dash.SubmitUpload(r.Context(), "", nil)
		http.Redirect(w, r, constants.DashboardPath, http.StatusSeeOther)
		return
	}

	h.dash.SubmitUpload(r.Context(), header.Filename, file)
	http.Redirect(w, r, constants.DashboardPath, http.StatusSeeOther)
}

// NewAssetProxy returns a reverse proxy for the pipeline's redacted-image
// assets, so the page can reference them same-origin under the fixed image
// root. The proxy forwards the path untouched; the backend serves the files
// from its output directory.
func NewAssetProxy(backendBaseURL string) (http.Handler, error) {
	target, err := url.Parse(backendBaseURL)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("Image asset fetch failed")
		w.WriteHeader(http.StatusBadGateway)
	}

	return proxy, nil
}
