// Package http provides http transport for review ingestion
package http

import (
	stdhttp "net/http"

	"lexicore/internal/modkit/httpkit"
	"lexicore/internal/services/reviews/domain"
)

// Register mounts review endpoints on the given router
func Register(r httpkit.Router, ingest domain.IngestPort) {
	h := &handlers{ingest: ingest}

	httpkit.PostJSON[domain.ReviewEvent](r, "/", h.ingest0)
}

type handlers struct{ ingest domain.IngestPort }

// @Summary Apply a review event to the owning vocabulary record
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body domain.ReviewEvent true "Review event"
// @Success 200 {object} domain.Result "ok"
// @Router /reviews [post]
func (h *handlers) ingest0(r *stdhttp.Request, ev domain.ReviewEvent) (any, error) {
	return h.ingest.Ingest(r.Context(), ev)
}
