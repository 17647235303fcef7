// Package http provides http transport for progress queries
package http

import (
	stdhttp "net/http"

	"lexicore/internal/modkit/httpkit"
	perr "lexicore/internal/platform/errors"
	"lexicore/internal/services/progress/domain"
	svc "lexicore/internal/services/progress/service"
)

// Register mounts progress endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/counts", h.counts)
	httpkit.PostJSON[domain.DueInput](r, "/due", h.due)
}

type handlers struct{ svc svc.Service }

// @Summary Per-status record counts for a user and language
// @Tags Progress
// @Produce json
// @Param user_id query string true "User id"
// @Param language query string true "Language code"
// @Success 200 {object} domain.Counts "ok"
// @Router /progress/counts [get]
func (h *handlers) counts(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	language := q.Get("language")
	if userID == "" || language == "" {
		return nil, perr.InvalidArgf("user_id and language query params are required")
	}
	return h.svc.StatusCounts(r.Context(), userID, language)
}

// @Summary Review queue ordered by due time
// @Tags Progress
// @Accept json
// @Produce json
// @Param payload body domain.DueInput true "Queue selection"
// @Success 200 {array} domain.DueRow "ok"
// @Router /progress/due [post]
func (h *handlers) due(r *stdhttp.Request, in domain.DueInput) (any, error) {
	rows, next, err := h.svc.Due(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.List(rows, len(rows), next.Encode()), nil
}
