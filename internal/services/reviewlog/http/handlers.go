// Package http provides http transport for the review history log
package http

import (
	stdhttp "net/http"
	"time"

	"lexicore/internal/modkit/httpkit"
	perr "lexicore/internal/platform/errors"
	"lexicore/internal/services/reviewlog/domain"
)

// ActivityInput selects a user's review activity window
type ActivityInput struct {
	UserID   string `json:"user_id" validate:"required,uuid4" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Language string `json:"language" validate:"required,lang_code" example:"fr"`
	Since    string `json:"since" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
	Until    string `json:"until" validate:"required,datetime=2006-01-02" example:"2026-08-31"`
}

// ActivityRow is one day/activity bucket
type ActivityRow struct {
	Day     string `json:"day" example:"2026-08-01"`
	Module  string `json:"module" example:"cloze"`
	Reviews uint64 `json:"reviews" example:"120"`
	Correct uint64 `json:"correct" example:"96"`
}

// Register mounts history endpoints on the given router
func Register(r httpkit.Router, q domain.QueryPort) {
	h := &handlers{q: q}

	httpkit.PostJSON[ActivityInput](r, "/activity", h.activity)
}

type handlers struct{ q domain.QueryPort }

// @Summary Review volume by day and activity
// @Tags History
// @Accept json
// @Produce json
// @Param payload body ActivityInput true "Query"
// @Success 200 {array} ActivityRow "ok"
// @Router /history/activity [post]
func (h *handlers) activity(r *stdhttp.Request, in ActivityInput) (any, error) {
	since, err := time.Parse("2006-01-02", in.Since)
	if err != nil {
		return nil, perr.InvalidArgf("bad since date")
	}
	until, err := time.Parse("2006-01-02", in.Until)
	if err != nil {
		return nil, perr.InvalidArgf("bad until date")
	}
	if !until.After(since) {
		return nil, perr.InvalidArgf("until must be after since")
	}

	rows, err := h.q.ActivityByDay(r.Context(), in.UserID, in.Language, domain.Window{Since: since, Until: until})
	if err != nil {
		return nil, err
	}
	out := make([]ActivityRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ActivityRow{
			Day:     row.Day.UTC().Format("2006-01-02"),
			Module:  row.Module,
			Reviews: row.Reviews,
			Correct: row.Correct,
		})
	}
	return out, nil
}
