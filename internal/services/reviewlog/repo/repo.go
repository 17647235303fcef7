// Package repo provides the clickhouse review log repository
package repo

import (
	"context"

	"lexicore/internal/platform/store"
	"lexicore/internal/services/reviewlog/domain"
)

// CH is the clickhouse review log repository
type CH struct {
	db store.Clickhouse
}

// NewCH constructs the repository over the store clickhouse seam
func NewCH(db store.Clickhouse) *CH { return &CH{db: db} }

// Append writes one entry to review_log
func (r *CH) Append(ctx context.Context, e domain.Entry) error {
	return r.db.Insert(ctx, "review_log", [][]any{{
		e.UserID, e.Language, e.Word, e.Lemma, e.Module,
		int8(e.Quality), e.Correct, int32(e.ResponseTimeMs),
		int32(e.IntervalBefore), int32(e.IntervalAfter),
		e.StatusBefore, e.StatusAfter,
		e.At,
	}})
}

// ActivityByDay buckets review volume by day and module source
func (r *CH) ActivityByDay(ctx context.Context, userID, language string, w domain.Window) ([]domain.ActivityRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			toStartOfDay(at) AS day,
			module,
			count() AS reviews,
			countIf(correct) AS correct
		FROM review_log
		WHERE user_id = ? AND language = ?
			AND at >= ? AND at < ?
		GROUP BY day, module
		ORDER BY day, module`,
		userID, language, w.Since, w.Until,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ActivityRow
	for rows.Next() {
		var row domain.ActivityRow
		if err := rows.Scan(&row.Day, &row.Module, &row.Reviews, &row.Correct); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
