package domain

import "context"

// QueryPort serves aggregate progress reads
type QueryPort interface {
	StatusCounts(ctx context.Context, userID, language string) (Counts, error)
	Due(ctx context.Context, in DueInput) ([]DueRow, AfterKey, error)
}
