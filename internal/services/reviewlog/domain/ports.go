package domain

import "context"

// WriterPort appends review observations to the history log
type WriterPort interface {
	Append(ctx context.Context, e Entry) error
}

// QueryPort reads telemetry aggregations from the history log
type QueryPort interface {
	ActivityByDay(ctx context.Context, userID, language string, w Window) ([]ActivityRow, error)
}
