package domain

import "context"

// IngestPort applies a review event to the owning record
type IngestPort interface {
	Ingest(ctx context.Context, ev ReviewEvent) (Result, error)
}
