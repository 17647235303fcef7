// Package repokit holds the shared vocabulary of repository implementations.
// Repos depend on these aliases instead of the store package so the seam
// stays swappable in tests
package repokit

import (
	"context"

	"lexicore/internal/platform/store"
)

type (
	// Queryer is the read and write surface a bound repo operates on
	Queryer = store.RowQuerier

	// TxRunner executes a function inside a transaction
	TxRunner = store.TxRunner

	// Rows is a query result set
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag reports the effect of a mutation
	CommandTag = store.CommandTag
)

// WithTx runs fn inside one transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
