// Package modkit provides module wiring and core deps
package modkit

import (
	"lexicore/internal/modkit/repokit"
	"lexicore/internal/platform/config"
	"lexicore/internal/platform/logger"
	"lexicore/internal/platform/store"
)

// Deps holds core dependencies passed to modules.
// This is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
