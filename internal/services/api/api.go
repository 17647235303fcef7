// Package api provides the HTTP API composition root
package api

import (
	"lexicore/internal/platform/config"
	"lexicore/internal/platform/logger"
	phttp "lexicore/internal/platform/net/http"
	"lexicore/internal/platform/store"

	"lexicore/internal/modkit"
	"lexicore/internal/modkit/httpkit"
	"lexicore/internal/modkit/module"
	"lexicore/internal/modkit/swaggerkit"

	metamod "lexicore/internal/services/meta/module"
	progressmod "lexicore/internal/services/progress/module"
	reviewlogmod "lexicore/internal/services/reviewlog/module"
	reviewsmod "lexicore/internal/services/reviews/module"
	vocabmod "lexicore/internal/services/vocab/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// vocab owns record identity; reviews consume its resolver port
	vocab := vocabmod.New(deps)
	resolver := module.MustPortsOf[vocabmod.Ports](vocab).Resolver

	// the history log owns the append sink reviews write through
	reviewlog := reviewlogmod.New(deps)
	sink := module.MustPortsOf[reviewlogmod.Ports](reviewlog).Writer

	reviews := reviewsmod.New(
		deps,
		modkit.WithPorts(reviewsmod.Wiring{
			Resolver: resolver,
			Sink:     sink,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		vocab,
		reviewlog,
		reviews,
		progressmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
