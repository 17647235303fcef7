// Package module wires progress queries into the API
package module

import (
	"lexicore/internal/modkit"
	"lexicore/internal/modkit/httpkit"
	str "lexicore/internal/platform/strings"
	"lexicore/internal/services/progress/domain"
	proghttp "lexicore/internal/services/progress/http"
	"lexicore/internal/services/progress/repo"
	"lexicore/internal/services/progress/service"
)

// Ports exposed by the progress module
type Ports struct {
	Query domain.QueryPort
}

// Module implements the progress module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	ports  Ports

	svc      service.Service
	register func(httpkit.Router)
}

// New constructs the progress module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("progress"),
		modkit.WithPrefix("/progress"),
	}, opts...)...)

	svcCfg := service.Config{
		HardLimit: deps.Cfg.Prefix("PROGRESS_").MayInt("HARD_LIMIT", 100),
	}
	svc := service.New(deps.PG, repo.NewPG(), svcCfg)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		ports:  Ports{Query: svc},
		svc:    svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		proghttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
