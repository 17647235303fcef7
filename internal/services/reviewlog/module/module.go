// Package module wires the review history log into the API
package module

import (
	"lexicore/internal/modkit"
	"lexicore/internal/modkit/httpkit"
	str "lexicore/internal/platform/strings"
	"lexicore/internal/services/reviewlog/domain"
	rlhttp "lexicore/internal/services/reviewlog/http"
	"lexicore/internal/services/reviewlog/service"
)

// Ports exposed by the reviewlog module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the reviewlog module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	ports  Ports

	register func(httpkit.Router)
}

// New constructs the reviewlog module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reviewlog"),
		modkit.WithPrefix("/history"),
	}, opts...)...)

	svc := service.New(deps.CH)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		ports:  Ports{Writer: svc, Query: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		rlhttp.Register(r, m.ports.Query)
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
