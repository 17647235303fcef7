// Package module wires review ingestion into the API
package module

import (
	"lexicore/internal/modkit"
	"lexicore/internal/modkit/httpkit"
	str "lexicore/internal/platform/strings"
	rldom "lexicore/internal/services/reviewlog/domain"
	"lexicore/internal/services/reviews/domain"
	revhttp "lexicore/internal/services/reviews/http"
	"lexicore/internal/services/reviews/service"
	vocabdom "lexicore/internal/services/vocab/domain"
	vocabrepo "lexicore/internal/services/vocab/repo"
)

// Ports exposed by the reviews module
type Ports struct {
	Ingest domain.IngestPort
}

// Wiring are the cross module ports reviews consumes
type Wiring struct {
	Resolver vocabdom.ResolverPort
	Sink     rldom.WriterPort
}

// Module implements the reviews module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	ports  Ports

	register func(httpkit.Router)
}

// New constructs the reviews module. Pass Wiring via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reviews"),
		modkit.WithPrefix("/reviews"),
	}, opts...)...)

	w, ok := b.Ports.(Wiring)
	if !ok || w.Resolver == nil {
		panic("reviews module requires Wiring with a resolver port")
	}

	svc := service.New(
		deps.PG,
		vocabrepo.NewPG(),
		w.Resolver,
		w.Sink,
		FromConfig(deps.Cfg),
		deps.Log,
	)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		ports:  Ports{Ingest: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		revhttp.Register(r, m.ports.Ingest)
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
