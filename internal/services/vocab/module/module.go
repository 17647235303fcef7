// Package module implements the vocab service module
package module

import (
	"lexicore/internal/modkit"
	"lexicore/internal/modkit/httpkit"
	"lexicore/internal/services/vocab/domain"
	"lexicore/internal/services/vocab/repo"
	"lexicore/internal/services/vocab/service"
)

// Ports exposed by the vocab module
type Ports struct {
	Resolver domain.ResolverPort
	Reader   domain.ReaderPort
}

// Module implements the vocab service module.
// It exposes ports only; records are reached through reviews and progress
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new vocab module
func New(deps modkit.Deps) *Module {
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{
		Resolver: svc,
		Reader:   svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "vocab" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
