package modkit

import (
	phttp "lexicore/internal/platform/net/http"
)

// Module is what the composition root works with: something that can mount
// routes and expose ports for other modules to consume. Kept tiny so modules
// only couple through their ports
type Module interface {
	// MountRoutes registers HTTP routes on the router seam
	MountRoutes(r phttp.Router)

	// Ports returns the module's exported port bundle
	Ports() any

	// Name identifies the module in the registry
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
