// Package swaggerkit mounts the Swagger UI and the generated JSON spec
package swaggerkit

import (
	"net/http"

	phttp "lexicore/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Mount serves the UI under /api/docs/ when enabled.
// Disabled deployments expose no docs surface at all
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	// bare /api/docs must land on the trailing-slash UI index
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON())
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
