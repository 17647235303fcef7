//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"

	docs "lexicore/internal/services/api/docs"
)

// docReader is a seam so tests can inject invalid JSON without patching swagger
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// serveDocJSON serves the generated swagger JSON with the OAS3 server base applied
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := docReader()

		var spec map[string]any
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers sets the OAS3 servers list when the generator left it empty
func ensureServers(spec map[string]any, base string) {
	if _, ok := spec["servers"]; ok {
		return
	}
	spec["servers"] = []any{map[string]any{"url": base}}
}
