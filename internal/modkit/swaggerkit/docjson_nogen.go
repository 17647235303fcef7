//go:build !swag

// Package swaggerkit mounts the OpenAPI UI and doc.json for HTTP services
package swaggerkit

import "net/http"

var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"Lexicore API","version":"0.0.0"},"paths":{}}`
}

// serveDocJSON (no-swag build) serves a skeleton so the UI still loads
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
