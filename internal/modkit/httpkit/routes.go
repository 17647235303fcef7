package httpkit

import "net/http"

// MountUnder mounts a module subtree at prefix, applying its middlewares first
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		for _, m := range mw {
			sub.Use(m)
		}
		mount(sub)
	})
}
