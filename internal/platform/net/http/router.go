package http

import "net/http"

// Handler is the platform handler signature all transports share
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the mounting surface handed to service modules.
// It carries only the verbs this API uses
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
