package modkit

import (
	"net/http"
	"testing"

	"lexicore/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	b := Build()
	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("hooks must default to no-ops")
	}
	// no-op hooks must be callable
	b.Register(nil)
	if got := b.Subrouter(nil); got != nil {
		t.Fatal("default subrouter must return its input")
	}
}

func TestBuildAppliesOptions(t *testing.T) {
	t.Parallel()

	mw := func(next http.Handler) http.Handler { return next }
	registered := false

	b := Build(
		WithName("reviews"),
		WithPrefix("/reviews"),
		WithMiddlewares(mw),
		WithPorts("port-set"),
		WithRegister(func(httpkit.Router) { registered = true }),
	)

	if b.Name != "reviews" || b.Prefix != "/reviews" {
		t.Fatalf("name/prefix not applied: %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("middleware count = %d, want 1", len(b.Mw))
	}
	if b.Ports != "port-set" {
		t.Fatalf("ports = %v", b.Ports)
	}
	b.Register(nil)
	if !registered {
		t.Fatal("register hook not wired")
	}
}
