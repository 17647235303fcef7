package repokit

// Binder produces a repo bound to a specific Queryer, letting services
// rebind the same repo inside and outside transactions
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain constructor function into a Binder
type BindFunc[T any] func(Queryer) T

// Bind calls the wrapped constructor
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// RequireQueryer panics on a nil Queryer, which is always a wiring bug
func RequireQueryer(q Queryer) Queryer {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return q
}

// MustBind validates q then binds
func MustBind[T any](b Binder[T], q Queryer) T {
	return b.Bind(RequireQueryer(q))
}
