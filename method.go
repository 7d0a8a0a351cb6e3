package wee

// MethodFunc is a handler that needs a receiver before it can be called,
// typically a method expression such as (*App).Serve.
type MethodFunc[T any] func(recv T, env Environ, args Args) (any, error)

// Method is an Adapter declaration for a MethodFunc. It yields adapters only
// once bound to a receiver with For.
type Method[T any] struct {
	fn    MethodFunc[T]
	proto Adapter
}

// WrapMethod declares bindings for a method-like handler.
//
// WrapMethod panics if fn is nil.
func WrapMethod[T any](fn MethodFunc[T], bindings Bindings, opts ...Option) *Method[T] {
	if fn == nil {
		panic("wee: nil method")
	}
	m := &Method[T]{fn: fn}
	m.proto.bindings = Bindings{}.merge(bindings)
	for _, opt := range opts {
		opt(&m.proto)
	}
	return m
}

// Wrap stacks further bindings onto m, collapsing like Wrap does for
// adapters: the result wraps the same method and bindings override m's on
// name collision.
func (m *Method[T]) Wrap(bindings Bindings, opts ...Option) *Method[T] {
	out := &Method[T]{fn: m.fn, proto: m.proto}
	out.proto.bindings = m.proto.bindings.merge(bindings)
	for _, opt := range opts {
		opt(&out.proto)
	}
	return out
}

// For binds the method to recv and returns an Adapter carrying the same
// bindings.
func (m *Method[T]) For(recv T) *Adapter {
	fn := m.fn
	return &Adapter{
		handler: HandlerFunc(func(env Environ, args Args) (any, error) {
			return fn(recv, env, args)
		}),
		bindings: m.proto.bindings,
		logger:   m.proto.logger,
	}
}

// Func returns the unbound method.
func (m *Method[T]) Func() MethodFunc[T] { return m.fn }

// Bindings returns a copy of the method's bindings.
func (m *Method[T]) Bindings() Bindings { return m.proto.Bindings() }
