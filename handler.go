package wee

// Args holds the resolved arguments for a single handler invocation, keyed
// by argument name. Names whose rules produced nothing are absent.
type Args map[string]any

// Handler is the core handler signature. Handlers receive the environ and
// the arguments resolved from it, and never see the responder.
type Handler interface {
	Handle(env Environ, args Args) (any, error)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(env Environ, args Args) (any, error)

// Handle calls f(env, args).
func (f HandlerFunc) Handle(env Environ, args Args) (any, error) {
	return f(env, args)
}
