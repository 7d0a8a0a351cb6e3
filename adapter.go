package wee

import (
	"log/slog"
	"maps"
)

// Adapter wraps a Handler with a fixed set of Bindings. It is immutable and
// safe for concurrent use. The wrapped handler is never itself an *Adapter.
type Adapter struct {
	handler  Handler
	bindings Bindings
	logger   *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger sets a logger that receives a debug record for every call,
// naming the bound and omitted arguments.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// Decorator wraps a handler. See With.
type Decorator func(h Handler) *Adapter

// Wrap returns an Adapter calling h with arguments resolved by bindings.
//
// If h is already an *Adapter the two collapse into one: the result wraps
// the original handler, and bindings override the existing ones on name
// collision. Options set on the inner adapter carry over unless overridden.
//
// Wrap panics if h is nil.
func Wrap(h Handler, bindings Bindings, opts ...Option) *Adapter {
	if h == nil {
		panic("wee: nil handler")
	}

	a := &Adapter{handler: h}
	if inner, ok := h.(*Adapter); ok {
		if inner == nil {
			panic("wee: nil handler")
		}
		a.handler = inner.handler
		a.logger = inner.logger
		a.bindings = inner.bindings.merge(bindings)
	} else {
		a.bindings = Bindings{}.merge(bindings)
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// With returns a Decorator that wraps handlers with bindings. Applying
// several decorators to one handler yields a single Adapter; the outermost
// decorator's bindings win.
func With(bindings Bindings, opts ...Option) Decorator {
	return func(h Handler) *Adapter {
		return Wrap(h, bindings, opts...)
	}
}

// Handler returns the wrapped handler.
func (a *Adapter) Handler() Handler { return a.handler }

// Bindings returns a copy of the adapter's bindings.
func (a *Adapter) Bindings() Bindings { return maps.Clone(a.bindings) }

// Call resolves the adapter's bindings against env and invokes the wrapped
// handler.
//
// With a nil respond the handler's result is returned unchanged. Otherwise
// the result must be a Response (or non-nil *Response): respond is called
// with its status and headers and only the body is returned. Any other
// result fails with ErrNotResponse. Handler errors are returned as is and
// respond is not called.
func (a *Adapter) Call(env Environ, respond Responder) (any, error) {
	args := Bind(env, a.bindings)
	a.logBind(args)

	res, err := a.handler.Handle(env, args)
	if err != nil {
		return nil, err
	}
	if respond == nil {
		return res, nil
	}

	resp, err := asResponse(res)
	if err != nil {
		return nil, err
	}
	respond(resp.Status, resp.Headers)
	return resp.Body, nil
}

// Handle implements Handler so adapters can stand in for plain handlers. The
// environ is bound as in Call, then args is laid over the result; explicit
// arguments win. The wrapped handler's result is returned unchanged.
func (a *Adapter) Handle(env Environ, args Args) (any, error) {
	bound := Bind(env, a.bindings)
	maps.Copy(bound, args)
	a.logBind(bound)
	return a.handler.Handle(env, bound)
}
