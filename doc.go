// Package wee lets request handlers declare the named inputs they need
// instead of digging through the raw request environ themselves.
//
// A handler receives the environ and the arguments its bindings resolved:
//
//	type Handler interface {
//	    Handle(env Environ, args Args) (any, error)
//	}
//
// Bindings map argument names to rules. A rule is a Key looked up in the
// environ, a Rules list tried in order, or a RuleFunc producing candidates:
//
//	greet := wee.Wrap(wee.HandlerFunc(hello), wee.Bindings{
//	    "name": wee.Rules{wee.Key("query.name"), wee.Const("world")},
//	    "lang": wee.Key("HTTP_ACCEPT_LANGUAGE"),
//	})
//
// The first value a rule produces wins. A rule that produces nothing leaves
// the argument out of Args entirely.
//
// Adapters are invoked in one of two conventions. With a Responder, the
// handler must return a Response; the responder receives its status and
// headers and the caller gets the body:
//
//	body, err := greet.Call(env, func(status string, h http.Header) { ... })
//
// Without one, the handler's result is returned as is, so adapters compose:
//
//	v, err := greet.Call(env, nil)
//
// Wrapping an adapter again never nests. The layers collapse into a single
// adapter around the original handler, and bindings applied later override
// earlier ones:
//
//	h := wee.With(wee.Bindings{"a": wee.Key("a2")})(
//	    wee.With(wee.Bindings{"a": wee.Key("a1"), "b": wee.Key("b")})(base))
//
// Bindings may also be declared in YAML or TOML and loaded with LoadBindings.
package wee
