package wee

import "maps"

// Bindings maps argument names to the rules that resolve them.
type Bindings map[string]Rule

// Bind resolves every binding against env, keeping the first value each rule
// produces. Names whose rule produces nothing are omitted from the result.
func Bind(env Environ, bindings Bindings) Args {
	args := make(Args, len(bindings))
	for name, rule := range bindings {
		for v := range Evaluate(rule, env) {
			args[name] = v
			break
		}
	}
	return args
}

// merge returns a new Bindings holding b overlaid with outer. Outer wins on
// collision.
func (b Bindings) merge(outer Bindings) Bindings {
	out := make(Bindings, len(b)+len(outer))
	maps.Copy(out, b)
	maps.Copy(out, outer)
	return out
}
