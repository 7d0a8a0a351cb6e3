package wee

import "iter"

// Rule describes where an argument's value comes from. The three rule kinds
// are Key, Rules, and RuleFunc.
type Rule interface {
	values(env Environ) iter.Seq[any]
}

// Key is a rule that looks up a single key in the environ. A missing key
// produces no value.
type Key string

func (k Key) values(env Environ) iter.Seq[any] {
	return func(yield func(any) bool) {
		if v, ok := env.Lookup(string(k)); ok {
			yield(v)
		}
	}
}

// Rules is a prioritized list of sub-rules. It produces every value of each
// sub-rule in declared order, so binding picks the first source that has one.
type Rules []Rule

func (rs Rules) values(env Environ) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, r := range rs {
			for v := range Evaluate(r, env) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// RuleFunc is a rule computed from the environ. It returns a lazy sequence
// of candidate values. A nil RuleFunc or nil sequence produces nothing.
type RuleFunc func(env Environ) iter.Seq[any]

func (f RuleFunc) values(env Environ) iter.Seq[any] {
	return func(yield func(any) bool) {
		if f == nil {
			return
		}
		seq := f(env)
		if seq == nil {
			return
		}
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Const returns a rule producing the given values regardless of the environ.
// Placed last in a Rules list it acts as a default.
func Const(values ...any) RuleFunc {
	return func(Environ) iter.Seq[any] {
		return func(yield func(any) bool) {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Evaluate lazily produces the candidate values of rule against env. Missing
// keys are skipped, never reported. A nil rule or environ produces nothing.
func Evaluate(rule Rule, env Environ) iter.Seq[any] {
	if rule == nil || env == nil {
		return func(func(any) bool) {}
	}
	return rule.values(env)
}
