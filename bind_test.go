package wee_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/wee"
)

func TestBind(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		env      wee.Map
		bindings wee.Bindings
		want     wee.Args
	}{
		"key rules pull values out of the environ": {
			env:      wee.Map{"key1": "v1", "key2": "v2"},
			bindings: wee.Bindings{"arg1": wee.Key("key1"), "arg2": wee.Key("key2")},
			want:     wee.Args{"arg1": "v1", "arg2": "v2"},
		},
		"missing keys are omitted": {
			env:      wee.Map{},
			bindings: wee.Bindings{"arg1": wee.Key("key1"), "arg2": wee.Key("key2")},
			want:     wee.Args{},
		},
		"sequence rules take the first available source": {
			env:      wee.Map{"key2": "v2"},
			bindings: wee.Bindings{"arg": wee.Rules{wee.Key("key1"), wee.Key("key2")}},
			want:     wee.Args{"arg": "v2"},
		},
		"earlier source wins when several are present": {
			env:      wee.Map{"key1": "v1", "key2": "v2"},
			bindings: wee.Bindings{"arg": wee.Rules{wee.Key("key1"), wee.Key("key2")}},
			want:     wee.Args{"arg": "v1"},
		},
		"rule funcs are iterated over": {
			env: wee.Map{"key2": "v2"},
			bindings: wee.Bindings{"arg": wee.RuleFunc(func(env wee.Environ) iter.Seq[any] {
				v, _ := env.Lookup("key2")
				return seqOf(v)(env)
			})},
			want: wee.Args{"arg": "v2"},
		},
		"empty rule func omits the argument": {
			env:      wee.Map{"key": "v"},
			bindings: wee.Bindings{"arg": seqOf()},
			want:     wee.Args{},
		},
		"all sub-rules empty omits the argument": {
			env:      wee.Map{},
			bindings: wee.Bindings{"arg": wee.Rules{wee.Key("a"), seqOf(), wee.Rules{}}},
			want:     wee.Args{},
		},
		"const acts as a default": {
			env:      wee.Map{},
			bindings: wee.Bindings{"lang": wee.Rules{wee.Key("HTTP_ACCEPT_LANGUAGE"), wee.Const("en")}},
			want:     wee.Args{"lang": "en"},
		},
		"nil value is still a value": {
			env:      wee.Map{"key": nil},
			bindings: wee.Bindings{"arg": wee.Rules{wee.Key("key"), wee.Const("fallback")}},
			want:     wee.Args{"arg": nil},
		},
		"nil bindings": {
			env:      wee.Map{"key": "v"},
			bindings: nil,
			want:     wee.Args{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, wee.Bind(tc.env, tc.bindings))
		})
	}
}

func TestBind_takes_only_the_first_value(t *testing.T) {
	t.Parallel()

	pulled := 0
	rule := wee.RuleFunc(func(wee.Environ) iter.Seq[any] {
		return func(yield func(any) bool) {
			for _, v := range []any{"first", "second", "third"} {
				pulled++
				if !yield(v) {
					return
				}
			}
		}
	})

	args := wee.Bind(wee.Map{}, wee.Bindings{"arg": rule})

	assert.Equal(t, wee.Args{"arg": "first"}, args)
	assert.Equal(t, 1, pulled)
}
