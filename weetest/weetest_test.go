package weetest_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/wee"
	"github.com/bjaus/wee/weetest"
)

func TestResponder(t *testing.T) {
	t.Parallel()

	var r weetest.Responder
	f := r.Func()
	f("200 OK", http.Header{"A": {"b"}})
	f("404 Not Found", nil)

	assert.Equal(t, []weetest.ResponderCall{
		{Status: "200 OK", Headers: http.Header{"A": {"b"}}},
		{Status: "404 Not Found"},
	}, r.Calls())
}

func TestHandler(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	h := weetest.NewHandler("result")
	h.Err = boom

	res, err := h.Handle(wee.Map{"k": "v"}, wee.Args{"a": 1})
	assert.Equal(t, "result", res)
	assert.Same(t, boom, err)
	assert.Equal(t, []weetest.HandlerCall{{Env: wee.Map{"k": "v"}, Args: wee.Args{"a": 1}}}, h.Calls())
}
