// Package weetest provides recording test doubles for the wee package.
package weetest

import (
	"net/http"
	"sync"

	"github.com/bjaus/wee"
)

// ResponderCall is one recorded Responder invocation.
type ResponderCall struct {
	Status  string
	Headers http.Header
}

// Responder records every call made to its Func.
type Responder struct {
	mu    sync.Mutex
	calls []ResponderCall
}

// Func returns the wee.Responder that records into r.
func (r *Responder) Func() wee.Responder {
	return func(status string, headers http.Header) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls = append(r.calls, ResponderCall{Status: status, Headers: headers})
	}
}

// Calls returns the recorded calls in order.
func (r *Responder) Calls() []ResponderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ResponderCall(nil), r.calls...)
}

// HandlerCall is one recorded Handler invocation.
type HandlerCall struct {
	Env  wee.Environ
	Args wee.Args
}

// Handler is a wee.Handler that records its calls and returns a fixed
// result.
type Handler struct {
	Result any
	Err    error

	mu    sync.Mutex
	calls []HandlerCall
}

// NewHandler returns a Handler returning result.
func NewHandler(result any) *Handler {
	return &Handler{Result: result}
}

// Handle implements wee.Handler.
func (h *Handler) Handle(env wee.Environ, args wee.Args) (any, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, HandlerCall{Env: env, Args: args})
	return h.Result, h.Err
}

// Calls returns the recorded calls in order.
func (h *Handler) Calls() []HandlerCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]HandlerCall(nil), h.calls...)
}
