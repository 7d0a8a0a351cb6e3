package wee

import (
	"fmt"
	"net/http"
)

// Response is what a handler returns when it is invoked with a Responder.
type Response struct {
	Status  string
	Headers http.Header
	Body    any
}

// Responder starts a response. Call invokes it once with the status and
// headers of the handler's Response before returning the body.
type Responder func(status string, headers http.Header)

// asResponse extracts a Response from a handler result.
func asResponse(res any) (Response, error) {
	switch r := res.(type) {
	case Response:
		return r, nil
	case *Response:
		if r != nil {
			return *r, nil
		}
	}
	return Response{}, fmt.Errorf("%w: got %T", ErrNotResponse, res)
}
