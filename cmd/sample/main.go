// Command sample serves a few wee adapters over net/http.
//
// Run:
//
//	go run ./cmd/sample
//	go run ./cmd/sample -bindings greet.yaml   — override the greet bindings
//
// Then explore:
//
//	GET http://localhost:8080/greet?name=Ada          — query binding
//	GET http://localhost:8080/greet -H 'X-Name: Bob'  — header fallback
//	GET http://localhost:8080/users/{id}              — path binding, method handler
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/bjaus/wee"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	bindingsFile := flag.String("bindings", "", "YAML or TOML file with extra bindings for /greet")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	var extra wee.Bindings
	if *bindingsFile != "" {
		var err error
		extra, err = wee.LoadBindings(*bindingsFile)
		if err != nil {
			slog.Error("load bindings failed", "err", err)
			os.Exit(1)
		}
	}

	mux := newMux(logger, extra)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting server", "addr", *addr)

	if err := listenAndServe(ctx, *addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "err", err)
	}

	slog.Info("server stopped")
}

func newMux(logger *slog.Logger, extra wee.Bindings) *http.ServeMux {
	greet := wee.With(wee.Bindings{
		"name": wee.Rules{wee.Key("query.name"), wee.Key("HTTP_X_NAME"), wee.Const("world")},
		"lang": wee.Rules{wee.Key("query.lang"), wee.Const("en")},
	}, wee.WithLogger(logger))(wee.HandlerFunc(handleGreet))

	if len(extra) > 0 {
		greet = wee.Wrap(greet, extra)
	}

	users := wee.WrapMethod((*userStore).serveUser, wee.Bindings{
		"id": wee.Key("path.id"),
	}, wee.WithLogger(logger))

	mux := http.NewServeMux()
	mux.Handle("GET /greet", serve(greet))
	mux.Handle("GET /users/{id}", serve(users.For(store)))
	return mux
}

// serve drives an adapter with the callback convention, writing the status
// and headers the responder receives and then the body.
func serve(a *wee.Adapter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := a.Call(wee.FromRequest(r), func(status string, headers http.Header) {
			for k, vals := range headers {
				for _, v := range vals {
					w.Header().Add(k, v)
				}
			}
			w.WriteHeader(statusCode(status))
		})
		if err != nil {
			slog.Error("handler failed", "err", err, "path", r.URL.Path)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if err := writeBody(w, body); err != nil {
			slog.Error("write body failed", "err", err, "path", r.URL.Path)
		}
	})
}

// writeBody writes a Response body: bytes and strings verbatim, readers
// copied, anything else formatted with fmt.
func writeBody(w io.Writer, body any) error {
	var err error
	switch b := body.(type) {
	case nil:
	case []byte:
		_, err = w.Write(b)
	case string:
		_, err = io.WriteString(w, b)
	case io.Reader:
		_, err = io.Copy(w, b)
	default:
		_, err = fmt.Fprint(w, b)
	}
	return err
}

// statusCode parses the numeric prefix of a status line such as "200 OK".
func statusCode(status string) int {
	code, _, _ := strings.Cut(status, " ")
	n, err := strconv.Atoi(code)
	if err != nil {
		return http.StatusInternalServerError
	}
	return n
}

func listenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

var greetings = map[string]string{
	"en": "Hello",
	"es": "Hola",
	"fr": "Bonjour",
}

func handleGreet(_ wee.Environ, args wee.Args) (any, error) {
	name, _ := args["name"].(string)
	lang, _ := args["lang"].(string)

	greeting, ok := greetings[lang]
	if !ok {
		return wee.Response{
			Status:  "400 Bad Request",
			Headers: http.Header{"Content-Type": {"text/plain"}},
			Body:    "unknown language " + lang + "\n",
		}, nil
	}

	return wee.Response{
		Status:  "200 OK",
		Headers: http.Header{"Content-Type": {"text/plain"}},
		Body:    greeting + ", " + name + "!\n",
	}, nil
}

var store = &userStore{
	users: map[string]string{
		"1": "Alice",
		"2": "Bob",
	},
}

type userStore struct {
	users map[string]string
}

func (s *userStore) serveUser(_ wee.Environ, args wee.Args) (any, error) {
	id, _ := args["id"].(string)

	name, ok := s.users[id]

	if !ok {
		return wee.Response{Status: "404 Not Found", Body: "user " + id + " not found\n"}, nil
	}
	return wee.Response{
		Status:  "200 OK",
		Headers: http.Header{"Content-Type": {"text/plain"}},
		Body:    []byte(name + "\n"),
	}, nil
}
