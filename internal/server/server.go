package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type Method string

const (
	GET  Method = "GET"
	POST Method = "POST"
)

// Handler produces the payload and status code for a request.
type Handler func(r *http.Request) ([]byte, int, error)

// Route binds a handler to a path and method.
type Route struct {
	Path   string
	Method Method
	Exec   Handler
}

// Server is a small http server exposing json routes and raw handlers.
type Server struct {
	name   string
	addr   string
	routes []Route
	raw    map[string]http.Handler
}

// NewServer creates a new server listening on the given address.
func NewServer(name string, addr string) *Server {
	return &Server{
		name:   name,
		addr:   addr,
		routes: make([]Route, 0),
		raw:    make(map[string]http.Handler),
	}
}

// AddRoute adds a route for the given method and path.
func (s *Server) AddRoute(method Method, path string, exec Handler) *Server {
	s.routes = append(s.routes, Route{
		Path:   path,
		Method: method,
		Exec:   exec,
	})
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Handle mounts a plain http handler, e.g. the prometheus one, on the given path.
func (s *Server) Handle(path string, handler http.Handler) *Server {
	s.raw[path] = handler
	return s
}

// Handler builds the request multiplexer for all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, route := range s.routes {
		mux.HandleFunc(route.Path, s.handle(route.Method, route.Exec))
	}
	for path, handler := range s.raw {
		mux.Handle(path, handler)
	}
	return mux
}

func (s *Server) handle(method Method, handler Handler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if Method(r.Method) != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		b, code, err := handler(r)
		if err != nil {
			s.error(w, err)
			return
		}
		s.respond(w, b, code)
	}
}

// Run serves requests until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Str("server", s.name).Msg("could not shut down server")
		}
	}()

	log.Info().Str("server", s.name).Str("addr", s.addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start server '%s': %w", s.name, err)
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, b []byte, code int) {
	w.WriteHeader(code)
	if _, err := w.Write(b); err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, err error) {
	log.Error().Err(err).Str("server", s.name).Msg("error for http request")
	s.respond(w, []byte(err.Error()), http.StatusInternalServerError)
}

// Live is a health check route.
func Live() Route {
	return Route{
		Path:   "/live",
		Method: GET,
		Exec: func(r *http.Request) ([]byte, int, error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// JSON creates a handler responding with the json representation of the current value.
func JSON(value func() interface{}) Handler {
	return func(r *http.Request) ([]byte, int, error) {
		b, err := json.Marshal(value())
		if err != nil {
			return nil, 0, fmt.Errorf("could not marshal response: %w", err)
		}
		return b, http.StatusOK, nil
	}
}
