package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Controller registers a group of routes under its own prefix.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

type HTTPServer struct {
	Controllers             []Controller
	Middlewares             []mux.MiddlewareFunc
	NotFoundHandler         http.Handler
	MethodNotAllowedHandler http.Handler
}

func NewHTTPServer(controllers []Controller, middlewares []mux.MiddlewareFunc) *HTTPServer {
	return &HTTPServer{
		Controllers: controllers,
		Middlewares: middlewares,
	}
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.Middlewares...)
	for _, controller := range s.Controllers {
		controller.Register(r)
	}

	if s.NotFoundHandler != nil {
		notFoundHandler := s.NotFoundHandler
		for i := len(s.Middlewares) - 1; i >= 0; i-- {
			notFoundHandler = s.Middlewares[i](notFoundHandler)
		}
		r.NotFoundHandler = notFoundHandler
	}
	if s.MethodNotAllowedHandler != nil {
		notAllowedHandler := s.MethodNotAllowedHandler
		for i := len(s.Middlewares) - 1; i >= 0; i-- {
			notAllowedHandler = s.Middlewares[i](notAllowedHandler)
		}
		r.MethodNotAllowedHandler = notAllowedHandler
	}
	return r
}

func (s *HTTPServer) Start(socketAddress string) error {
	return http.ListenAndServe(socketAddress, s.Router())
}
