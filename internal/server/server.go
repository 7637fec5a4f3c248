package server

import (
	"net/http"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Handler is an [http.Handler] that knows the paths it serves.
type Handler interface {
	http.Handler
	Routes() []string
}

// Router registers [Handler] values behind a middleware stack.
type Router interface {
	Use(middleware ...Middleware)
	Handler(handler Handler)
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}
