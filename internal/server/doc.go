// Package server receives the OAuth redirect on a short-lived local listener.
//
// # Router
//
// [BasicRouter] wraps [http.ServeMux] with a [Middleware] stack. Custom handlers implement [Handler],
// which adds the routes they serve to the stdlib handler interface.
//
// # Receiver
//
// [Receiver] binds the host and port of the registered redirect URI, waits for a single redirect
// carrying the expected state, answers the browser with a short confirmation page, and shuts down.
// The authenticator exchanges the captured URL exactly as it would a pasted one.
package server
