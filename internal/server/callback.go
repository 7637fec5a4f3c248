package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playmate/internal/shared"
)

const successPage = `<!DOCTYPE html>
<html>
<head><title>playmate</title></head>
<body style="font-family: sans-serif; text-align: center; margin-top: 4rem;">
  <h1 style="color: #1DB954;">✓ Authorization received</h1>
  <p>You can close this window and return to the terminal.</p>
</body>
</html>
`

// callbackHandler accepts exactly one redirect carrying the expected state.
type callbackHandler struct {
	path   string
	state  string
	result chan callbackResult
	once   sync.Once
}

type callbackResult struct {
	query string
	err   error
}

func (h *callbackHandler) Routes() []string {
	return []string{h.path}
}

func (h *callbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	switch {
	case query.Get("state") != h.state:
		h.send(callbackResult{err: errors.New("redirect state does not match")})
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
	case query.Get("code") == "":
		h.send(callbackResult{err: fmt.Errorf("authorization denied: %s", query.Get("error"))})
		http.Error(w, "Authorization failed", http.StatusBadRequest)
	default:
		h.send(callbackResult{query: r.URL.RawQuery})
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, successPage)
	}
}

func (h *callbackHandler) send(result callbackResult) {
	h.once.Do(func() {
		h.result <- result
	})
}

// Receiver listens on the host and path of the redirect URI and captures the first redirect.
//
// It replaces pasting the redirect URL by hand; the captured URL is handed back unchanged.
type Receiver struct {
	redirect *url.URL
	logger   *log.Logger

	listener net.Listener
	server   *http.Server
	handler  *callbackHandler
}

// NewReceiver validates redirectURI, which must be a plain http URL on an explicit host and port.
func NewReceiver(redirectURI string, logger *log.Logger) (*Receiver, error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return nil, fmt.Errorf("%w: redirect URI: %v", shared.ErrInvalidInput, err)
	}
	if u.Scheme != "http" || u.Port() == "" {
		return nil, fmt.Errorf("%w: redirect URI %q must be http with an explicit port to listen on", shared.ErrInvalidInput, redirectURI)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Receiver{redirect: u, logger: logger}, nil
}

// Start begins listening for a redirect carrying state.
func (r *Receiver) Start(state string) error {
	listener, err := net.Listen("tcp", r.redirect.Host)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", r.redirect.Host, err)
	}

	r.handler = &callbackHandler{path: r.redirect.Path, state: state, result: make(chan callbackResult, 1)}

	router := NewBasicRouter()
	router.Use(WithLogging(r.logger))
	router.Handler(r.handler)

	r.listener = listener
	r.server = &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := r.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.logger.Error("callback listener stopped", "error", err)
		}
	}()

	r.logger.Debug("listening for redirect", "addr", listener.Addr().String(), "path", r.redirect.Path)
	return nil
}

// Addr is the bound listener address. Only valid after [Receiver.Start].
func (r *Receiver) Addr() string {
	if r.listener == nil {
		return ""
	}
	return r.listener.Addr().String()
}

// Wait blocks until a redirect arrives or ctx ends, then stops the listener.
//
// The returned URL is the redirect URI with the received query attached.
func (r *Receiver) Wait(ctx context.Context) (string, error) {
	if r.server == nil {
		return "", errors.New("receiver not started")
	}
	defer r.shutdown()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-r.handler.result:
		if result.err != nil {
			return "", result.err
		}
		received := *r.redirect
		received.RawQuery = result.query
		return received.String(), nil
	}
}

func (r *Receiver) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.server.Shutdown(ctx); err != nil {
		r.logger.Warn("failed to stop callback listener", "error", err)
	}
}
