package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playmate/internal/shared"
	"github.com/desertthunder/playmate/internal/ui"
	"golang.org/x/oauth2"
)

// State is the authenticator's position in its two-state lifecycle.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Provider is the OAuth2 collaborator; *spotifyauth.Authenticator satisfies it.
type Provider interface {
	AuthURL(state string, opts ...oauth2.AuthCodeOption) string
	Token(ctx context.Context, state string, r *http.Request, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	RefreshToken(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error)
}

// Receiver captures the redirect URL without the user pasting it; *server.Receiver satisfies it.
type Receiver interface {
	Start(state string) error
	Wait(ctx context.Context) (string, error)
}

// Authenticator obtains an authorized [http.Client], prompting the user only when the cache cannot supply a credential.
type Authenticator struct {
	provider    Provider
	cache       *TokenCache
	in          *bufio.Reader
	out         io.Writer
	openBrowser shared.BrowserOpener
	receiver    Receiver
	logger      *log.Logger
	state       State
}

// Opts contains the collaborators for an [Authenticator].
type Opts struct {
	Provider    Provider
	Cache       *TokenCache
	In          *bufio.Reader
	Out         io.Writer
	OpenBrowser shared.BrowserOpener
	Receiver    Receiver
	Logger      *log.Logger
}

// New creates an Authenticator. Nil In, Out, OpenBrowser and Logger fall back to stdin, stdout, [shared.OpenBrowser] and a default logger.
// A nil Receiver means the redirect URL is pasted by the user.
func New(opts Opts) *Authenticator {
	if opts.In == nil {
		opts.In = bufio.NewReader(os.Stdin)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = shared.OpenBrowser
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Authenticator{
		provider:    opts.Provider,
		cache:       opts.Cache,
		in:          opts.In,
		out:         opts.Out,
		openBrowser: opts.OpenBrowser,
		receiver:    opts.Receiver,
		logger:      opts.Logger,
	}
}

// State returns the current lifecycle state.
func (a *Authenticator) State() State {
	return a.state
}

// Authenticate returns an HTTP client authorized for the rest of the process.
//
// A valid cached token is used as is, an expired one with a refresh token is refreshed,
// and anything else starts the interactive browser flow.
func (a *Authenticator) Authenticate(ctx context.Context) (*http.Client, error) {
	token, err := a.cache.Load()
	if err != nil {
		return nil, err
	}

	src := &cachingSource{ctx: ctx, provider: a.provider, cache: a.cache, logger: a.logger}

	switch {
	case token.Valid():
		a.logger.Debug("using cached token", "path", a.cache.Path())
		src.token = token
	case token != nil && token.RefreshToken != "":
		a.logger.Info("cached token expired, refreshing")
		src.token = token
		if _, err := src.Token(); err != nil {
			return nil, err
		}
	default:
		token, err := a.interactive(ctx)
		if err != nil {
			return nil, err
		}
		if err := a.cache.Save(token); err != nil {
			return nil, err
		}
		src.token = token
	}

	a.state = Authenticated
	return oauth2.NewClient(ctx, src), nil
}

func (a *Authenticator) interactive(ctx context.Context) (*oauth2.Token, error) {
	fmt.Fprintln(a.out, ui.Title("Spotify authorization required"))
	fmt.Fprintln(a.out, "A browser window will open so you can log in to Spotify.")
	if a.receiver == nil {
		fmt.Fprintln(a.out, "After logging in you will land on a page that fails to load. That is expected:")
		fmt.Fprintln(a.out, "copy the full address of that page and paste it here.")
	}
	fmt.Fprint(a.out, ui.Help("Press enter to continue."), " ")

	if _, err := shared.ReadLine(a.in); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrAuthFailed, err)
	}

	state := shared.GenerateID()
	listening := false
	if a.receiver != nil {
		if err := a.receiver.Start(state); err != nil {
			a.logger.Warn("failed to start redirect listener, falling back to paste", "error", err)
		} else {
			listening = true
		}
	}

	authURL := a.provider.AuthURL(state)
	if err := a.openBrowser(authURL); err != nil {
		a.logger.Warn("failed to open browser", "error", err)
	}

	fmt.Fprintf(a.out, "\nIf no browser opened, visit:\n%s\n\n", authURL)

	redirect, err := a.redirect(ctx, listening)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrAuthFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, redirect, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid redirect URL: %v", shared.ErrAuthFailed, err)
	}

	token, err := a.provider.Token(ctx, state, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	a.logger.Info("authorization complete")
	return token, nil
}

func (a *Authenticator) redirect(ctx context.Context, listening bool) (string, error) {
	if listening {
		fmt.Fprintln(a.out, "Waiting for the browser to redirect back...")
		return a.receiver.Wait(ctx)
	}

	fmt.Fprint(a.out, "Enter the URL you were redirected to: ")
	return shared.ReadLine(a.in)
}

// cachingSource is an [oauth2.TokenSource] that writes refreshed tokens back to the cache.
type cachingSource struct {
	ctx      context.Context
	provider Provider
	cache    *TokenCache
	logger   *log.Logger

	mu    sync.Mutex
	token *oauth2.Token
}

func (s *cachingSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token.Valid() {
		return s.token, nil
	}
	if s.token == nil || s.token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh token available", shared.ErrRefreshFailed)
	}

	token, err := s.provider.RefreshToken(s.ctx, s.token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrRefreshFailed, err)
	}
	if token.RefreshToken == "" {
		token.RefreshToken = s.token.RefreshToken
	}

	if err := s.cache.Save(token); err != nil {
		return nil, err
	}
	s.logger.Debug("token refreshed", "expiry", token.Expiry)

	s.token = token
	return token, nil
}
