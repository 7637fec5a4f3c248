package shared

import (
	"errors"
	"fmt"
)

var (
	// Environment and setup errors
	ErrMissingDataDir = fmt.Errorf("application data directory not set")
	ErrConfigIO       = fmt.Errorf("configuration file I/O failed")
	ErrInvalidProfile = fmt.Errorf("invalid profile name")

	// Malformed persisted state
	ErrInvalidConfig     = fmt.Errorf("invalid configuration")
	ErrInvalidTokenCache = fmt.Errorf("invalid token cache")

	// Authentication errors
	ErrMissingCredentials = fmt.Errorf("missing credentials")
	ErrAuthFailed         = fmt.Errorf("authentication failed")
	ErrRefreshFailed      = fmt.Errorf("token refresh failed")

	// API and service errors
	ErrAPIRequest          = fmt.Errorf("API request failed")
	ErrNoPlaylists         = fmt.Errorf("no playlists available")
	ErrPlaylistUnavailable = fmt.Errorf("playlist entry could not be loaded")

	// Input errors
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrInputClosed  = fmt.Errorf("input closed")
)

// Kind classifies an error into one of the failure classes the CLI reports.
type Kind int

const (
	KindUnknown Kind = iota
	KindEnvironment
	KindPersistedState
	KindAuth
	KindAPI
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "environment"
	case KindPersistedState:
		return "persisted state"
	case KindAuth:
		return "authentication"
	case KindAPI:
		return "api"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindEnvironment, []error{ErrMissingDataDir, ErrConfigIO, ErrInvalidProfile, ErrMissingCredentials}},
	{KindPersistedState, []error{ErrInvalidConfig, ErrInvalidTokenCache}},
	{KindAuth, []error{ErrAuthFailed, ErrRefreshFailed}},
	{KindAPI, []error{ErrAPIRequest, ErrNoPlaylists, ErrPlaylistUnavailable}},
	{KindInput, []error{ErrInvalidInput, ErrInputClosed}},
}

// ErrorKind returns the [Kind] of the first sentinel found in err's chain.
func ErrorKind(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}
	return KindUnknown
}
