package auth

import (
	"fmt"

	"github.com/desertthunder/playmate/internal/shared"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

// DefaultRedirectURI must match a redirect URI registered for the Spotify application.
const DefaultRedirectURI = "http://localhost:8888/callback"

// Scopes requested during authorization.
var Scopes = []string{
	spotifyauth.ScopeUserReadCurrentlyPlaying,
	spotifyauth.ScopeUserReadPlaybackState,
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistModifyPrivate,
	spotifyauth.ScopePlaylistModifyPublic,
	spotifyauth.ScopeUserLibraryModify,
	spotifyauth.ScopeUserLibraryRead,
}

// NewSpotifyProvider builds the Spotify OAuth2 [Provider] from application credentials.
func NewSpotifyProvider(clientID, clientSecret, redirectURI string) (*spotifyauth.Authenticator, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: spotify client id", shared.ErrMissingCredentials)
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client secret", shared.ErrMissingCredentials)
	}
	if redirectURI == "" {
		redirectURI = DefaultRedirectURI
	}

	return spotifyauth.New(
		spotifyauth.WithClientID(clientID),
		spotifyauth.WithClientSecret(clientSecret),
		spotifyauth.WithRedirectURL(redirectURI),
		spotifyauth.WithScopes(Scopes...),
	), nil
}
