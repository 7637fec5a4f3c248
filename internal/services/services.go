// package services defines interface Service for interacting with the streaming provider's HTTP API
package services

import (
	"context"

	"github.com/desertthunder/playmate/internal/models"
)

// Service defines the remote operations playmate needs from a streaming provider.
type Service interface {
	// Playlists retrieves every playlist visible to the authenticated user.
	// All pages are fetched before returning.
	Playlists(ctx context.Context) ([]models.PlaylistCandidate, error)

	// CurrentlyPlaying returns the user's playing item, or nil when nothing is playing.
	CurrentlyPlaying(ctx context.Context) (*models.PlayingItem, error)

	// RemoveAll removes every occurrence of trackID from the playlist and returns the new snapshot id.
	RemoveAll(ctx context.Context, playlistID, trackID string) (string, error)

	// Add appends trackID to the playlist and returns the new snapshot id.
	Add(ctx context.Context, playlistID, trackID string) (string, error)

	// Name returns the name of the service (e.g., "Spotify")
	Name() string
}
