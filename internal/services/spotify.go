// Spotify Web API implementation of [Service]
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/playmate/internal/models"
	"github.com/desertthunder/playmate/internal/shared"
	"github.com/zmb3/spotify/v2"
	"golang.org/x/time/rate"
)

const (
	playlistPageLimit = 50
	// DefaultPageRate caps playlist page requests per second.
	DefaultPageRate = 5
)

// SpotifyService implements [Service] on top of [spotify.Client].
type SpotifyService struct {
	client  *spotify.Client
	limiter *rate.Limiter
}

// SpotifyOpts configures a [SpotifyService].
type SpotifyOpts struct {
	// HTTPClient must already carry authorization, e.g. from auth.Authenticator.
	HTTPClient *http.Client
	// BaseURL overrides the API root; it must end with a slash.
	BaseURL string
	// PageRate limits page fetches per second. Zero uses [DefaultPageRate].
	PageRate float64
}

// NewSpotifyService creates a Spotify service from an authorized HTTP client.
func NewSpotifyService(opts SpotifyOpts) *SpotifyService {
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.PageRate <= 0 {
		opts.PageRate = DefaultPageRate
	}

	var clientOpts []spotify.ClientOption
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, spotify.WithBaseURL(opts.BaseURL))
	}

	return &SpotifyService{
		client:  spotify.New(opts.HTTPClient, clientOpts...),
		limiter: rate.NewLimiter(rate.Limit(opts.PageRate), 1),
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// Playlists drains the current user's playlist pages.
func (s *SpotifyService) Playlists(ctx context.Context) ([]models.PlaylistCandidate, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	page, err := s.client.CurrentUsersPlaylists(ctx, spotify.Limit(playlistPageLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list playlists: %v", shared.ErrAPIRequest, err)
	}

	var playlists []models.PlaylistCandidate
	for {
		for _, p := range page.Playlists {
			playlists = append(playlists, toCandidate(p))
		}

		if page.Next == "" {
			break
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		err := s.client.NextPage(ctx, page)
		if errors.Is(err, spotify.ErrNoMorePages) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to page playlists: %v", shared.ErrAPIRequest, err)
		}
	}

	return playlists, nil
}

func toCandidate(p spotify.SimplePlaylist) models.PlaylistCandidate {
	c := models.PlaylistCandidate{
		ID:         string(p.ID),
		Name:       p.Name,
		Owner:      p.Owner.DisplayName,
		SnapshotID: p.SnapshotID,
		TrackCount: int(p.Tracks.Total), //nolint:gosec // playlist sizes fit in int
	}
	if c.ID == "" {
		c.Err = fmt.Errorf("%w: entry %q has no id", shared.ErrPlaylistUnavailable, p.Name)
	}
	return c
}

// CurrentlyPlaying returns nil when the player is idle.
func (s *SpotifyService) CurrentlyPlaying(ctx context.Context) (*models.PlayingItem, error) {
	current, err := s.client.PlayerCurrentlyPlaying(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get currently playing item: %v", shared.ErrAPIRequest, err)
	}

	if current == nil || current.Item == nil {
		return nil, nil
	}

	item := &models.PlayingItem{
		ID:      string(current.Item.ID),
		Name:    current.Item.Name,
		Playing: current.Playing,
	}
	for _, a := range current.Item.Artists {
		item.Artists = append(item.Artists, a.Name)
	}
	return item, nil
}

// RemoveAll removes every occurrence of the track from the playlist.
func (s *SpotifyService) RemoveAll(ctx context.Context, playlistID, trackID string) (string, error) {
	snapshot, err := s.client.RemoveTracksFromPlaylist(ctx, spotify.ID(playlistID), spotify.ID(trackID))
	if err != nil {
		return "", fmt.Errorf("%w: failed to remove track from playlist: %v", shared.ErrAPIRequest, err)
	}
	return snapshot, nil
}

// Add appends the track to the end of the playlist.
func (s *SpotifyService) Add(ctx context.Context, playlistID, trackID string) (string, error) {
	snapshot, err := s.client.AddTracksToPlaylist(ctx, spotify.ID(playlistID), spotify.ID(trackID))
	if err != nil {
		return "", fmt.Errorf("%w: failed to add track to playlist: %v", shared.ErrAPIRequest, err)
	}
	return snapshot, nil
}
