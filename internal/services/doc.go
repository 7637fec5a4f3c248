// Package services defines the [Service] interface for the streaming provider and implements it for Spotify.
//
// # Service Interface
//
// The interface covers exactly what a playmate invocation does: list playlists once on first run,
// read the currently playing item, and remove-then-add that item in the target playlist.
//
// # Spotify Implementation
//
// [SpotifyService] wraps the zmb3/spotify client. It expects an [http.Client] that already
// carries OAuth2 authorization; token refresh happens inside that client.
//
// Playlist listing follows every page before returning, paced by a [rate.Limiter].
// Calls are never retried.
//
// # Error Handling
//
// Every failed call wraps [shared.ErrAPIRequest]. A listed playlist without an ID is returned
// with its Err field set to [shared.ErrPlaylistUnavailable] instead of failing the listing.
package services
