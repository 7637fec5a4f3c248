// Package models defines the provider-neutral values used by playmate.
//
//   - [PlaylistCandidate] : a playlist listed during first-run selection
//   - [PlayingItem] : the currently playing item, possibly a local file
//   - [MoveOutcome] : how a successful move invocation ended
//
// Only the selected playlist's ID outlives a single invocation; it is persisted by the shared.ProfileStore.
package models
