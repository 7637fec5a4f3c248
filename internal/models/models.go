package models

import "strings"

// PlaylistCandidate is a playlist offered to the user during selection.
//
// Err is set when the entry itself could not be loaded even though the listing succeeded.
type PlaylistCandidate struct {
	ID         string
	Name       string
	Owner      string
	SnapshotID string
	TrackCount int
	Err        error
}

// PlayingItem is the item currently playing on the user's account.
//
// ID is empty for local files, which cannot be added to a playlist.
type PlayingItem struct {
	ID      string
	Name    string
	Artists []string
	Playing bool
}

// Local reports whether the item lacks a catalog identifier.
func (p *PlayingItem) Local() bool {
	return p.ID == ""
}

// String formats the item as "Name - Artist, Artist".
func (p *PlayingItem) String() string {
	if len(p.Artists) == 0 {
		return p.Name
	}
	return p.Name + " - " + strings.Join(p.Artists, ", ")
}

// MoveOutcome describes how a move invocation ended without error.
type MoveOutcome int

const (
	// Moved means the track was removed from and re-added to the playlist.
	Moved MoveOutcome = iota
	// NothingPlaying means no item was playing.
	NothingPlaying
	// LocalTrack means the playing item is a local file without an id.
	LocalTrack
)

func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case NothingPlaying:
		return "nothing playing"
	case LocalTrack:
		return "local track"
	default:
		return "unknown"
	}
}
