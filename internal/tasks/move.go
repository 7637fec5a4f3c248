package tasks

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playmate/internal/models"
	"github.com/desertthunder/playmate/internal/services"
	"github.com/desertthunder/playmate/internal/shared"
)

// Mover moves the currently playing track to the end of a playlist.
type Mover struct {
	svc    services.Service
	logger *log.Logger
}

// NewMover creates a Mover backed by svc.
func NewMover(svc services.Service, logger *log.Logger) *Mover {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Mover{svc: svc, logger: logger}
}

// Run removes every occurrence of the playing track from playlistID and appends it once.
//
// Nothing playing and local files end the run early with no error. A failed add after a
// successful remove is returned as is; the track is not restored.
func (m *Mover) Run(ctx context.Context, playlistID string) (models.MoveOutcome, *models.PlayingItem, error) {
	item, err := m.svc.CurrentlyPlaying(ctx)
	if err != nil {
		return 0, nil, err
	}
	if item == nil {
		return models.NothingPlaying, nil, nil
	}
	if item.Local() {
		m.logger.Debug("skipping local item", "name", item.Name)
		return models.LocalTrack, item, nil
	}

	logger := m.logger.With("track", item.ID, "playlist", playlistID)

	snapshot, err := m.svc.RemoveAll(ctx, playlistID, item.ID)
	if err != nil {
		return 0, item, err
	}
	logger.Debug("removed existing occurrences", "snapshot", snapshot)

	snapshot, err = m.svc.Add(ctx, playlistID, item.ID)
	if err != nil {
		logger.Error("track removed but not re-added", "error", err)
		return 0, item, err
	}
	logger.Debug("appended track", "snapshot", snapshot)

	return models.Moved, item, nil
}
