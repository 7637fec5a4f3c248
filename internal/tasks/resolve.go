package tasks

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playmate/internal/models"
	"github.com/desertthunder/playmate/internal/services"
	"github.com/desertthunder/playmate/internal/shared"
	"github.com/desertthunder/playmate/internal/ui"
)

// ParseSelection validates one line of menu input against a list of count entries.
//
// One leading plus sign is accepted. It returns the zero-based index of the chosen entry,
// or [shared.ErrInvalidInput].
func ParseSelection(input string, count int) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(input, "+"), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", shared.ErrInvalidInput, input)
	}
	if n < 1 || n > uint64(count) {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", shared.ErrInvalidInput, n, count)
	}
	return int(n - 1), nil
}

// Resolver asks the user to pick the target playlist.
type Resolver struct {
	svc    services.Service
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
}

// NewResolver creates a Resolver reading selections from in and writing the menu to out.
func NewResolver(svc services.Service, in *bufio.Reader, out io.Writer, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Resolver{svc: svc, in: in, out: out, logger: logger}
}

// Resolve lists every playlist and re-prompts until a valid number is entered, returning the chosen playlist's ID.
//
// Invalid entries never end the loop; only closed input or a failed write does.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	playlists, err := r.svc.Playlists(ctx)
	if err != nil {
		return "", err
	}
	if len(playlists) == 0 {
		return "", shared.ErrNoPlaylists
	}
	r.logger.Debug("fetched playlists", "service", r.svc.Name(), "count", len(playlists))

	for {
		if err := r.printMenu(playlists); err != nil {
			return "", err
		}

		line, err := shared.ReadLine(r.in)
		if err != nil {
			return "", err
		}

		idx, err := ParseSelection(line, len(playlists))
		if err != nil {
			r.logger.Debug("rejected selection", "input", line, "error", err)
			if _, err := fmt.Fprintf(r.out, "%s\n\n", ui.Err("Invalid selection")); err != nil {
				return "", fmt.Errorf("failed to write output: %w", err)
			}
			continue
		}

		chosen := playlists[idx]
		r.logger.Info("playlist selected", "name", chosen.Name, "id", chosen.ID)
		r.logger.Debug("selected playlist details", "owner", chosen.Owner, "tracks", chosen.TrackCount, "snapshot", chosen.SnapshotID)
		return chosen.ID, nil
	}
}

func (r *Resolver) printMenu(playlists []models.PlaylistCandidate) error {
	if _, err := fmt.Fprintln(r.out, ui.Title("Select a playlist")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for i, p := range playlists {
		if p.Err != nil {
			return p.Err
		}
		if _, err := fmt.Fprintf(r.out, "%4d: %s\n", i+1, p.Name); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	_, err := fmt.Fprint(r.out, "Select which playlist to use by typing the playlist's number and pressing enter:\n> ")
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
