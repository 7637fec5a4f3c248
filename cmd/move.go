package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/playmate/internal/auth"
	"github.com/desertthunder/playmate/internal/models"
	"github.com/desertthunder/playmate/internal/server"
	"github.com/desertthunder/playmate/internal/shared"
	"github.com/desertthunder/playmate/internal/tasks"
	"github.com/desertthunder/playmate/internal/ui"
	"github.com/urfave/cli/v3"
)

// Move is the root action: it resolves the profile's playlist if needed and moves the playing track into it.
func (r *Runner) Move(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.Verbose(r.logger)
	}

	root := cmd.String("data-dir")
	if root == "" {
		var err error
		if root, err = shared.DataDir(r.lookupEnv); err != nil {
			return err
		}
	}

	provider := r.provider
	if provider == nil {
		p, err := auth.NewSpotifyProvider(cmd.String("client-id"), cmd.String("client-secret"), cmd.String("redirect-uri"))
		if err != nil {
			return err
		}
		provider = p
	}

	var receiver auth.Receiver
	if cmd.Bool("listen") {
		rcv, err := server.NewReceiver(cmd.String("redirect-uri"), r.logger)
		if err != nil {
			return err
		}
		receiver = rcv
	}

	return r.move(ctx, shared.NewProfileStore(root), provider, receiver, cmd.String("profile"))
}

func (r *Runner) move(ctx context.Context, store *shared.ProfileStore, provider auth.Provider, receiver auth.Receiver, profile string) error {
	logger := r.logger.With("profile", profile)

	config, err := store.Load(profile)
	if err != nil {
		return err
	}

	cachePath, err := store.TokenCachePath(profile)
	if err != nil {
		return err
	}

	authenticator := auth.New(auth.Opts{
		Provider:    provider,
		Cache:       auth.NewTokenCache(cachePath),
		In:          r.input,
		Out:         r.output,
		OpenBrowser: r.openBrowser,
		Receiver:    receiver,
		Logger:      logger,
	})

	client, err := authenticator.Authenticate(ctx)
	if err != nil {
		return err
	}
	logger.Debug("session ready", "state", authenticator.State())
	svc := r.newService(client)

	if !config.Configured() {
		logger.Info("no playlist configured, starting selection")

		id, err := tasks.NewResolver(svc, r.input, r.output, logger).Resolve(ctx)
		if err != nil {
			return err
		}

		config.SetPlaylist(id)
		if err := store.Save(profile, config); err != nil {
			return err
		}

		path, err := store.Path(profile)
		if err != nil {
			return err
		}
		logger.Debug("playlist saved", "path", path)
		if err := r.say(ui.Help("Playlist saved to " + path)); err != nil {
			return err
		}
	}

	outcome, item, err := tasks.NewMover(svc, logger).Run(ctx, *config.PlaylistID)
	if err != nil {
		return fmt.Errorf("failed to move track: %w", err)
	}

	logger.Debug("run finished", "outcome", outcome)

	switch outcome {
	case models.NothingPlaying:
		return r.say(ui.Warn("No track is playing"))
	case models.LocalTrack:
		return r.say(ui.Warn(fmt.Sprintf("%q is a local file, so it cannot be added to the playlist", item.Name)))
	default:
		return r.say(ui.OK("✓ Moved " + item.String()))
	}
}
