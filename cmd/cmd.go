// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/playmate/internal/auth"
	"github.com/desertthunder/playmate/internal/shared"
	"github.com/urfave/cli/v3"
)

// command builds the root command. playmate has no subcommands.
func (r *Runner) command() *cli.Command {
	return &cli.Command{
		Name:    "playmate",
		Usage:   "Move the currently playing Spotify track to the end of a playlist",
		Version: "0.1.0",
		Writer:  r.output,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Configuration profile to use",
				Value:   shared.DefaultProfile,
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "Application data directory (default: $" + shared.DataDirEnv + ")",
			},
			&cli.StringFlag{
				Name:    "client-id",
				Usage:   "Spotify application client ID",
				Sources: cli.EnvVars("SPOTIFY_ID"),
			},
			&cli.StringFlag{
				Name:    "client-secret",
				Usage:   "Spotify application client secret",
				Sources: cli.EnvVars("SPOTIFY_SECRET"),
			},
			&cli.StringFlag{
				Name:  "redirect-uri",
				Usage: "OAuth redirect URI registered for the Spotify application",
				Value: auth.DefaultRedirectURI,
			},
			&cli.BoolFlag{
				Name:  "listen",
				Usage: "Capture the authorization redirect on a local listener instead of pasting it",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Action: r.Move,
	}
}
