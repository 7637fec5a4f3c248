package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playmate/internal/auth"
	"github.com/desertthunder/playmate/internal/services"
	"github.com/desertthunder/playmate/internal/shared"
)

// ServiceFactory builds a [services.Service] from an authorized HTTP client.
type ServiceFactory func(client *http.Client) services.Service

// Runner holds all dependencies for the CLI action.
type Runner struct {
	input       *bufio.Reader
	output      io.Writer
	logger      *log.Logger
	lookupEnv   func(string) (string, bool)
	provider    auth.Provider
	openBrowser shared.BrowserOpener
	newService  ServiceFactory
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Provider is normally nil and built from the credential flags; tests supply a fake.
type RunnerOpts struct {
	Input       io.Reader
	Output      io.Writer
	Logger      *log.Logger
	LookupEnv   func(string) (string, bool)
	Provider    auth.Provider
	OpenBrowser shared.BrowserOpener
	NewService  ServiceFactory
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}
	if opts.OpenBrowser == nil {
		opts.OpenBrowser = shared.OpenBrowser
	}
	if opts.NewService == nil {
		opts.NewService = func(client *http.Client) services.Service {
			return services.NewSpotifyService(services.SpotifyOpts{HTTPClient: client})
		}
	}

	return &Runner{
		input:       bufio.NewReader(opts.Input),
		output:      opts.Output,
		logger:      opts.Logger,
		lookupEnv:   opts.LookupEnv,
		provider:    opts.Provider,
		openBrowser: opts.OpenBrowser,
		newService:  opts.NewService,
	}
}

// say writes one line to the user. Only the menu and prompts bypass it.
func (r *Runner) say(line string) error {
	if _, err := fmt.Fprintln(r.output, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
