package shared

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestErrorKind(t *testing.T) {
	tc := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindUnknown},
		{name: "plain error", err: errors.New("boom"), want: KindUnknown},
		{name: "missing data dir", err: ErrMissingDataDir, want: KindEnvironment},
		{name: "wrapped config io", err: fmt.Errorf("%w: disk full", ErrConfigIO), want: KindEnvironment},
		{name: "malformed config", err: fmt.Errorf("load: %w", ErrInvalidConfig), want: KindPersistedState},
		{name: "malformed token cache", err: ErrInvalidTokenCache, want: KindPersistedState},
		{name: "auth", err: ErrAuthFailed, want: KindAuth},
		{name: "api", err: fmt.Errorf("%w: status 502", ErrAPIRequest), want: KindAPI},
		{name: "input", err: ErrInvalidInput, want: KindInput},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBrowserCommand(t *testing.T) {
	url := "https://accounts.spotify.com/authorize?a=1&b=2"

	for _, rt := range []string{"darwin", "linux", "windows"} {
		t.Run(rt, func(t *testing.T) {
			cmd, err := browserCommand(rt, url)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if cmd.Args[len(cmd.Args)-1] != url {
				t.Errorf("expected URL as last argument, got %v", cmd.Args)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		if _, err := browserCommand("plan9", url); err == nil {
			t.Error("expected error for unsupported platform")
		}
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestLogger(t *testing.T) {
	t.Run("info by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)

		logger.Debug("hidden")
		logger.Info("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("debug entry should be filtered, got %q", out)
		}
		if !strings.Contains(out, "shown") || !strings.Contains(out, AppName) {
			t.Errorf("expected prefixed info entry, got %q", out)
		}
	})

	t.Run("Verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		Verbose(logger)

		if logger.GetLevel() != log.DebugLevel {
			t.Errorf("expected debug level, got %v", logger.GetLevel())
		}
		logger.Debug("details")
		if !strings.Contains(buf.String(), "details") {
			t.Errorf("expected debug entry, got %q", buf.String())
		}
	})
}
