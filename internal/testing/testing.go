// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/playmate/internal/models"
	"golang.org/x/oauth2"
)

// MockService is a test double for [services.Service] that records mutating calls.
type MockService struct {
	PlaylistList []models.PlaylistCandidate
	PlaylistsErr error
	Playing      *models.PlayingItem
	PlayingErr   error
	RemoveErr    error
	AddErr       error

	// Contents simulates playlist contents keyed by playlist id.
	Contents map[string][]string

	PlaylistCalls int
	Calls         []string
}

func (m *MockService) Playlists(ctx context.Context) ([]models.PlaylistCandidate, error) {
	m.PlaylistCalls++
	return m.PlaylistList, m.PlaylistsErr
}

func (m *MockService) CurrentlyPlaying(ctx context.Context) (*models.PlayingItem, error) {
	return m.Playing, m.PlayingErr
}

func (m *MockService) RemoveAll(ctx context.Context, playlistID, trackID string) (string, error) {
	m.Calls = append(m.Calls, "remove:"+playlistID+":"+trackID)
	if m.RemoveErr != nil {
		return "", m.RemoveErr
	}
	if m.Contents != nil {
		var kept []string
		for _, id := range m.Contents[playlistID] {
			if id != trackID {
				kept = append(kept, id)
			}
		}
		m.Contents[playlistID] = kept
	}
	return "snap-remove", nil
}

func (m *MockService) Add(ctx context.Context, playlistID, trackID string) (string, error) {
	m.Calls = append(m.Calls, "add:"+playlistID+":"+trackID)
	if m.AddErr != nil {
		return "", m.AddErr
	}
	if m.Contents != nil {
		m.Contents[playlistID] = append(m.Contents[playlistID], trackID)
	}
	return "snap-add", nil
}

func (m *MockService) Name() string { return "mock" }

// MockProvider is a test double for auth.Provider.
type MockProvider struct {
	URL          string
	Exchanged    *oauth2.Token
	ExchangeErr  error
	Refreshed    *oauth2.Token
	RefreshErr   error
	States       []string
	RedirectURLs []string
	RefreshCalls int
}

func (m *MockProvider) AuthURL(state string, opts ...oauth2.AuthCodeOption) string {
	m.States = append(m.States, state)
	if m.URL == "" {
		return "https://accounts.example.com/authorize?state=" + state
	}
	return m.URL
}

func (m *MockProvider) Token(ctx context.Context, state string, r *http.Request, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	m.RedirectURLs = append(m.RedirectURLs, r.URL.String())
	if m.ExchangeErr != nil {
		return nil, m.ExchangeErr
	}
	return m.Exchanged, nil
}

func (m *MockProvider) RefreshToken(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	m.RefreshCalls++
	if m.RefreshErr != nil {
		return nil, m.RefreshErr
	}
	return m.Refreshed, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("File should not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
