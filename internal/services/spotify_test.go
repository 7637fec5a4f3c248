package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/playmate/internal/shared"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*SpotifyService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	srv := NewSpotifyService(SpotifyOpts{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/",
		PageRate:   1000,
	})
	return srv, server
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func TestSpotifyService(t *testing.T) {
	t.Run("Name", func(t *testing.T) {
		if NewSpotifyService(SpotifyOpts{}).Name() != "Spotify" {
			t.Error("expected service name 'Spotify'")
		}
	})

	t.Run("Playlists", func(t *testing.T) {
		t.Run("drains every page", func(t *testing.T) {
			var serverURL string
			requests := 0
			srv, server := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				requests++
				if r.URL.Path != "/me/playlists" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}

				if r.URL.Query().Get("offset") == "2" {
					writeJSON(t, w, http.StatusOK, map[string]any{
						"items": []map[string]any{
							{"id": "p3", "name": "Gym", "snapshot_id": "s3"},
						},
						"total":  3,
						"offset": 2,
						"next":   nil,
					})
					return
				}

				writeJSON(t, w, http.StatusOK, map[string]any{
					"items": []map[string]any{
						{"id": "p1", "name": "Road Trip", "snapshot_id": "s1", "owner": map[string]any{"display_name": "me"}},
						{"id": "p2", "name": "Chill", "snapshot_id": "s2"},
					},
					"total":  3,
					"offset": 0,
					"next":   serverURL + "/me/playlists?offset=2&limit=2",
				})
			})
			serverURL = server.URL

			playlists, err := srv.Playlists(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if requests != 2 {
				t.Errorf("expected 2 page requests, got %d", requests)
			}
			if len(playlists) != 3 {
				t.Fatalf("expected 3 playlists, got %d", len(playlists))
			}

			for i, want := range []string{"Road Trip", "Chill", "Gym"} {
				if playlists[i].Name != want {
					t.Errorf("playlist %d: expected %s, got %s", i, want, playlists[i].Name)
				}
				if playlists[i].Err != nil {
					t.Errorf("playlist %d: unexpected entry error %v", i, playlists[i].Err)
				}
			}
			if playlists[0].ID != "p1" || playlists[0].Owner != "me" || playlists[0].SnapshotID != "s1" {
				t.Errorf("unexpected first playlist %+v", playlists[0])
			}
		})

		t.Run("entry without id is marked unavailable", func(t *testing.T) {
			srv, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]any{
					"items": []map[string]any{{"name": "Broken"}},
					"total": 1,
				})
			})

			playlists, err := srv.Playlists(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(playlists) != 1 || !errors.Is(playlists[0].Err, shared.ErrPlaylistUnavailable) {
				t.Errorf("expected unavailable entry, got %+v", playlists)
			}
		})

		t.Run("api error", func(t *testing.T) {
			srv, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusBadGateway, map[string]any{
					"error": map[string]any{"status": 502, "message": "bad gateway"},
				})
			})

			_, err := srv.Playlists(context.Background())
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("CurrentlyPlaying", func(t *testing.T) {
		t.Run("catalog track", func(t *testing.T) {
			srv, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/me/player/currently-playing" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				writeJSON(t, w, http.StatusOK, map[string]any{
					"is_playing": true,
					"item": map[string]any{
						"id":      "T1",
						"name":    "Song",
						"artists": []map[string]any{{"name": "Band"}, {"name": "Guest"}},
					},
				})
			})

			item, err := srv.CurrentlyPlaying(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if item == nil {
				t.Fatal("expected an item")
			}
			if item.ID != "T1" || item.Local() || !item.Playing {
				t.Errorf("unexpected item %+v", item)
			}
			if item.String() != "Song - Band, Guest" {
				t.Errorf("unexpected display string %q", item.String())
			}
		})

		t.Run("local file has no id", func(t *testing.T) {
			srv, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]any{
					"is_playing": true,
					"item":       map[string]any{"id": nil, "name": "home recording.mp3"},
				})
			})

			item, err := srv.CurrentlyPlaying(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if item == nil || !item.Local() {
				t.Errorf("expected local item, got %+v", item)
			}
		})

		t.Run("nothing playing", func(t *testing.T) {
			srv, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, http.StatusOK, map[string]any{"is_playing": false, "item": nil})
			})

			item, err := srv.CurrentlyPlaying(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if item != nil {
				t.Errorf("expected nil item, got %+v", item)
			}
		})
	})

	t.Run("RemoveAll and Add", func(t *testing.T) {
		var calls []string
		srv, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/playlists/pl-1/") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			body, _ := io.ReadAll(r.Body)
			if !strings.Contains(string(body), "spotify:track:T1") {
				t.Errorf("expected track uri in body, got %s", body)
			}
			calls = append(calls, r.Method)

			status := http.StatusOK
			if r.Method == http.MethodPost {
				status = http.StatusCreated
			}
			writeJSON(t, w, status, map[string]any{"snapshot_id": fmt.Sprintf("snap-%d", len(calls))})
		})

		snap, err := srv.RemoveAll(context.Background(), "pl-1", "T1")
		if err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		if snap != "snap-1" {
			t.Errorf("expected snap-1, got %s", snap)
		}

		snap, err = srv.Add(context.Background(), "pl-1", "T1")
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if snap != "snap-2" {
			t.Errorf("expected snap-2, got %s", snap)
		}

		if strings.Join(calls, ",") != "DELETE,POST" {
			t.Errorf("expected DELETE then POST, got %v", calls)
		}
	})

	t.Run("Add error", func(t *testing.T) {
		srv, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusForbidden, map[string]any{
				"error": map[string]any{"status": 403, "message": "forbidden"},
			})
		})

		if _, err := srv.Add(context.Background(), "pl-1", "T1"); !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})
}
