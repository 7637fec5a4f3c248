package shared

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the directory created under the application data root.
	AppName = "playmate"
	// DefaultProfile is used when no --profile flag is given.
	DefaultProfile = "default"
	// DataDirEnv names the environment variable holding the application data root.
	DataDirEnv = "APPDATA"

	configFile     = "config.toml"
	tokenCacheFile = "token_cache.json"
)

// ProfileConfig is the persisted state of a single profile.
//
// All fields are optional. A nil PlaylistID means the profile has not been configured yet.
// A nil PlaylistTrackCache is omitted from the file; an empty one is written as [].
type ProfileConfig struct {
	PlaylistID         *string  `toml:"playlist_id,omitempty"`
	PlaylistSnapshotID *string  `toml:"playlist_snapshot_id,omitempty"`
	PlaylistTrackCache []string `toml:"playlist_track_cache"`
}

// Configured reports whether a target playlist has been resolved.
func (c *ProfileConfig) Configured() bool {
	return c != nil && c.PlaylistID != nil && *c.PlaylistID != ""
}

// SetPlaylist records the resolved target playlist, leaving the other fields untouched.
func (c *ProfileConfig) SetPlaylist(id string) {
	c.PlaylistID = &id
}

// ProfileStore reads and writes per-profile configuration under a root directory.
type ProfileStore struct {
	root string
}

// NewProfileStore creates a [ProfileStore] rooted at the application data directory.
func NewProfileStore(root string) *ProfileStore {
	return &ProfileStore{root: root}
}

// DataDir resolves the application data root using lookup, usually [os.LookupEnv].
func DataDir(lookup func(string) (string, bool)) (string, error) {
	dir, ok := lookup(DataDirEnv)
	if !ok || strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("%w: %s is unset", ErrMissingDataDir, DataDirEnv)
	}
	return dir, nil
}

// ProfileDir returns <root>/playmate/<profile>.
func (s *ProfileStore) ProfileDir(profile string) (string, error) {
	if s.root == "" {
		return "", ErrMissingDataDir
	}
	if err := validateProfile(profile); err != nil {
		return "", err
	}
	return filepath.Join(s.root, AppName, profile), nil
}

// Path returns the config.toml location for profile.
func (s *ProfileStore) Path(profile string) (string, error) {
	dir, err := s.ProfileDir(profile)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// TokenCachePath returns the token cache location for profile.
func (s *ProfileStore) TokenCachePath(profile string) (string, error) {
	dir, err := s.ProfileDir(profile)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenCacheFile), nil
}

// Load reads the profile's config, creating an empty file and its parent directories when absent.
func (s *ProfileStore) Load(profile string) (*ProfileConfig, error) {
	path, err := s.Path(profile)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("%w: failed to create config directory: %v", ErrConfigIO, err)
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create config file: %v", ErrConfigIO, err)
		}
		f.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrConfigIO, err)
	}

	var config ProfileConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return &config, nil
}

// Save serializes the full record and overwrites the profile's config file.
//
// The write is not atomic.
func (s *ProfileStore) Save(profile string, config *ProfileConfig) error {
	path, err := s.Path(profile)
	if err != nil {
		return err
	}
	if config == nil {
		config = &ProfileConfig{}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("%w: failed to encode config: %v", ErrInvalidConfig, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create config directory: %v", ErrConfigIO, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: failed to write config file: %v", ErrConfigIO, err)
	}
	return nil
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return fmt.Errorf("%w: empty", ErrInvalidProfile)
	case profile == "." || profile == "..":
		return fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProfile, profile)
	}
	return nil
}
