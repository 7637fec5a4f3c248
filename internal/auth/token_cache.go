package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/playmate/internal/shared"
	"golang.org/x/oauth2"
)

// TokenCache persists an [oauth2.Token] as JSON on disk.
type TokenCache struct {
	path string
}

// NewTokenCache builds a TokenCache at path.
func NewTokenCache(path string) *TokenCache {
	return &TokenCache{path: path}
}

// Path returns the cache file location.
func (c *TokenCache) Path() string {
	return c.path
}

// Load reads the cached token. A missing file resolves to a nil token and no error.
func (c *TokenCache) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read token cache: %v", shared.ErrConfigIO, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrInvalidTokenCache, c.path, err)
	}
	if token.AccessToken == "" && token.RefreshToken == "" {
		return nil, fmt.Errorf("%w: %s holds no credential", shared.ErrInvalidTokenCache, c.path)
	}
	return &token, nil
}

// Save writes the token with owner-only permissions.
func (c *TokenCache) Save(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create token cache directory: %v", shared.ErrConfigIO, err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("%w: failed to write token cache: %v", shared.ErrConfigIO, err)
	}
	return nil
}
