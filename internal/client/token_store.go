package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TokenStore persists the session token between runs.
// Logout is client-side: clearing the store is all it takes.
type TokenStore interface {
	// Load returns the stored token, or "" when none is stored.
	Load() (string, error)

	// Save replaces the stored token.
	Save(token string) error

	// Clear removes the stored token.
	Clear() error
}

// fileTokenStore keeps the token in a small JSON file.
type fileTokenStore struct {
	path string
}

type tokenFile struct {
	Token string `json:"token"`
}

// NewFileTokenStore creates a store at the given path.
// When path is empty, a default under the user config dir is used.
func NewFileTokenStore(path string) (*fileTokenStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "recruit", "session.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create token dir: %w", err)
	}
	return &fileTokenStore{path: path}, nil
}

// Load returns the stored token, or "" when the file does not exist.
func (s *fileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return "", fmt.Errorf("corrupt token file: %w", err)
	}
	return f.Token, nil
}

// Save writes the token with owner-only permissions.
func (s *fileTokenStore) Save(token string) error {
	data, err := json.Marshal(tokenFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the token file. A missing file is not an error.
func (s *fileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
