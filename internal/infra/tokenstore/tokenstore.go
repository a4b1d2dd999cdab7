package token_store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/benhagg/cineniche/internal/model"
)

// Store persists the session between runs and serves the current token to
// the request pipeline. The in-memory copy is authoritative; the file is a
// best-effort mirror under the user's home dir.
type Store struct {
	path string

	mu      sync.RWMutex
	session *model.Session
}

func New(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

// Token implements the request pipeline's TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

func (s *Store) Session() *model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

func (s *Store) Save(session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear is idempotent: clearing an absent session is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil

	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return
	}
	if session.Token == "" {
		return
	}
	s.session = &session
}
