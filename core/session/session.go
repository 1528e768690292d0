// Package session holds the client-side login state: the bearer token, the
// user summary echoed at login and an optional cached profile image. The
// browser front-end kept these as loose localStorage keys read all over the
// place; here they live behind a single store with an explicit
// login/logout lifecycle, persisted as one JSON file.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core/user"
)

type data struct {
	Token        string     `json:"token,omitempty"`
	User         *user.User `json:"user,omitempty"`
	ProfileImage string     `json:"profile_image,omitempty"` // data URL
}

// Store is a file-backed session. Writes are last-write-wins on the file;
// a single process is assumed, there is no cross-process locking.
type Store struct {
	path string

	mu   sync.RWMutex
	data data
}

// Open loads the session at path. A missing file is an empty, logged-out session.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "reading session file")
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// a corrupt session file is treated as logged out, not fatal
		s.data = data{}
	}
	return s, nil
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

func (s *Store) User() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.User == nil {
		return nil
	}
	usr := *s.data.User
	return &usr
}

func (s *Store) ProfileImage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.ProfileImage
}

// Identity decodes the stored token's claims. Nil when logged out or the
// token is malformed.
func (s *Store) Identity() *user.Identity {
	return user.DecodeIdentity(s.Token())
}

func (s *Store) IsAuthenticated() bool { return s.Token() != "" }

// SetLogin stores the token and user echo from a successful login.
func (s *Store) SetLogin(token string, usr user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	s.data.User = &usr
	return s.save()
}

func (s *Store) SetProfileImage(dataURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.ProfileImage = dataURL
	return s.save()
}

// Clear logs out: the in-memory state is zeroed and the file removed.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "writing session file")
	}
	return nil
}
