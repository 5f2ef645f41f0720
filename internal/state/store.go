// Package state holds the mutable display state of the profile screen.
//
// A Store is owned by a single execution context (the UI loop). It is not
// safe for concurrent use; every write goes through one of the transitions
// below so that late or out-of-order completions are resolved deterministically.
package state

import (
	"image"

	"github.com/naka-gawa/ghprofile/internal/domain"
)

// Generation tags a search. Completions carrying an older generation are stale.
type Generation uint64

// Snapshot is a read-only view of the screen state.
type Snapshot struct {
	Username   string
	Loading    bool
	Profile    *domain.Profile
	Avatar     image.Image
	Error      string
	Generation Generation
}

// Store is the explicit state container for the screen.
type Store struct {
	snap Snapshot
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return s.snap
}

// SetUsername records the text in the input field.
func (s *Store) SetUsername(username string) {
	s.snap.Username = username
}

// Reject records a validation failure. It invalidates any in-flight search
// and leaves the current profile on screen.
func (s *Store) Reject(msg string) {
	s.snap.Generation++
	s.snap.Loading = false
	s.snap.Error = msg
}

// Begin starts a new search and returns its generation.
func (s *Store) Begin() Generation {
	s.snap.Generation++
	s.snap.Loading = true
	s.snap.Error = ""
	return s.snap.Generation
}

// SetProfile replaces the profile. The previous avatar belongs to the previous
// profile, so it is cleared. Reports false if gen is stale.
func (s *Store) SetProfile(gen Generation, p *domain.Profile) bool {
	if gen != s.snap.Generation {
		return false
	}
	s.snap.Profile = p
	s.snap.Avatar = nil
	s.snap.Error = ""
	s.snap.Loading = false
	return true
}

// SetError records a failed search. The profile is left untouched.
// Reports false if gen is stale.
func (s *Store) SetError(gen Generation, msg string) bool {
	if gen != s.snap.Generation {
		return false
	}
	s.snap.Error = msg
	s.snap.Loading = false
	return true
}

// SetAvatar stores the decoded avatar. Reports false if gen is stale.
func (s *Store) SetAvatar(gen Generation, img image.Image) bool {
	if gen != s.snap.Generation {
		return false
	}
	s.snap.Avatar = img
	return true
}
