package state

import (
	"image"
	"testing"

	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStore_Transitions(t *testing.T) {
	s := NewStore()
	assert.Equal(t, Snapshot{}, s.Snapshot())

	s.SetUsername("octocat")
	gen := s.Begin()
	snap := s.Snapshot()
	assert.Equal(t, "octocat", snap.Username)
	assert.True(t, snap.Loading)
	assert.Equal(t, gen, snap.Generation)

	p := &domain.Profile{Login: "octocat"}
	assert.True(t, s.SetProfile(gen, p))
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	assert.True(t, s.SetAvatar(gen, img))

	snap = s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Same(t, p, snap.Profile)
	assert.Equal(t, img, snap.Avatar)
	assert.Empty(t, snap.Error)
}

func TestStore_ErrorKeepsProfile(t *testing.T) {
	s := NewStore()
	p := &domain.Profile{Login: "octocat"}
	s.SetProfile(s.Begin(), p)

	gen := s.Begin()
	assert.True(t, s.SetError(gen, "Error decoding response"))

	snap := s.Snapshot()
	assert.Same(t, p, snap.Profile)
	assert.Equal(t, "Error decoding response", snap.Error)
	assert.False(t, snap.Loading)

	// A new search clears the error while it loads.
	s.Begin()
	assert.Empty(t, s.Snapshot().Error)
}

func TestStore_NewProfileClearsAvatar(t *testing.T) {
	s := NewStore()
	gen := s.Begin()
	s.SetProfile(gen, &domain.Profile{Login: "a"})
	s.SetAvatar(gen, image.NewGray(image.Rect(0, 0, 1, 1)))

	gen = s.Begin()
	s.SetProfile(gen, &domain.Profile{Login: "b"})
	assert.Nil(t, s.Snapshot().Avatar)
}

func TestStore_StaleCompletionsIgnored(t *testing.T) {
	s := NewStore()
	first := s.Begin()
	second := s.Begin()

	assert.False(t, s.SetProfile(first, &domain.Profile{Login: "first"}))
	assert.False(t, s.SetError(first, "Error: boom"))
	assert.False(t, s.SetAvatar(first, image.NewGray(image.Rect(0, 0, 1, 1))))

	snap := s.Snapshot()
	assert.Nil(t, snap.Profile)
	assert.Nil(t, snap.Avatar)
	assert.Empty(t, snap.Error)
	assert.True(t, snap.Loading)

	assert.True(t, s.SetProfile(second, &domain.Profile{Login: "second"}))
	assert.Equal(t, "second", s.Snapshot().Profile.Login)
}

func TestStore_RejectInvalidatesInFlight(t *testing.T) {
	s := NewStore()
	gen := s.Begin()
	s.Reject("Please enter a username")

	assert.False(t, s.SetProfile(gen, &domain.Profile{Login: "late"}))
	snap := s.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Profile)
	assert.Equal(t, "Please enter a username", snap.Error)
}
