// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"
	"image"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/naka-gawa/ghprofile/internal/gateway"
	"github.com/naka-gawa/ghprofile/internal/state"
)

// Messages shown on screen.
const (
	MsgEmptyUsername = "Please enter a username"
	MsgDecodeFailed  = "Error decoding response"
)

// Dispatcher runs work off the UI context and delivers the completion that
// work returns back onto it.
type Dispatcher interface {
	Async(work func() func())
}

// Lookup is the use case behind the search action.
// It orchestrates the profile fetch, the avatar fetch, and the state transitions
// they cause. Search and every completion run on the dispatcher's UI context.
type Lookup struct {
	profiles gateway.ProfileFetcher
	avatars  gateway.AvatarFetcher
	store    *state.Store
	dispatch Dispatcher
	logger   *log.Logger
}

// NewLookup creates a new Lookup instance.
func NewLookup(profiles gateway.ProfileFetcher, avatars gateway.AvatarFetcher, store *state.Store, dispatch Dispatcher, logger *log.Logger) *Lookup {
	return &Lookup{
		profiles: profiles,
		avatars:  avatars,
		store:    store,
		dispatch: dispatch,
		logger:   logger,
	}
}

// Search validates username and, if it is not blank, starts a profile lookup.
// A blank username is rejected without issuing any request.
func (l *Lookup) Search(ctx context.Context, username string) {
	username = strings.TrimSpace(username)
	l.store.SetUsername(username)
	if username == "" {
		l.store.Reject(MsgEmptyUsername)
		return
	}

	gen := l.store.Begin()
	reqID := uuid.NewString()
	l.logger.Printf("[%s] Usecase: searching %q (generation %d)\n", reqID, username, gen)

	l.dispatch.Async(func() func() {
		profile, err := l.profiles.FetchProfile(ctx, username)
		return func() {
			l.completeProfile(ctx, reqID, gen, profile, err)
		}
	})
}

func (l *Lookup) completeProfile(ctx context.Context, reqID string, gen state.Generation, profile *domain.Profile, err error) {
	if err != nil {
		l.logger.Printf("[%s] Usecase: profile fetch failed: %v\n", reqID, err)
		if !l.store.SetError(gen, ErrorMessage(err)) {
			l.logger.Printf("[%s] Usecase: discarding stale error\n", reqID)
		}
		return
	}
	if !l.store.SetProfile(gen, profile) {
		l.logger.Printf("[%s] Usecase: discarding stale profile\n", reqID)
		return
	}
	if profile.AvatarURL == "" {
		return
	}

	avatarURL := profile.AvatarURL
	l.dispatch.Async(func() func() {
		img, err := l.avatars.FetchAvatar(ctx, avatarURL)
		return func() {
			l.completeAvatar(reqID, gen, img, err)
		}
	})
}

// Avatar failures never reach the screen.
func (l *Lookup) completeAvatar(reqID string, gen state.Generation, img image.Image, err error) {
	if err != nil {
		l.logger.Printf("[%s] Usecase: avatar fetch failed: %v\n", reqID, err)
		return
	}
	if img == nil {
		return
	}
	if !l.store.SetAvatar(gen, img) {
		l.logger.Printf("[%s] Usecase: discarding stale avatar\n", reqID)
	}
}

// ErrorMessage converts a profile fetch error into the text shown on screen.
func ErrorMessage(err error) string {
	if errors.Is(err, gateway.ErrDecode) {
		return MsgDecodeFailed
	}
	return "Error: " + err.Error()
}
