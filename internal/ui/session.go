package ui

import (
	"bufio"
	"context"
	"io"
	"log"
	"strings"

	"github.com/naka-gawa/ghprofile/internal/state"
	"golang.org/x/sync/errgroup"
)

// Session commands. Any other line is submitted as a username.
const (
	CmdOpen = ":open"
	CmdQuit = ":quit"
)

// Searcher starts a profile search. It is called on the loop.
type Searcher interface {
	Search(ctx context.Context, username string)
}

// Session is the interactive screen: it feeds input lines to the loop and
// redraws after every state change.
type Session struct {
	loop   *Loop
	store  *state.Store
	search Searcher
	opener Opener
	logger *log.Logger
}

// NewSession creates a new Session instance.
func NewSession(loop *Loop, store *state.Store, search Searcher, opener Opener, logger *log.Logger) *Session {
	return &Session{
		loop:   loop,
		store:  store,
		search: search,
		opener: opener,
		logger: logger,
	}
}

// Run drives the session until in is exhausted, CmdQuit is read, or ctx is cancelled.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reads from in cannot be interrupted, so the scanner lives outside the group.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			s.logger.Printf("Session: reading input: %v\n", err)
		}
	}()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return s.loop.Run(egCtx)
	})

	eg.Go(func() error {
		defer cancel()
		s.loop.Post(nil) // first draw
		for {
			select {
			case <-egCtx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					// Let searches submitted before EOF finish and draw.
					s.drain(egCtx)
					return nil
				}
				if !s.handle(egCtx, line) {
					return nil
				}
			}
		}
	})

	return eg.Wait()
}

// handle posts the action for line and reports whether the session continues.
func (s *Session) handle(ctx context.Context, line string) bool {
	switch strings.TrimSpace(line) {
	case CmdQuit:
		return false
	case CmdOpen:
		s.loop.Post(s.openProfile)
	default:
		s.loop.Post(func() {
			s.search.Search(ctx, line)
		})
	}
	return true
}

func (s *Session) drain(ctx context.Context) {
	idle := make(chan struct{})
	go func() {
		s.loop.Wait()
		close(idle)
	}()
	select {
	case <-idle:
	case <-ctx.Done():
	}
}

func (s *Session) openProfile() {
	profile := s.store.Snapshot().Profile
	if profile == nil {
		s.logger.Println("Session: no profile to open")
		return
	}
	if err := s.opener.Open(profile.HTMLURL); err != nil {
		s.logger.Printf("Session: %v\n", err)
	}
}

// Redraw returns a loop hook that renders the current screen to w.
func Redraw(w io.Writer, store *state.Store, avatarWidth int, logger *log.Logger) func() {
	return func() {
		io.WriteString(w, "\n")
		if err := Render(w, store.Snapshot(), avatarWidth); err != nil {
			logger.Println(err)
		}
	}
}
