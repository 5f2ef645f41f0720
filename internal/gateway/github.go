// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	// Avatars are served as PNG or JPEG; GIF shows up for older accounts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/ghprofile/internal/domain"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com/"

const userAgent = "ghprofile"

// ErrDecode is returned when a profile response cannot be decoded into a Profile.
var ErrDecode = errors.New("decode profile response")

// ProfileFetcher looks up a user profile by username.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, username string) (*domain.Profile, error)
}

// AvatarFetcher downloads and decodes an avatar image.
type AvatarFetcher interface {
	FetchAvatar(ctx context.Context, avatarURL string) (image.Image, error)
}

// GitHubGateway is the concrete implementation of ProfileFetcher and AvatarFetcher.
type GitHubGateway struct {
	restClient *github.Client
	logger     *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty baseURL selects DefaultBaseURL. Requests are unauthenticated.
func NewGitHubGateway(baseURL string, logger *log.Logger) (*GitHubGateway, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	restClient := github.NewClient(nil)
	restClient.BaseURL = u
	restClient.UserAgent = userAgent
	return &GitHubGateway{
		restClient: restClient,
		logger:     logger,
	}, nil
}

// FetchProfile fetches users/{username}. Transport and HTTP status failures are
// returned as-is; malformed or incomplete bodies are wrapped in ErrDecode.
func (g *GitHubGateway) FetchProfile(ctx context.Context, username string) (*domain.Profile, error) {
	if username == "" {
		// Users.Get("") would return the authenticated user instead.
		return nil, errors.New("username is empty")
	}
	g.logger.Printf("Fetching profile for %q...\n", username)
	user, _, err := g.restClient.Users.Get(ctx, url.PathEscape(username))
	if err != nil {
		if isDecodeError(err) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	profile, err := toProfile(user)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("Completed fetching profile for %q.\n", username)
	return profile, nil
}

// FetchAvatar downloads avatarURL and decodes it as an image.
// An empty URL is a no-op and returns a nil image without error.
func (g *GitHubGateway) FetchAvatar(ctx context.Context, avatarURL string) (image.Image, error) {
	if avatarURL == "" {
		return nil, nil
	}
	g.logger.Printf("Fetching avatar %s...\n", avatarURL)
	req, err := g.restClient.NewRequest(http.MethodGet, avatarURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build avatar request: %w", err)
	}
	req.Header.Set("Accept", "image/*")

	var body bytes.Buffer
	if _, err := g.restClient.Do(ctx, req, &body); err != nil {
		return nil, fmt.Errorf("failed to download avatar: %w", err)
	}
	img, format, err := image.Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avatar: %w", err)
	}
	g.logger.Printf("Completed fetching avatar (%s, %dx%d).\n", format, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// isDecodeError reports whether err came from decoding the response body
// rather than from the transport or the HTTP status.
func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
