package gateway

import (
	"fmt"

	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/ghprofile/internal/domain"
)

// toProfile maps the decoded API user onto the domain Profile.
// name and bio are optional; every other field must be present.
func toProfile(user *github.User) (*domain.Profile, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: empty body", ErrDecode)
	}
	required := []struct {
		key     string
		missing bool
	}{
		{"login", user.Login == nil},
		{"public_repos", user.PublicRepos == nil},
		{"followers", user.Followers == nil},
		{"following", user.Following == nil},
		{"html_url", user.HTMLURL == nil},
		{"avatar_url", user.AvatarURL == nil},
	}
	for _, field := range required {
		if field.missing {
			return nil, fmt.Errorf("%w: missing key %q", ErrDecode, field.key)
		}
	}
	for key, n := range map[string]int{
		"public_repos": user.GetPublicRepos(),
		"followers":    user.GetFollowers(),
		"following":    user.GetFollowing(),
	} {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative %q", ErrDecode, key)
		}
	}
	return &domain.Profile{
		Login:       user.GetLogin(),
		Name:        user.Name,
		Bio:         user.Bio,
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		HTMLURL:     user.GetHTMLURL(),
		AvatarURL:   user.GetAvatarURL(),
	}, nil
}
