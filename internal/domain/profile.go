// Package domain contains the core data structures and domain logic for the application.
package domain

// Profile holds the public information of a single GitHub user.
// It is the core domain entity of this application and is never mutated
// after construction; a new search replaces it wholesale.
type Profile struct {
	Login       string  `json:"login" yaml:"login"`
	Name        *string `json:"name" yaml:"name"`
	Bio         *string `json:"bio" yaml:"bio"`
	PublicRepos int     `json:"public_repos" yaml:"public_repos"`
	Followers   int     `json:"followers" yaml:"followers"`
	Following   int     `json:"following" yaml:"following"`
	HTMLURL     string  `json:"html_url" yaml:"html_url"`
	AvatarURL   string  `json:"avatar_url" yaml:"avatar_url"`
}

// GetName returns the display name, or "" if the user has not set one.
func (p *Profile) GetName() string {
	if p == nil || p.Name == nil {
		return ""
	}
	return *p.Name
}

// GetBio returns the bio, or "" if the user has not set one.
func (p *Profile) GetBio() string {
	if p == nil || p.Bio == nil {
		return ""
	}
	return *p.Bio
}
