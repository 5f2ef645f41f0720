package ui

import (
	"fmt"
	"io"
	"text/template"

	"github.com/naka-gawa/ghprofile/internal/state"
)

const screenTemplate = `GitHub Profile Viewer
=====================
{{if .Avatar}}{{.Avatar}}{{end -}}
Enter GitHub username: {{.Username}}
[ Search ]
{{if .Loading}}Loading...
{{end}}{{if .Error}}{{.Error}}
{{end}}{{with .Profile}}
{{if .Name}}Name: {{.Name}}
{{end}}Username: {{.Login}}
{{if .Bio}}Bio: {{.Bio}}
{{end}}Public Repos: {{.PublicRepos}}
Followers: {{.Followers}}
Following: {{.Following}}
Profile: {{.HTMLURL}}
{{end}}`

var screenTmpl = template.Must(template.New("screen").Parse(screenTemplate))

type profileViewModel struct {
	Name        string
	Login       string
	Bio         string
	PublicRepos int
	Followers   int
	Following   int
	HTMLURL     string
}

type screenViewModel struct {
	Avatar   string
	Username string
	Loading  bool
	Error    string
	Profile  *profileViewModel
}

// Render writes the screen for snap to w. avatarWidth is the avatar art width
// in columns; zero hides the avatar.
func Render(w io.Writer, snap state.Snapshot, avatarWidth int) error {
	vm := screenViewModel{
		Avatar:   AvatarArt(snap.Avatar, avatarWidth),
		Username: snap.Username,
		Loading:  snap.Loading,
		Error:    snap.Error,
	}
	if p := snap.Profile; p != nil {
		vm.Profile = &profileViewModel{
			Name:        p.GetName(),
			Login:       p.Login,
			Bio:         p.GetBio(),
			PublicRepos: p.PublicRepos,
			Followers:   p.Followers,
			Following:   p.Following,
			HTMLURL:     p.HTMLURL,
		}
	}
	if err := screenTmpl.Execute(w, vm); err != nil {
		return fmt.Errorf("failed to render screen: %w", err)
	}
	return nil
}
