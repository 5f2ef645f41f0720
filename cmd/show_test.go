package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naka-gawa/ghprofile/internal/config"
	"github.com/naka-gawa/ghprofile/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newOctocatServer(t *testing.T) *httptest.Server {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			fmt.Fprintf(w, `{"login":"octocat","name":"The Octocat","bio":null,"public_repos":8,"followers":9999,"following":9,"html_url":"https://github.com/octocat","avatar_url":"%s/avatar.png"}`, server.URL)
		case "/users/broken":
			fmt.Fprint(w, `{"login":`)
		case "/avatar.png":
			assert.NoError(t, png.Encode(w, image.NewGray(image.Rect(0, 0, 8, 8))))
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		}
	}))
	return server
}

// executeShow runs the root command with args and returns stdout, stderr and the error.
func executeShow(t *testing.T, args ...string) (string, string, error) {
	t.Setenv(config.EnvAvatarWidth, "4")
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestShow(t *testing.T) {
	server := newOctocatServer(t)
	defer server.Close()

	t.Run("text", func(t *testing.T) {
		out, _, err := executeShow(t, "show", "octocat", "--api-url", server.URL, "-o", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "Username: octocat")
		assert.Contains(t, out, "Followers: 9999")
		assert.Contains(t, out, "Profile: https://github.com/octocat")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := executeShow(t, "show", "octocat", "--api-url", server.URL, "-o", "json")
		require.NoError(t, err)
		var p domain.Profile
		require.NoError(t, json.Unmarshal([]byte(out), &p))
		assert.Equal(t, "octocat", p.Login)
		assert.Equal(t, "The Octocat", p.GetName())
		assert.Nil(t, p.Bio)
		assert.Equal(t, 8, p.PublicRepos)
		assert.Contains(t, out, `"public_repos": 8`)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := executeShow(t, "show", "octocat", "--api-url", server.URL, "-o", "yaml")
		require.NoError(t, err)
		var p domain.Profile
		require.NoError(t, yaml.Unmarshal([]byte(out), &p))
		assert.Equal(t, 9999, p.Followers)
		assert.Contains(t, out, "html_url: https://github.com/octocat")
	})

	t.Run("decode failure", func(t *testing.T) {
		_, errOut, err := executeShow(t, "show", "broken", "--api-url", server.URL, "-o", "text")
		assert.ErrorIs(t, err, errLookupFailed)
		assert.Equal(t, "Error decoding response\n", errOut)
	})

	t.Run("not found", func(t *testing.T) {
		_, errOut, err := executeShow(t, "show", "nobody", "--api-url", server.URL, "-o", "text")
		assert.ErrorIs(t, err, errLookupFailed)
		assert.Contains(t, errOut, "Error: ")
		assert.Contains(t, errOut, "404")
	})

	t.Run("empty username", func(t *testing.T) {
		_, errOut, err := executeShow(t, "show", " ", "--api-url", server.URL, "-o", "text")
		assert.ErrorIs(t, err, errLookupFailed)
		assert.Equal(t, "Please enter a username\n", errOut)
	})

	t.Run("invalid output", func(t *testing.T) {
		_, errOut, err := executeShow(t, "show", "octocat", "--api-url", server.URL, "-o", "xml")
		assert.Error(t, err)
		assert.Contains(t, errOut, `invalid --output "xml"`)
	})
}

func TestVersion(t *testing.T) {
	out, _, err := executeShow(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ghprofile dev\n", out)
}
