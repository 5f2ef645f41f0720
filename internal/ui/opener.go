package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// Opener hands a URL to an external viewer.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs with the platform's default handler.
type BrowserOpener struct{}

// Open starts the platform handler for url and does not wait for it to exit.
func (BrowserOpener) Open(url string) error {
	if url == "" {
		return errors.New("no profile link to open")
	}
	name, args := openCommand(runtime.GOOS, url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	go cmd.Wait()
	return nil
}

func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
