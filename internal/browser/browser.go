// Package browser opens article URLs with the platform's default opener.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Open launches the system browser for the given URL. The process is
// detached; failures to render the page are the browser's problem.
func Open(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return fmt.Errorf("no URL to open")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http URL: %s", url)
	}

	name, args := openerCommand(url)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", name, err)
	}
	// Reap the child in the background so it doesn't linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}

func openerCommand(url string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
