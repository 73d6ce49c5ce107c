package browser

import (
	"runtime"
	"testing"
)

func TestOpenRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"file scheme", "file:///etc/passwd"},
		{"javascript scheme", "javascript:alert(1)"},
		{"bare path", "/tmp/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Open(tt.url); err == nil {
				t.Errorf("expected error for %q", tt.url)
			}
		})
	}
}

func TestOpenerCommand(t *testing.T) {
	name, args := openerCommand("https://example.org")

	switch runtime.GOOS {
	case "darwin":
		if name != "open" {
			t.Errorf("expected open, got %s", name)
		}
	case "windows":
		if name != "rundll32" {
			t.Errorf("expected rundll32, got %s", name)
		}
	default:
		if name != "xdg-open" {
			t.Errorf("expected xdg-open, got %s", name)
		}
	}

	if len(args) == 0 || args[len(args)-1] != "https://example.org" {
		t.Errorf("URL should be the final argument, got %v", args)
	}
}
