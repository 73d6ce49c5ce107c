package tui

import (
	"strings"
	"testing"
)

func TestCategoryClass(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"GitHub", "github"},
		{"Research", "research"},
		{"Game Dev AI", "gamedev"},
		{"Gaming", "gaming"},
		{"AI Models", "ai"},
		{"Something Else", "ai"},
		{"github", "ai"}, // mapping is case-sensitive by contract
		{"", "ai"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := CategoryClass(tt.category); got != tt.want {
				t.Errorf("CategoryClass(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestCategoryBadge(t *testing.T) {
	if badge := CategoryBadge("Research"); !strings.Contains(badge, "[Research]") {
		t.Errorf("badge %q does not contain the category label", badge)
	}
	// Unknown categories keep their own label
	if badge := CategoryBadge("Robotics"); !strings.Contains(badge, "[Robotics]") {
		t.Errorf("badge %q does not contain the category label", badge)
	}
	// Empty category wears the generic label
	if badge := CategoryBadge(""); !strings.Contains(badge, "[AI]") {
		t.Errorf("badge %q does not contain the fallback label", badge)
	}
}
