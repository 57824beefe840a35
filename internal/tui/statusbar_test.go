package tui

import (
	"strings"
	"testing"
)

func TestRenderStatusBarShowsStatusAndHints(t *testing.T) {
	bar := RenderStatusBar("12 tasks", "/:search  ?:help", 80)
	if !strings.Contains(bar, "12 tasks") {
		t.Error("status text missing from bar")
	}
	if !strings.Contains(bar, "/:search") {
		t.Error("hints missing from bar")
	}
}

func TestRenderStatusBarDropsHintsWhenNarrow(t *testing.T) {
	bar := RenderStatusBar("12 tasks", "/:search  ?:help  q:quit", 20)
	if !strings.Contains(bar, "12 tasks") {
		t.Error("status text should survive a narrow terminal")
	}
	if strings.Contains(bar, "/:search") {
		t.Error("hints should give way on a narrow terminal")
	}
}

func TestIsErrorStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"Error: db locked", true},
		{"Index error: context canceled", true},
		{"Delete task: save failed", true},
		{"12 tasks", false},
		{"Indexed 42 entities", false},
	}
	for _, tt := range tests {
		if got := isErrorStatus(tt.status); got != tt.want {
			t.Errorf("isErrorStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
