package model

import (
	"strings"
	"time"
)

type Wiki struct {
	ID            string
	OperationName string
	Title         string
	Content       string
	Tags          []string
	UpdatedAt     time.Time
}

// Excerpt returns the first line of content, truncated to max runes.
func (w Wiki) Excerpt(max int) string {
	line := w.Content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	runes := []rune(strings.TrimSpace(line))
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return string(runes)
}
