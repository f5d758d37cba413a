package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// EventSource supplies calendar events for a planning window. The OS
// calendar integration lives behind this interface; the core never talks to
// a calendar store directly.
type EventSource interface {
	Events(ctx context.Context, from time.Time, days int) ([]CalendarEvent, error)
}

// FileSource reads events from a JSON file: an array of objects with
// title/start/end fields (RFC 3339 timestamps).
type FileSource struct {
	Path string
}

// NewFileSource creates an EventSource backed by a JSON file.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Events returns the events within the window [from, from+days).
func (s *FileSource) Events(_ context.Context, from time.Time, days int) ([]CalendarEvent, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar file %s: %w", s.Path, err)
	}

	var all []CalendarEvent
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to decode calendar file %s: %w", s.Path, err)
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := start.AddDate(0, 0, days)

	var window []CalendarEvent
	for _, ev := range all {
		if !ev.Start.Before(start) && ev.Start.Before(end) {
			window = append(window, ev)
		}
	}
	return window, nil
}
