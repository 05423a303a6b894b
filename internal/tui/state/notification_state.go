// Package state holds TUI state that outlives a single page
package state

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/kanbo/internal/tui/layers"
)

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Message string
}

// NotificationState manages the notifications stacked in the top-right
// corner of the screen.
type NotificationState struct {
	notifications []Notification
	nextID        int
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add adds a new notification and returns its ID
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      s.nextID,
		Level:   level,
		Message: message,
	})
	return s.nextID
}

// Dismiss removes the notification with the given ID
func (s *NotificationState) Dismiss(id int) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// ClearLevel removes all notifications of a specific level.
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	filtered := []Notification{}
	for _, n := range s.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// Overlay draws the notifications over view, stacked downwards from the
// top-right corner. Notifications that would run off screen are skipped.
func (s *NotificationState) Overlay(view string, renderFunc func(Notification) string) string {
	if s.windowWidth == 0 {
		return view
	}

	row := 0
	for _, n := range s.notifications {
		rendered := renderFunc(n)
		height := lipgloss.Height(rendered)
		if row+height >= s.windowHeight {
			break
		}

		x, y := layers.TopRight(rendered, s.windowWidth, row)
		view = layers.Place(view, rendered, x, y)
		row += height + 1
	}

	return view
}
