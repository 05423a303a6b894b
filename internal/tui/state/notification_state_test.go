package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationAddDismiss(t *testing.T) {
	s := NewNotificationState()
	first := s.Add(LevelInfo, "saved")
	second := s.Add(LevelError, "failed")

	require.Len(t, s.All(), 2)
	assert.NotEqual(t, first, second)

	s.Dismiss(first)
	require.Len(t, s.All(), 1)
	assert.Equal(t, "failed", s.All()[0].Message)

	s.ClearLevel(LevelError)
	assert.False(t, s.HasAny())
}

func TestNotificationOverlay(t *testing.T) {
	s := NewNotificationState()
	bg := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)
	render := func(n Notification) string { return n.Message }

	assert.Equal(t, bg, s.Overlay(bg, render), "no size yet")

	s.SetWindowSize(10, 5)
	s.Add(LevelInfo, "hi")
	s.Add(LevelInfo, "yo")

	lines := strings.Split(s.Overlay(bg, render), "\n")
	assert.Equal(t, ".......hi.", lines[0])
	assert.Equal(t, "..........", lines[1])
	assert.Equal(t, ".......yo.", lines[2])
}
