package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanbo/internal/app"
	"github.com/thenoetrevino/kanbo/internal/config"
	"github.com/thenoetrevino/kanbo/internal/models"
	"github.com/thenoetrevino/kanbo/internal/storage"
	"github.com/thenoetrevino/kanbo/internal/testutil"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	cfg := config.Default()
	cfg.APIURL = fake.URL()

	a, err := app.New(context.Background(), cfg, app.WithStorage(storage.NewMemory()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, data any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, data any) {
				assert.Equal(t, "value", data.(map[string]any)["test"])
			},
		},
		{
			name: "board",
			data: models.Board{ID: "b1", Title: "Roadmap"},
			validate: func(t *testing.T, data any) {
				assert.Equal(t, "b1", data.(map[string]any)["id"])
				assert.Equal(t, "Roadmap", data.(map[string]any)["title"])
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, data any) {
				assert.Equal(t, "simple string", data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{JSON: true}
			output := testutil.CaptureOutput(t, func() {
				require.NoError(t, f.Success(tt.data))
			})

			result := testutil.ParseJSON(t, output)
			assert.Equal(t, true, result["success"])
			tt.validate(t, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f := &OutputFormatter{Quiet: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(models.Task{ID: "t42", Title: "ignored"}))
	})
	assert.Equal(t, "t42\n", output)

	// data without an ID falls through to the human format
	output = testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success("no id"))
	})
	assert.Equal(t, "no id\n", output)
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task t1 not found", "list tasks first"))
	})

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	assert.Equal(t, "list tasks first", errData["suggestion"])

	output = testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Error("PLAIN", "no suggestion"))
	})
	_, hasSuggestion := testutil.ParseJSON(t, output)["error"].(map[string]any)["suggestion"]
	assert.False(t, hasSuggestion)
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f := &OutputFormatter{}

	stderr := testutil.CaptureStderr(t, func() {
		require.NoError(t, f.ErrorWithSuggestion("X", "something broke", "try again"))
	})

	assert.Contains(t, stderr, "❌ Error: something broke")
	assert.Contains(t, stderr, "💡 Suggestion: try again")
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f := &OutputFormatter{}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(map[string]string{"task_id": "t1", "board_id": "b1"}))
	})
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "board_id")
	assert.Contains(t, lines[1], "t1")

	output = testutil.CaptureOutput(t, func() {
		require.NoError(t, f.Success(&models.Task{ID: "t7", Title: "Write docs", BoardID: "b1", ColumnID: "c1"}))
	})
	assert.Contains(t, output, "Write docs")
	assert.Contains(t, output, "t7")
}
