package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight is the space left for a view between header and status bar.
func (s *SharedState) ContentHeight() int {
	// header (2) + status line (1) + status bar (2)
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// saveDraft persists the editor after a TUI edit. The returned Cmd reports
// a failure in the status line and refreshes every tab.
func (s *SharedState) saveDraft() tea.Cmd {
	if err := s.App.Tracker.SaveDraft(context.Background()); err != nil {
		return tea.Batch(refreshViews(), showOutput(shellError(fmt.Errorf("saving draft: %w", err))))
	}
	return refreshViews()
}

// shellError formats an error for the status line.
func shellError(err error) string {
	return formatter.StyleRed.Render("✖ " + err.Error())
}
