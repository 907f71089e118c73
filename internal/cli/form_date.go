package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/kbtrack/internal/cli/formatter"
	"github.com/alexanderramin/kbtrack/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// kbtrackHuhTheme returns a huh theme matching the formatter palette.
func kbtrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDate accepts a calendar date in YYYY-MM-DD form.
func validateDate(s string) error {
	if _, err := time.Parse(service.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// newDateFormView asks for the session date and applies it on submit.
func newDateFormView(state *SharedState) View {
	tracker := state.App.Tracker
	date := tracker.Editor().Session().Date

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session Date (YYYY-MM-DD)").
				Placeholder(tracker.Today()).
				Value(&date).
				Validate(validateDate),
		),
	).WithTheme(kbtrackHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		date = strings.TrimSpace(date)
		tracker.Editor().SetDate(date)
		return tea.Batch(state.saveDraft(), showOutput("Date set to "+formatter.Bold(formatter.FormatDate(date))))
	}

	return newFormView(state, "Date", form, done)
}
