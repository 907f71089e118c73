package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewCurrent ViewID = iota
	ViewHistory
	ViewStats
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // tab or breadcrumb label
}

// inputCapturer is implemented by views that are currently editing text and
// need every key, including the global ones.
type inputCapturer interface {
	CapturesInput() bool
}
