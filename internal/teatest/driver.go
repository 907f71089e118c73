// Package teatest drives bubbletea models synchronously in tests.
//
// Messages go straight through Update and every returned Cmd is run on the
// spot, so a test observes the model exactly as a user would after each key
// without starting a tea.Program.
package teatest

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many follow-up messages one input may produce.
const MaxDrainDepth = 100

// cmdTimeout separates instant Cmds (tracker calls, view messages) from timer
// Cmds such as the textinput cursor blink, which are dropped.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds input to a tea.Model and runs the resulting Cmds inline.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has run. Further input is ignored.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init())
}

// Send dispatches msg through Update and runs everything it triggers.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd)
}

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// namedKeys maps the key names used by Press to their messages.
var namedKeys = map[string]tea.KeyMsg{
	"enter":  {Type: tea.KeyEnter},
	"esc":    {Type: tea.KeyEsc},
	"tab":    {Type: tea.KeyTab},
	"space":  {Type: tea.KeySpace, Runes: []rune{' '}},
	"up":     {Type: tea.KeyUp},
	"down":   {Type: tea.KeyDown},
	"ctrl+c": {Type: tea.KeyCtrlC},
}

// Press sends each named key in turn. Names not in the table are sent as
// single runes, so Press("j", "j", "space") moves down twice and toggles.
func (d *Driver) Press(keys ...string) {
	d.T.Helper()
	for _, k := range keys {
		if msg, ok := namedKeys[k]; ok {
			d.SendKey(msg)
			continue
		}
		runes := []rune(k)
		if len(runes) != 1 {
			d.T.Fatalf("teatest: unknown key %q", k)
		}
		d.PressKey(runes[0])
	}
}

func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.Press("enter") }
func (d *Driver) PressEsc() { d.T.Helper(); d.Press("esc") }
func (d *Driver) PressSpace() { d.T.Helper(); d.Press("space") }
func (d *Driver) PressTab() { d.T.Helper(); d.Press("tab") }
func (d *Driver) PressDown() { d.T.Helper(); d.Press("down") }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

// ViewContains reports whether the unstyled view contains s.
func (d *Driver) ViewContains(s string) bool {
	return strings.Contains(StripANSI(d.View()), s)
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// drain runs cmd and feeds its messages back through Update, breadth first,
// until nothing is left or MaxDrainDepth rounds have passed.
func (d *Driver) drain(cmd tea.Cmd) {
	d.T.Helper()
	pending := []tea.Cmd{cmd}
	for depth := 0; len(pending) > 0; depth++ {
		if depth >= MaxDrainDepth {
			d.T.Logf("teatest: gave up after %d rounds of follow-up commands", MaxDrainDepth)
			return
		}
		var next []tea.Cmd
		for _, c := range pending {
			if c == nil || d.Quitting {
				continue
			}
			msg := runWithTimeout(c)
			switch m := msg.(type) {
			case nil:
			case tea.BatchMsg:
				next = append(next, m...)
			case tea.QuitMsg:
				d.Quitting = true
				d.Model, _ = d.Model.Update(m)
			default:
				if isBlink(m) {
					continue
				}
				var follow tea.Cmd
				d.Model, follow = d.Model.Update(m)
				next = append(next, follow)
			}
		}
		pending = next
	}
}

// runWithTimeout returns nil for a Cmd that does not finish within
// cmdTimeout.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages of bubbles/cursor.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
