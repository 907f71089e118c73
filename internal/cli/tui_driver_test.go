package cli

import (
	"testing"

	"github.com/alexanderramin/kbtrack/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the view receiving keys.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// LastOutput is the transient status line.
func (d *TestDriver) LastOutput() string {
	return teatest.StripANSI(d.appModel().lastOutput)
}

func (d *TestDriver) current() *currentView {
	return d.appModel().tabs[0].(*currentView)
}

// Cursor is the cursor position on the Current tab.
func (d *TestDriver) Cursor() int {
	return d.current().cursor
}
