// Package tui renders the two panes and decodes key presses into the
// logical commands the controller understands.
package tui

import (
	"ferry/internal/app"
	"ferry/internal/watch"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// changeMsg is delivered when a watched directory changes on disk.
type changeMsg watch.Change

// Model is the bubbletea model. All state lives in the controller; the
// model only holds presentation concerns.
type Model struct {
	ctrl    *app.Controller
	watcher *watch.Watcher // nil when auto-refresh is disabled
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	showHelp bool
}

// New creates the TUI model around an initialized controller. watcher may
// be nil.
func New(ctrl *app.Controller, watcher *watch.Watcher) *Model {
	return &Model{
		ctrl:    ctrl,
		watcher: watcher,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	m.rearmWatcher()
	return m.waitForChange()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case changeMsg:
		// Re-read whichever pane shows the changed directory.
		for _, f := range []app.Focus{app.Left, app.Right} {
			if m.ctrl.Pane(f).Path() == msg.Dir {
				m.ctrl.Pane(f).Refresh()
			}
		}
		m.ctrl.Tick()
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Apply(app.Quit)
	case key.Matches(msg, m.keys.SwitchFocus):
		m.ctrl.Apply(app.SwitchFocus)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Apply(app.SelectNext)
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Apply(app.SelectPrevious)
	case key.Matches(msg, m.keys.Enter):
		m.ctrl.Apply(app.Enter)
	case key.Matches(msg, m.keys.Parent):
		m.ctrl.Apply(app.Parent)
	case key.Matches(msg, m.keys.CopyRight):
		m.ctrl.Apply(app.TransferLeftToRight)
	case key.Matches(msg, m.keys.CopyLeft):
		m.ctrl.Apply(app.TransferRightToLeft)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	// One command per cycle, then age the status message.
	m.ctrl.Tick()

	if m.ctrl.Done() {
		return m, tea.Quit
	}

	// Navigation may have moved a pane to a different directory.
	m.rearmWatcher()
	return m, nil
}

func (m *Model) rearmWatcher() {
	if m.watcher == nil {
		return
	}
	m.watcher.Rearm(m.ctrl.Pane(app.Left).Path(), m.ctrl.Pane(app.Right).Path())
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if change, ok := <-m.watcher.Changes(); ok {
			return changeMsg(change)
		}
		return nil
	}
}
