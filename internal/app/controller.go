package app

import (
	"fmt"
	"path/filepath"

	"ferry/internal/browse"
	"ferry/internal/errors"
	"ferry/internal/log"
	"ferry/internal/transfer"
)

// StatusMessage is a transient user-facing notice. Remaining counts render
// cycles, not wall-clock time.
type StatusMessage struct {
	Text      string
	Remaining int
}

// Controller routes commands to the focused pane and coordinates transfers
// between the two. Both transfer directions run through the same pair of
// pane indices; there are no per-pane code paths.
type Controller struct {
	panes    [2]*browse.Listing
	focus    Focus
	executor *transfer.Executor

	status      StatusMessage
	statusTicks int

	refreshAfterCopy bool
	done             bool
}

// NewController wires the two pane listings and the transfer executor.
// statusTicks is how many render cycles a status message survives.
func NewController(left, right *browse.Listing, executor *transfer.Executor, statusTicks int, refreshAfterCopy bool) *Controller {
	return &Controller{
		panes:            [2]*browse.Listing{left, right},
		focus:            Left,
		executor:         executor,
		statusTicks:      statusTicks,
		refreshAfterCopy: refreshAfterCopy,
	}
}

// Apply processes one command synchronously to completion.
func (c *Controller) Apply(cmd Command) {
	log.LogWithFields(log.F("command", cmd.String()), log.F("focus", c.focus.String())).Debug("dispatch")

	switch cmd {
	case Quit:
		c.done = true
	case SwitchFocus:
		c.focus = c.focus.Other()
	case SelectNext:
		c.panes[c.focus].MoveSelection(browse.Next)
	case SelectPrevious:
		c.panes[c.focus].MoveSelection(browse.Previous)
	case Enter:
		c.panes[c.focus].EnterSelected()
	case Parent:
		c.panes[c.focus].GoToParent()
	case TransferLeftToRight:
		c.runTransfer(Left, Right)
	case TransferRightToLeft:
		c.runTransfer(Right, Left)
	}
}

func (c *Controller) runTransfer(src, dst Focus) {
	req, err := transfer.Resolve(c.panes[src], c.panes[dst])
	if err != nil {
		// A pane without a selectable entry is a silent no-op, not a fault.
		if !errors.IsNoSelection(err) {
			c.setStatus(err.Error())
		}
		return
	}

	outcome := c.executor.Execute(req.Source, req.Dest)
	if !outcome.OK {
		c.setStatus("Copy failed: " + outcome.Diagnostic)
		return
	}

	if c.refreshAfterCopy {
		c.panes[dst].Refresh()
	}
	c.setStatus(fmt.Sprintf("Copied %s to %s", req.Name, filepath.Dir(req.Dest)))
}

func (c *Controller) setStatus(text string) {
	c.status = StatusMessage{Text: text, Remaining: c.statusTicks}
}

// Tick ages the status message by one render cycle, clearing it when the
// counter runs out.
func (c *Controller) Tick() {
	if c.status.Remaining > 0 {
		c.status.Remaining--
		if c.status.Remaining == 0 {
			c.status.Text = ""
		}
	}
}

// Pane returns the listing for the given side.
func (c *Controller) Pane(f Focus) *browse.Listing {
	return c.panes[f]
}

// Focused returns the listing that currently receives navigation commands.
func (c *Controller) Focused() *browse.Listing {
	return c.panes[c.focus]
}

// Focus returns which pane is focused.
func (c *Controller) Focus() Focus {
	return c.focus
}

// Status returns the current status text, empty when none is active.
func (c *Controller) Status() string {
	return c.status.Text
}

// Done reports whether a Quit command has been processed.
func (c *Controller) Done() bool {
	return c.done
}
