// Package app owns the composite application state: two pane listings, the
// focus selector, and the transient status message. It dispatches logical
// commands onto them; key decoding and rendering live elsewhere.
package app

// Focus selects which pane receives navigation commands.
type Focus int

const (
	Left Focus = iota
	Right
)

// Other returns the opposite pane.
func (f Focus) Other() Focus {
	if f == Left {
		return Right
	}
	return Left
}

func (f Focus) String() string {
	if f == Left {
		return "left"
	}
	return "right"
}

// Command is a logical input command. The input layer maps key presses to
// these; the controller maps them to pane operations.
type Command int

const (
	Quit Command = iota
	SwitchFocus
	SelectNext
	SelectPrevious
	Enter
	Parent
	TransferLeftToRight
	TransferRightToLeft
)

func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	case SwitchFocus:
		return "switch-focus"
	case SelectNext:
		return "select-next"
	case SelectPrevious:
		return "select-previous"
	case Enter:
		return "enter"
	case Parent:
		return "parent"
	case TransferLeftToRight:
		return "transfer-left-to-right"
	case TransferRightToLeft:
		return "transfer-right-to-left"
	}
	return "unknown"
}
