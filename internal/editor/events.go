package editor

import "github.com/philipparndt/gopoly/pkg/geometry"

// Button identifies the mouse button of a pointer event
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Key identifies the keys the editor reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyDelete
	KeyBackspace
	KeyEscape
)

// EventHandler receives the input events of a host toolkit.
// Pointer coordinates are relative to the canvas origin.
type EventHandler interface {
	OnPointerDown(button Button, p geometry.Point)
	OnPointerMove(p geometry.Point)
	OnPointerUp(button Button, p geometry.Point)
	OnKeyDown(key Key)
	OnRedrawRequested(painter Painter)
}

// Host is implemented by the toolkit embedding the canvas
type Host interface {
	// RequestRedraw asks the toolkit to repaint the canvas soon
	RequestRedraw()
	// SetStatus replaces the text of the status line
	SetStatus(text string)
}

// HostFuncs adapts two plain functions to the Host interface.
// Nil functions are ignored.
type HostFuncs struct {
	Redraw func()
	Status func(text string)
}

func (h HostFuncs) RequestRedraw() {
	if h.Redraw != nil {
		h.Redraw()
	}
}

func (h HostFuncs) SetStatus(text string) {
	if h.Status != nil {
		h.Status(text)
	}
}
