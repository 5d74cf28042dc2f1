package editor

import "github.com/philipparndt/gopoly/pkg/geometry"

// ModeKind names the variants of Mode
type ModeKind int

const (
	ModeIdle    ModeKind = iota // nothing chosen, nothing selected
	ModePlacing                 // a palette template waits for a click on the canvas
	ModeEditing                 // a placed shape is selected for resize, rotate or delete
)

func (k ModeKind) String() string {
	switch k {
	case ModePlacing:
		return "placing"
	case ModeEditing:
		return "editing"
	default:
		return "idle"
	}
}

// Mode is the interaction state of the canvas. Placing and Editing carry
// their payload, so a canvas can never be in both at once.
type Mode struct {
	kind     ModeKind
	template geometry.Template
	index    int
}

// Idle returns the mode with nothing chosen and nothing selected
func Idle() Mode {
	return Mode{kind: ModeIdle}
}

// Placing returns the mode in which the next primary click places t
func Placing(t geometry.Template) Mode {
	return Mode{kind: ModePlacing, template: t}
}

// Editing returns the mode in which the shape at index is selected
func Editing(index int) Mode {
	return Mode{kind: ModeEditing, index: index}
}

// Kind returns the variant
func (m Mode) Kind() ModeKind {
	return m.kind
}

// Template returns the pending template when placing
func (m Mode) Template() (geometry.Template, bool) {
	if m.kind != ModePlacing {
		return geometry.Template{}, false
	}
	return m.template, true
}

// Selected returns the selected shape index when editing
func (m Mode) Selected() (int, bool) {
	if m.kind != ModeEditing {
		return -1, false
	}
	return m.index, true
}
