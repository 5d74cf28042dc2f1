package editor

import (
	"errors"
	"fmt"
)

// MaxShapes is the number of shapes the canvas can hold
const MaxShapes = 5

var (
	// ErrCapacityExceeded is reported when placing a shape on a full canvas
	ErrCapacityExceeded = fmt.Errorf("no more than %d shapes can exist", MaxShapes)
	// ErrNoSelection is reported when deleting with no shape selected
	ErrNoSelection = errors.New("no shape selected")
)

// Status line texts
const (
	MessageChooseShape = "Choose a shape from the palette"
	MessagePlace       = "Right click to cancel, left click on the canvas to place the shape"
	MessageEditHelp    = "Drag with the right button to rotate.\n" +
		"Drag with the left button down-left or up-right to shrink,\n" +
		"up-left or down-right to grow. Delete removes the shape"
)

// MessageCapacity is shown when a placement is rejected
var MessageCapacity = fmt.Sprintf("No more than %d shapes can exist", MaxShapes)
