// Package editor implements the interactive polygon canvas: placing shapes
// from a palette, selecting the shape nearest to a click, and the drag
// gestures that resize and rotate the selection.
//
// A Canvas is owned by the UI thread of its host toolkit and is not safe for
// concurrent use.
package editor

import (
	"github.com/philipparndt/gopoly/internal/logging"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

// Canvas holds the placed shapes and interprets pointer and key events
type Canvas struct {
	shapes [MaxShapes]geometry.RegularPolygon
	count  int

	mode         Mode
	dragAnchor   anchor // primary button
	rotateAnchor anchor // secondary button

	style Style
	host  Host
}

var _ EventHandler = (*Canvas)(nil)

// NewCanvas creates an empty canvas reporting to host
func NewCanvas(host Host) *Canvas {
	if host == nil {
		host = HostFuncs{}
	}
	return &Canvas{
		mode:  Idle(),
		style: DefaultStyle(),
		host:  host,
	}
}

// Shapes returns a copy of the placed shapes in placement order
func (c *Canvas) Shapes() []geometry.RegularPolygon {
	shapes := make([]geometry.RegularPolygon, c.count)
	copy(shapes, c.shapes[:c.count])
	return shapes
}

// Len returns the number of placed shapes
func (c *Canvas) Len() int {
	return c.count
}

// Full reports whether no more shapes can be placed
func (c *Canvas) Full() bool {
	return c.count == MaxShapes
}

// Mode returns the current interaction mode
func (c *Canvas) Mode() Mode {
	return c.mode
}

// Style returns the drawing style
func (c *Canvas) Style() Style {
	return c.style
}

// SetStyle changes the drawing style and requests a redraw
func (c *Canvas) SetStyle(s Style) {
	c.style = s
	c.host.RequestRedraw()
}

// SelectTemplate enters placement mode for t (a palette click)
func (c *Canvas) SelectTemplate(t geometry.Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.mode = Placing(t)
	c.host.SetStatus(MessagePlace)
	c.host.RequestRedraw()
	logging.Logger().Debug("template selected", "template", t.Name, "sides", t.Sides)
	return nil
}

// CancelPlacement leaves placement mode; other modes are untouched
func (c *Canvas) CancelPlacement() {
	if c.mode.Kind() != ModePlacing {
		return
	}
	c.mode = Idle()
	c.host.SetStatus(MessageChooseShape)
}

// Place instantiates t centered on p and appends it to the canvas
func (c *Canvas) Place(t geometry.Template, p geometry.Point) error {
	if c.Full() {
		return ErrCapacityExceeded
	}
	c.shapes[c.count] = t.At(p)
	c.count++
	return nil
}

// Select puts the canvas into edit mode for the shape nearest to p.
// It returns false, leaving the mode alone, when the canvas is empty.
func (c *Canvas) Select(p geometry.Point) (int, bool) {
	index, ok := NearestCenter(c.shapes[:c.count], p)
	if !ok {
		return -1, false
	}
	c.mode = Editing(index)
	c.host.SetStatus(MessageEditHelp)
	return index, true
}

// Delete removes the selected shape and returns to the palette prompt.
// Later shapes keep their relative order. With nothing selected it returns
// ErrNoSelection and changes nothing. A redraw is requested either way.
func (c *Canvas) Delete() error {
	defer c.host.RequestRedraw()

	index, ok := c.mode.Selected()
	if !ok {
		logging.Logger().Debug("delete ignored", "error", ErrNoSelection)
		return ErrNoSelection
	}

	copy(c.shapes[index:c.count], c.shapes[index+1:c.count])
	c.count--
	c.shapes[c.count] = geometry.RegularPolygon{}
	c.mode = Idle()
	c.host.SetStatus(MessageChooseShape)
	logging.Logger().Debug("shape deleted", "index", index, "remaining", c.count)
	return nil
}

// OnPointerDown handles a button press on the canvas
func (c *Canvas) OnPointerDown(button Button, p geometry.Point) {
	switch button {
	case ButtonSecondary:
		// Drops a pending palette choice; an edited shape stays selected
		// so the drag that follows can rotate it.
		if c.mode.Kind() == ModePlacing {
			c.mode = Idle()
		}
		c.rotateAnchor = anchorAt(p)
		c.host.SetStatus(MessageChooseShape)
		return
	case ButtonPrimary:
	default:
		return
	}

	c.dragAnchor = anchorAt(p)

	if t, ok := c.mode.Template(); ok {
		if err := c.Place(t, p); err != nil {
			logging.Logger().Info("placement rejected", "error", err, "shapes", c.count)
			c.host.SetStatus(MessageCapacity)
			return
		}
		c.mode = Idle()
		c.host.SetStatus(MessageChooseShape)
		logging.Logger().Debug("shape placed", "template", t.Name, "x", p.X, "y", p.Y, "shapes", c.count)
		c.host.RequestRedraw()
		return
	}

	if _, ok := c.Select(p); !ok {
		return
	}
	c.host.RequestRedraw()
}

// OnPointerMove applies the active drag gestures to the selected shape
func (c *Canvas) OnPointerMove(p geometry.Point) {
	if index, ok := c.mode.Selected(); ok {
		shape := &c.shapes[index]
		if c.dragAnchor.active {
			*shape = shape.WithRadius(shape.Radius + ResizeDelta(c.dragAnchor.pos, p))
			c.dragAnchor.pos = p
		}
		if c.rotateAnchor.active {
			*shape = shape.WithRotation(shape.Rotation + RotateDelta(c.rotateAnchor.pos, p))
			c.rotateAnchor.pos = p
		}
	}
	c.host.RequestRedraw()
}

// OnPointerUp ends the drag started by button. The selection is kept.
func (c *Canvas) OnPointerUp(button Button, _ geometry.Point) {
	switch button {
	case ButtonPrimary:
		c.dragAnchor = anchor{}
	case ButtonSecondary:
		c.rotateAnchor = anchor{}
	default:
		c.dragAnchor = anchor{}
		c.rotateAnchor = anchor{}
	}
}

// OnKeyDown handles Delete/Backspace (delete the selection) and Escape
// (leave placement mode)
func (c *Canvas) OnKeyDown(key Key) {
	switch key {
	case KeyDelete, KeyBackspace:
		_ = c.Delete()
	case KeyEscape:
		c.CancelPlacement()
	}
}

// Dragging reports whether a resize or rotate drag is in progress
func (c *Canvas) Dragging() bool {
	return c.dragAnchor.active || c.rotateAnchor.active
}
