package editor

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gopoly/pkg/geometry"
)

// recordingHost counts redraw requests and keeps the status history
type recordingHost struct {
	redraws int
	status  []string
}

func (h *recordingHost) RequestRedraw()        { h.redraws++ }
func (h *recordingHost) SetStatus(text string) { h.status = append(h.status, text) }

func (h *recordingHost) lastStatus() string {
	if len(h.status) == 0 {
		return ""
	}
	return h.status[len(h.status)-1]
}

var square = geometry.Template{Name: "Square", Sides: 4, Radius: 100}

func pt(x, y float64) geometry.Point {
	return geometry.NewPoint(x, y)
}

// place puts a square at each center through the palette + click path
func place(t *testing.T, c *Canvas, centers ...geometry.Point) {
	t.Helper()
	for _, center := range centers {
		if err := c.SelectTemplate(square); err != nil {
			t.Fatalf("SelectTemplate failed: %v", err)
		}
		c.OnPointerDown(ButtonPrimary, center)
		c.OnPointerUp(ButtonPrimary, center)
	}
}

func TestPlacement(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)

	if err := c.SelectTemplate(square); err != nil {
		t.Fatalf("SelectTemplate failed: %v", err)
	}
	if c.Mode().Kind() != ModePlacing {
		t.Fatalf("expected placing mode, got %v", c.Mode().Kind())
	}
	if host.lastStatus() != MessagePlace {
		t.Errorf("expected placement prompt, got %q", host.lastStatus())
	}

	redraws := host.redraws
	c.OnPointerDown(ButtonPrimary, pt(120, 80))

	shapes := c.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	expected := geometry.MustRegularPolygon(4, 100, 120, 80, 0)
	if shapes[0] != expected {
		t.Errorf("expected %+v, got %+v", expected, shapes[0])
	}
	if c.Mode().Kind() != ModeIdle {
		t.Errorf("expected idle mode after placement, got %v", c.Mode().Kind())
	}
	if host.lastStatus() != MessageChooseShape {
		t.Errorf("expected palette prompt after placement, got %q", host.lastStatus())
	}
	if host.redraws <= redraws {
		t.Error("placement should request a redraw")
	}
}

func TestPlacementCapacity(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)
	place(t, c, pt(0, 0), pt(10, 0), pt(20, 0), pt(30, 0), pt(40, 0))

	before := c.Shapes()
	if len(before) != MaxShapes {
		t.Fatalf("expected %d shapes, got %d", MaxShapes, len(before))
	}

	if err := c.SelectTemplate(square); err != nil {
		t.Fatalf("SelectTemplate failed: %v", err)
	}
	c.OnPointerDown(ButtonPrimary, pt(500, 500))

	after := c.Shapes()
	if len(after) != MaxShapes {
		t.Fatalf("6th placement must be rejected, got %d shapes", len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("shape %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if host.lastStatus() != MessageCapacity {
		t.Errorf("expected capacity message, got %q", host.lastStatus())
	}
	if c.Mode().Kind() != ModePlacing {
		t.Errorf("rejected placement should leave placement mode alone, got %v", c.Mode().Kind())
	}
}

func TestPlaceReturnsCapacityError(t *testing.T) {
	c := NewCanvas(nil)
	for i := 0; i < MaxShapes; i++ {
		if err := c.Place(square, pt(float64(i), 0)); err != nil {
			t.Fatalf("Place %d failed: %v", i, err)
		}
	}
	if err := c.Place(square, pt(0, 0)); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
}

func TestSelectionNearest(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)
	place(t, c, pt(0, 0), pt(100, 100), pt(50, 50))

	c.OnPointerDown(ButtonPrimary, pt(55, 55))

	index, ok := c.Mode().Selected()
	if !ok || index != 2 {
		t.Errorf("expected shape 2 selected, got %d (ok=%v)", index, ok)
	}
	if host.lastStatus() != MessageEditHelp {
		t.Errorf("expected edit help, got %q", host.lastStatus())
	}
}

func TestSelectionTieGoesToLowestIndex(t *testing.T) {
	c := NewCanvas(nil)
	place(t, c, pt(0, 0), pt(10, 0))

	c.OnPointerDown(ButtonPrimary, pt(5, 0))

	if index, _ := c.Mode().Selected(); index != 0 {
		t.Errorf("expected shape 0 on an exact tie, got %d", index)
	}
}

func TestSelectionOnEmptyCanvas(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)

	c.OnPointerDown(ButtonPrimary, pt(10, 10))

	if c.Mode().Kind() != ModeIdle {
		t.Errorf("expected idle mode, got %v", c.Mode().Kind())
	}
	if len(host.status) != 0 {
		t.Errorf("expected no status change, got %v", host.status)
	}
}

func TestSecondaryPressCancelsPlacement(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)
	if err := c.SelectTemplate(square); err != nil {
		t.Fatalf("SelectTemplate failed: %v", err)
	}

	c.OnPointerDown(ButtonSecondary, pt(10, 10))
	c.OnPointerUp(ButtonSecondary, pt(10, 10))
	c.OnPointerDown(ButtonPrimary, pt(10, 10))

	if c.Len() != 0 {
		t.Errorf("placement should have been cancelled, got %d shapes", c.Len())
	}
	if host.status[1] != MessageChooseShape {
		t.Errorf("expected palette prompt after right click, got %q", host.status[1])
	}
}

func TestResizeGesture(t *testing.T) {
	tests := []struct {
		name  string
		to    geometry.Point
		delta float64
	}{
		{"same-sign move grows", pt(-10, -10), math.Hypot(10, 10) / 6},
		{"down-right grows", pt(10, 10), math.Hypot(10, 10) / 6},
		{"opposite-sign move shrinks", pt(10, -10), -math.Hypot(10, 10) / 6},
		{"down-left shrinks", pt(-10, 10), -math.Hypot(10, 10) / 6},
		{"horizontal move grows", pt(12, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(nil)
			place(t, c, pt(0, 0))

			c.OnPointerDown(ButtonPrimary, pt(0, 0))
			c.OnPointerMove(tt.to)

			got := c.Shapes()[0].Radius
			if math.Abs(got-(100+tt.delta)) > 1e-10 {
				t.Errorf("expected radius %v, got %v", 100+tt.delta, got)
			}
		})
	}
}

func TestResizeIsIncremental(t *testing.T) {
	c := NewCanvas(nil)
	place(t, c, pt(0, 0))

	c.OnPointerDown(ButtonPrimary, pt(0, 0))
	c.OnPointerMove(pt(6, 0))
	c.OnPointerMove(pt(12, 0))
	c.OnPointerMove(pt(12, 0))

	// Two steps of 6px each, the repeated position adds nothing
	if got := c.Shapes()[0].Radius; math.Abs(got-102) > 1e-10 {
		t.Errorf("expected radius 102, got %v", got)
	}
}

func TestResizeThroughZero(t *testing.T) {
	c := NewCanvas(nil)
	place(t, c, pt(0, 0))

	c.OnPointerDown(ButtonPrimary, pt(0, 0))
	// 1200px towards the upper right shrinks by 200
	c.OnPointerMove(pt(600*math.Sqrt2, -600*math.Sqrt2))

	if got := c.Shapes()[0].Radius; math.Abs(got+100) > 1e-9 {
		t.Errorf("expected radius -100, got %v", got)
	}
}

func TestRotateGesture(t *testing.T) {
	for _, to := range []geometry.Point{pt(15, 0), pt(-15, 0)} {
		c := NewCanvas(nil)
		place(t, c, pt(0, 0))

		// Select with a left click, then drag with the right button
		c.OnPointerDown(ButtonPrimary, pt(0, 0))
		c.OnPointerUp(ButtonPrimary, pt(0, 0))
		c.OnPointerDown(ButtonSecondary, pt(0, 0))
		c.OnPointerMove(to)

		shape := c.Shapes()[0]
		if math.Abs(shape.Rotation-1.0) > 1e-10 {
			t.Errorf("drag to %v: expected rotation 1.0, got %v", to, shape.Rotation)
		}
		if shape.Radius != 100 {
			t.Errorf("drag to %v: rotation must not resize, got radius %v", to, shape.Radius)
		}
	}
}

func TestMoveWithoutSelection(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)
	place(t, c, pt(0, 0))
	before := c.Shapes()[0]

	c.OnPointerDown(ButtonSecondary, pt(0, 0))
	c.OnPointerMove(pt(50, 50))

	if c.Shapes()[0] != before {
		t.Errorf("shape changed without a selection: %+v", c.Shapes()[0])
	}
}

func TestReleaseStopsGestureKeepsSelection(t *testing.T) {
	c := NewCanvas(nil)
	place(t, c, pt(0, 0), pt(200, 0))

	c.OnPointerDown(ButtonPrimary, pt(190, 0))
	c.OnPointerUp(ButtonPrimary, pt(190, 0))
	c.OnPointerMove(pt(300, 300))

	if got := c.Shapes()[1].Radius; got != 100 {
		t.Errorf("move after release must not resize, got radius %v", got)
	}
	if index, ok := c.Mode().Selected(); !ok || index != 1 {
		t.Errorf("selection should survive release, got %d (ok=%v)", index, ok)
	}
	if c.Dragging() {
		t.Error("no drag should be active after release")
	}
}

func TestDragKeepsIndexStable(t *testing.T) {
	c := NewCanvas(nil)
	place(t, c, pt(0, 0), pt(100, 0), pt(200, 0))

	c.OnPointerDown(ButtonPrimary, pt(0, 0))
	c.OnPointerMove(pt(6, 6))

	shapes := c.Shapes()
	if shapes[0].Center != pt(0, 0) || shapes[1].Center != pt(100, 0) || shapes[2].Center != pt(200, 0) {
		t.Errorf("edited shape must stay in place, got order %v, %v, %v", shapes[0].Center, shapes[1].Center, shapes[2].Center)
	}
	if shapes[0].Radius == 100 {
		t.Error("expected the first shape to be resized")
	}
}

func TestDelete(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)
	place(t, c, pt(0, 0), pt(100, 0), pt(200, 0))

	c.OnPointerDown(ButtonPrimary, pt(100, 0))
	redraws := host.redraws
	if err := c.Delete(); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	shapes := c.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(shapes))
	}
	if shapes[0].Center != pt(0, 0) || shapes[1].Center != pt(200, 0) {
		t.Errorf("wrong shapes left: %v, %v", shapes[0].Center, shapes[1].Center)
	}
	if c.Mode().Kind() != ModeIdle {
		t.Errorf("expected idle after delete, got %v", c.Mode().Kind())
	}
	if host.lastStatus() != MessageChooseShape {
		t.Errorf("expected palette prompt after delete, got %q", host.lastStatus())
	}
	if host.redraws <= redraws {
		t.Error("delete should request a redraw")
	}
}

func TestDeleteWithoutSelection(t *testing.T) {
	host := &recordingHost{}
	c := NewCanvas(host)
	place(t, c, pt(0, 0), pt(100, 0))
	before := c.Shapes()

	redraws := host.redraws
	if err := c.Delete(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}
	after := c.Shapes()
	if len(after) != len(before) || after[0] != before[0] || after[1] != before[1] {
		t.Errorf("shapes changed: %v -> %v", before, after)
	}
	if host.redraws <= redraws {
		t.Error("delete should request a redraw even when nothing is selected")
	}
}

func TestKeys(t *testing.T) {
	c := NewCanvas(nil)
	place(t, c, pt(0, 0), pt(100, 0))

	c.OnPointerDown(ButtonPrimary, pt(0, 0))
	c.OnKeyDown(KeyDelete)
	if c.Len() != 1 {
		t.Fatalf("Delete key: expected 1 shape, got %d", c.Len())
	}

	c.OnPointerDown(ButtonPrimary, pt(100, 0))
	c.OnKeyDown(KeyBackspace)
	if c.Len() != 0 {
		t.Fatalf("Backspace key: expected 0 shapes, got %d", c.Len())
	}

	if err := c.SelectTemplate(square); err != nil {
		t.Fatalf("SelectTemplate failed: %v", err)
	}
	c.OnKeyDown(KeyEscape)
	if c.Mode().Kind() != ModeIdle {
		t.Errorf("Escape should leave placement mode, got %v", c.Mode().Kind())
	}
}

func TestSelectTemplateInvalid(t *testing.T) {
	c := NewCanvas(nil)
	err := c.SelectTemplate(geometry.Template{Name: "line", Sides: 2})
	if !errors.Is(err, geometry.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
	if c.Mode().Kind() != ModeIdle {
		t.Errorf("invalid template must not change mode, got %v", c.Mode().Kind())
	}
}

func TestSelectTemplateReplacesSelection(t *testing.T) {
	c := NewCanvas(nil)
	place(t, c, pt(0, 0))
	c.OnPointerDown(ButtonPrimary, pt(0, 0))

	if err := c.SelectTemplate(square); err != nil {
		t.Fatalf("SelectTemplate failed: %v", err)
	}
	if _, ok := c.Mode().Selected(); ok {
		t.Error("placement mode and edit mode must be exclusive")
	}
}

func TestPalette(t *testing.T) {
	palette := Palette(DefaultRadius)
	sides := []int{3, 4, 5}
	if len(palette) != len(sides) {
		t.Fatalf("expected %d templates, got %d", len(sides), len(palette))
	}
	for i, tmpl := range palette {
		if tmpl.Sides != sides[i] || tmpl.Radius != DefaultRadius || tmpl.Rotation != 0 {
			t.Errorf("template %d: unexpected %+v", i, tmpl)
		}
		if err := tmpl.Validate(); err != nil {
			t.Errorf("template %d invalid: %v", i, err)
		}
	}
}
