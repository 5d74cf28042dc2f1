package viewer

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/layout"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

// RenderIcon draws a palette template filling a size x size icon
func RenderIcon(t geometry.Template, size int, style editor.Style) image.Image {
	return iconPainter(t, size, style).Image()
}

// IconResource renders a palette template as a PNG resource for buttons
func IconResource(t geometry.Template, size int, style editor.Style) (fyne.Resource, error) {
	var buf bytes.Buffer
	if err := iconPainter(t, size, style).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode %s icon: %w", t.Name, err)
	}
	return fyne.NewStaticResource(strings.ToLower(t.Name)+".png", buf.Bytes()), nil
}

func iconPainter(t geometry.Template, size int, style editor.Style) *Painter {
	p := NewPainter(size, size, 1)
	vertices := t.Icon(float64(size), layout.Padding).Vertices()
	p.FillPolygon(vertices, style.Fill)
	p.StrokePolygon(vertices, style.Outline, 1)
	return p
}
