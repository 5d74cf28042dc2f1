package arcade

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

// whiteSubImage is the texture source for solid triangles
var whiteSubImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

// painter draws editor primitives onto an ebiten image, offset by origin
type painter struct {
	dst           *ebiten.Image
	origin        geometry.Point
	width, height float64
}

var _ editor.Painter = (*painter)(nil)

func newPainter(dst *ebiten.Image, r geometry.Rect) *painter {
	return &painter{dst: dst, origin: r.Origin(), width: r.Width, height: r.Height}
}

func (p *painter) Size() (float64, float64) {
	return p.width, p.height
}

func (p *painter) FillRect(r geometry.Rect, c color.RGBA) {
	o := p.at(r.Origin())
	vector.DrawFilledRect(p.dst,
		float32(o.X), float32(o.Y),
		float32(r.Width), float32(r.Height), c, false)
}

func (p *painter) StrokeRect(r geometry.Rect, c color.RGBA, width float64) {
	if width <= 0 {
		return
	}
	o := p.at(r.Origin())
	vector.StrokeRect(p.dst,
		float32(o.X), float32(o.Y),
		float32(r.Width), float32(r.Height), float32(width), c, false)
}

func (p *painter) FillPolygon(points []geometry.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	vs, is := p.path(points).AppendVerticesAndIndicesForFilling(nil, nil)
	p.drawTriangles(vs, is, c)
}

func (p *painter) StrokePolygon(points []geometry.Point, c color.RGBA, width float64) {
	if width <= 0 || len(points) < 2 {
		return
	}
	vs, is := p.path(points).AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	p.drawTriangles(vs, is, c)
}

func (p *painter) path(points []geometry.Point) *vector.Path {
	var path vector.Path
	for i, pt := range points {
		at := p.at(pt)
		x, y := float32(at.X), float32(at.Y)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

// at converts a painter position to a position on dst
func (p *painter) at(pt geometry.Point) geometry.Point {
	return pt.Add(p.origin)
}

func (p *painter) drawTriangles(vs []ebiten.Vertex, is []uint16, c color.RGBA) {
	paintVertices(vs, c)
	p.dst.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// paintVertices sets every vertex to the solid color c sampled from the
// white texture. Vertex colors are straight alpha, c is premultiplied.
func paintVertices(vs []ebiten.Vertex, c color.RGBA) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, b, a := float32(n.R)/0xff, float32(n.G)/0xff, float32(n.B)/0xff, float32(n.A)/0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
