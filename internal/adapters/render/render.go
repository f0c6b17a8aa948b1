// Package render draws encoded passing networks as SVG pitch diagrams.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/okian/passnet/internal/domain/colours"
	"github.com/okian/passnet/internal/domain/network"
	"github.com/okian/passnet/internal/domain/types"
)

// Defaults.
const (
	DefaultPitchColour = "#0E1117"
	DefaultLineColour  = "white"
	DefaultScale       = 8
)

const (
	pitchLength = network.PitchLength
	pitchWidth  = network.PitchWidth

	// margin around the pitch and height of the title band, in pitch units.
	margin     = 4.0
	titleBand  = 6.0
	baseScale  = 8.0
	markerFill = "white"
	markerEdge = "black"
)

// Renderer writes one standalone SVG document per team network.
type Renderer struct {
	pitchColour string
	lineColour  string
	scale       int
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		pitchColour: DefaultPitchColour,
		lineColour:  DefaultLineColour,
		scale:       DefaultScale,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the pixel dimensions of a rendered document.
func (r *Renderer) Size() (width, height int) {
	s := float64(r.scale)
	return int(math.Round((pitchLength + 2*margin) * s)),
		int(math.Round((pitchWidth + 2*margin + titleBand) * s))
}

// Render draws net in the team colour. Links are drawn first so markers
// and labels sit on top. The title is placed left for the home side and
// right for the away side.
func (r *Renderer) Render(w io.Writer, net network.Network, colour string, side types.Side) error {
	for _, c := range []string{r.pitchColour, r.lineColour, colour} {
		if _, err := colours.RGBA(c); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidColour, c)
		}
	}

	ew := &errWriter{w: w}
	c := r.canvas(ew)
	width, height := r.Size()

	c.Start(width, height)
	c.Title(net.Team)
	c.Rect(0, 0, width, height, "fill:"+r.pitchColour)
	c.drawTitle(net.Team, side, r.lineColour)

	c.drawPitch(r.lineColour)

	c.Gstyle("stroke-linecap:round")
	for _, l := range net.Links {
		rgba, err := colours.WithAlpha(colour, l.Alpha)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidColour, colour)
		}
		c.line(l.X0, l.Y0, l.X1, l.Y1, fmt.Sprintf("stroke:%s;stroke-opacity:%.3f;stroke-width:%.2f",
			colours.Hex(rgba), l.Alpha, c.stroke(l.Width)))
	}
	c.Gend()

	edge := c.stroke(1)
	c.Gstyle(fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%.2f", markerFill, markerEdge, edge))
	for _, p := range net.Players {
		c.Circle(c.px(p.X), c.py(p.Y), c.radius(p.MarkerSize))
	}
	c.Gend()

	c.Gstyle(fmt.Sprintf("fill:%s;font-family:sans-serif;font-weight:bold;font-size:%dpx;text-anchor:middle",
		markerEdge, c.fontSize()))
	for _, p := range net.Players {
		// An unknown jersey number renders as an empty label.
		c.Text(c.px(p.X), c.py(p.Y)+c.fontSize()/3, p.Label())
	}
	c.Gend()

	c.End()
	return ew.err
}

func (r *Renderer) canvas(w io.Writer) *canvas {
	s := float64(r.scale)
	return &canvas{
		SVG:   svg.New(w),
		scale: r.scale,
		ox:    margin * s,
		oy:    (margin + titleBand) * s,
	}
}

// canvas maps pitch units onto pixel coordinates.
type canvas struct {
	*svg.SVG
	scale  int
	ox, oy float64
}

func (c *canvas) px(x float64) int { return int(math.Round(c.ox + x*float64(c.scale))) }
func (c *canvas) py(y float64) int { return int(math.Round(c.oy + y*float64(c.scale))) }

func (c *canvas) size(v float64) int { return int(math.Round(v * float64(c.scale))) }

// stroke converts a line width in points to pixels. Fractional widths are
// kept so small scales still separate link weights.
func (c *canvas) stroke(width float64) float64 {
	return width * float64(c.scale) / baseScale
}

// radius converts a marker area in points squared to a pixel radius.
func (c *canvas) radius(markerSize float64) int {
	px := int(math.Round(math.Sqrt(markerSize) / 2 * float64(c.scale) / baseScale))
	if px < 1 {
		return 1
	}
	return px
}

func (c *canvas) fontSize() int {
	fs := int(math.Round(1.5 * float64(c.scale)))
	if fs < 6 {
		return 6
	}
	return fs
}

func (c *canvas) drawTitle(team string, side types.Side, colour string) {
	anchor, x := "start", c.px(0)
	if side == types.Away {
		anchor, x = "end", c.px(pitchLength)
	}
	y := int(math.Round((margin + titleBand/2) * float64(c.scale)))
	c.Text(x, y, team, fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%dpx;text-anchor:%s",
		colour, 2*c.fontSize(), anchor))
}

// errWriter keeps the first write error so the document can be written
// without checking every element.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
