package render

import "fmt"

// StatsBomb pitch markings in pitch units.
const (
	boxDepth      = 18.0
	boxTop        = 18.0
	boxBottom     = 62.0
	sixDepth      = 6.0
	sixTop        = 30.0
	sixBottom     = 50.0
	spotDistance  = 12.0
	circleRadius  = 10.0
	goalTop       = 36.0
	goalBottom    = 44.0
	goalDepth     = 2.0
	arcChordUpper = 32.0
	arcChordLower = 48.0
)

// drawPitch draws the playing surface and its markings.
func (c *canvas) drawPitch(lineColour string) {
	lw := c.scale / 4
	if lw < 1 {
		lw = 1
	}
	c.Gstyle(fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", lineColour, lw))

	c.rect(0, 0, pitchLength, pitchWidth)
	c.line(pitchLength/2, 0, pitchLength/2, pitchWidth)
	c.Circle(c.px(pitchLength/2), c.py(pitchWidth/2), c.size(circleRadius))

	for _, left := range []bool{true, false} {
		x := func(v float64) float64 {
			if left {
				return v
			}
			return pitchLength - v
		}
		c.rectSpan(x(0), boxTop, x(boxDepth), boxBottom)
		c.rectSpan(x(0), sixTop, x(sixDepth), sixBottom)
		c.rectSpan(x(0), goalTop, x(-goalDepth), goalBottom)

		// Arcs run from the upper to the lower chord on the left and the
		// reverse on the right so both bulge away from the goal.
		sy, ey := arcChordUpper, arcChordLower
		if !left {
			sy, ey = ey, sy
		}
		r := c.size(circleRadius)
		c.Arc(c.px(x(boxDepth)), c.py(sy), r, r, 0, false, true, c.px(x(boxDepth)), c.py(ey))
	}
	c.Gend()

	c.Gstyle("fill:" + lineColour)
	dot := c.scale / 2
	if dot < 1 {
		dot = 1
	}
	c.Circle(c.px(pitchLength/2), c.py(pitchWidth/2), dot)
	c.Circle(c.px(spotDistance), c.py(pitchWidth/2), dot)
	c.Circle(c.px(pitchLength-spotDistance), c.py(pitchWidth/2), dot)
	c.Gend()
}

// rectSpan draws a rectangle between two corners given in any order.
func (c *canvas) rectSpan(x0, y0, x1, y1 float64) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	c.rect(x0, y0, x1-x0, y1-y0)
}

func (c *canvas) rect(x, y, w, h float64) {
	c.Rect(c.px(x), c.py(y), c.size(w), c.size(h))
}

func (c *canvas) line(x0, y0, x1, y1 float64, style ...string) {
	c.Line(c.px(x0), c.py(y0), c.px(x1), c.py(y1), style...)
}
