package game

import (
	"github.com/iburimskiy/geo-buffer-swarm/internal/geo"
)

// Web Mercator world half-width in meters.
const mercatorHalfWorld = 20037508.34

// A Canvas owns the viewport: the map-space extent currently on screen and
// the transforms between screen pixels and map coordinates. Screen Y grows
// downward, map Y grows upward.
type Canvas struct {
	screenW int
	screenH int
	extent  geo.Extent
}

// NewCanvas builds a viewport centered on a map point with the given width
// in map units; the height follows the screen aspect ratio.
func NewCanvas(screenW, screenH int, center geo.Point, spanX float64) *Canvas {
	c := &Canvas{screenW: screenW, screenH: screenH}
	spanY := spanX * float64(screenH) / float64(screenW)
	c.extent = geo.Extent{
		MinX: center.X - spanX/2,
		MinY: center.Y - spanY/2,
		MaxX: center.X + spanX/2,
		MaxY: center.Y + spanY/2,
	}
	return c
}

// Extent returns the current viewport extent. Read once per tick by the
// simulation.
func (c *Canvas) Extent() geo.Extent {
	return c.extent
}

func (c *Canvas) ScreenSize() (int, int) {
	return c.screenW, c.screenH
}

func (c *Canvas) MapToScreen(p geo.Point) (float64, float64) {
	e := c.extent
	sx := (p.X - e.MinX) / e.Width() * float64(c.screenW)
	sy := (e.MaxY - p.Y) / e.Height() * float64(c.screenH)
	return sx, sy
}

func (c *Canvas) ScreenToMap(x, y float64) geo.Point {
	e := c.extent
	return geo.Point{
		X: e.MinX + x/float64(c.screenW)*e.Width(),
		Y: e.MaxY - y/float64(c.screenH)*e.Height(),
	}
}

// Pan shifts the viewport by a pixel delta.
func (c *Canvas) Pan(dxPx, dyPx float64) {
	mx := dxPx * c.extent.Width() / float64(c.screenW)
	my := -dyPx * c.extent.Height() / float64(c.screenH)
	c.extent.MinX += mx
	c.extent.MaxX += mx
	c.extent.MinY += my
	c.extent.MaxY += my
}

// Zoom scales the viewport about its center. factor > 1 zooms out. The
// width is clamped so the viewport never exceeds the Mercator world or
// collapses to nothing.
func (c *Canvas) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	w := c.extent.Width() * factor
	if w > 2*mercatorHalfWorld {
		w = 2 * mercatorHalfWorld
	}
	if w < 100 {
		w = 100
	}
	h := w * float64(c.screenH) / float64(c.screenW)
	ctr := c.extent.Center()
	c.extent = geo.Extent{
		MinX: ctr.X - w/2,
		MinY: ctr.Y - h/2,
		MaxX: ctr.X + w/2,
		MaxY: ctr.Y + h/2,
	}
}
