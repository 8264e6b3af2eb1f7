package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/paulmach/orb"

	"github.com/iburimskiy/geo-buffer-swarm/internal/config"
	"github.com/iburimskiy/geo-buffer-swarm/internal/geo"
)

var (
	insideColor  = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	outsideColor = color.RGBA{R: 230, G: 90, B: 60, A: 255}
	overlayColor = color.RGBA{R: 170, G: 150, B: 220, A: 200}
	gridColor    = color.RGBA{R: 45, G: 60, B: 80, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawGraticule(screen)
	g.drawOverlay(screen)
	g.drawRegion(screen)
	g.drawParticles(screen)

	for _, b := range g.buttons {
		b.draw(screen)
	}

	g.drawStatus(screen)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 20, B: 30, A: 255})
	// Faint depth gradient toward the bottom of the map.
	h := config.WindowHeight
	for y := 0; y < h; y += 4 {
		ratio := float64(y) / float64(h)
		c := color.RGBA{
			R: uint8(14 + 8*ratio),
			G: uint8(20 + 10*ratio),
			B: uint8(30 + 18*ratio),
			A: 255,
		}
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 4, c, false)
	}
}

// drawGraticule draws the basemap: a lon/lat grid every 10 degrees,
// clipped to the visible extent. Latitudes stop at the Mercator limits.
func (g *Game) drawGraticule(screen *ebiten.Image) {
	ext := g.canvas.Extent()
	if ext.IsEmpty() {
		return
	}
	ll := g.prov.ProjectExtent(ext, geo.WGS84)

	for lon := -180.0; lon <= 180.0; lon += 10 {
		if lon < ll.MinX-10 || lon > ll.MaxX+10 {
			continue
		}
		p := g.prov.ProjectPoint(geo.Point{X: lon, Y: 0}, geo.WebMercator)
		sx, _ := g.canvas.MapToScreen(geo.Point{X: p.X, Y: ext.MinY})
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), config.WindowHeight, 1, gridColor, false)
	}
	for lat := -80.0; lat <= 80.0; lat += 10 {
		if lat < ll.MinY-10 || lat > ll.MaxY+10 {
			continue
		}
		p := g.prov.ProjectPoint(geo.Point{X: 0, Y: lat}, geo.WebMercator)
		_, sy := g.canvas.MapToScreen(geo.Point{X: ext.MinX, Y: p.Y})
		vector.StrokeLine(screen, 0, float32(sy), config.WindowWidth, float32(sy), 1, gridColor, false)
	}

	// Equator and prime meridian a touch brighter.
	axis := color.RGBA{R: 60, G: 80, B: 105, A: 255}
	if eq := g.prov.ProjectPoint(geo.Point{X: 0, Y: 0}, geo.WebMercator); ext.MinY <= eq.Y && eq.Y <= ext.MaxY {
		_, sy := g.canvas.MapToScreen(geo.Point{X: ext.MinX, Y: eq.Y})
		vector.StrokeLine(screen, 0, float32(sy), config.WindowWidth, float32(sy), 1, axis, false)
	}
	if ext.MinX <= 0 && 0 <= ext.MaxX {
		sx, _ := g.canvas.MapToScreen(geo.Point{X: 0, Y: ext.MinY})
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), config.WindowHeight, 1, axis, false)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	if g.overlay == nil {
		return
	}
	for _, geom := range g.overlay.geometries {
		g.drawGeometry(screen, geom)
	}
}

func (g *Game) drawGeometry(screen *ebiten.Image, geom orb.Geometry) {
	switch v := geom.(type) {
	case orb.Point:
		sx, sy := g.canvas.MapToScreen(geo.Point{X: v[0], Y: v[1]})
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 3, overlayColor, false)
	case orb.MultiPoint:
		for _, p := range v {
			g.drawGeometry(screen, p)
		}
	case orb.LineString:
		g.strokeLineString(screen, v, overlayColor)
	case orb.MultiLineString:
		for _, ls := range v {
			g.strokeLineString(screen, ls, overlayColor)
		}
	case orb.Ring:
		g.strokeLineString(screen, orb.LineString(v), overlayColor)
	case orb.Polygon:
		for _, ring := range v {
			g.strokeLineString(screen, orb.LineString(ring), overlayColor)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			g.drawGeometry(screen, poly)
		}
	case orb.Collection:
		for _, sub := range v {
			g.drawGeometry(screen, sub)
		}
	}
}

func (g *Game) strokeLineString(screen *ebiten.Image, ls orb.LineString, c color.Color) {
	for i := 1; i < len(ls); i++ {
		x1, y1 := g.canvas.MapToScreen(geo.Point{X: ls[i-1][0], Y: ls[i-1][1]})
		x2, y2 := g.canvas.MapToScreen(geo.Point{X: ls[i][0], Y: ls[i][1]})
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 2, c, false)
	}
}

// drawRegion strokes the buffer ring with a slowly cycling hue plus a small
// center marker.
func (g *Game) drawRegion(screen *ebiten.Image) {
	if g.region == nil {
		return
	}
	poly := g.region.Polygon()
	if len(poly) == 0 {
		return
	}

	hue := math.Mod(g.colorPhase*360, 360)
	ringColor := hsvColor(hue, 0.5, 0.95)
	for _, ring := range poly {
		g.strokeLineString(screen, orb.LineString(ring), ringColor)
	}

	cx, cy := g.canvas.MapToScreen(g.region.Center())
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 4, color.White, false)
	vector.StrokeCircle(screen, float32(cx), float32(cy), 7, 1, ringColor, false)
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.swarm.Particles() {
		sx, sy := g.canvas.MapToScreen(p.Pos)
		c := outsideColor
		if p.Inside {
			c = insideColor
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), 3, c, false)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	inside, outside := g.swarm.Counts()
	elapsed := time.Duration(g.simTicks) * time.Second / config.SimHz

	status := fmt.Sprintf("particles: %d  inside: %d  outside: %d  t: %s",
		g.swarm.Len(), inside, outside, formatElapsed(elapsed))
	if g.paused {
		status += "  [paused - Space to resume]"
	} else if !g.swarm.Running() {
		status += "  [Spawn to start, tap the map to place a buffer]"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.WindowHeight-20)

	if g.coordLabel != "" {
		ebitenutil.DebugPrintAt(screen, g.coordLabel, 12, config.WindowHeight-36)
	}
}
