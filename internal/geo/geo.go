// Package geo holds the map-space primitives shared by the simulation and
// the canvas, plus the geometry provider that delegates buffering,
// containment, projection and coordinate formatting to an external engine.
package geo

// A Point is a map-space (Web Mercator, EPSG:3857) coordinate in meters.
type Point struct {
	X float64
	Y float64
}

// A Vector is a per-tick displacement in map units.
type Vector struct {
	DX float64
	DY float64
}

// An Extent is an axis-aligned map-space rectangle.
type Extent struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (e Extent) Width() float64 {
	return e.MaxX - e.MinX
}

func (e Extent) Height() float64 {
	return e.MaxY - e.MinY
}

// IsEmpty reports whether the extent cannot hold any point. The zero Extent
// is empty, which is how an unavailable viewport is represented.
func (e Extent) IsEmpty() bool {
	return e.Width() <= 0 || e.Height() <= 0
}

func (e Extent) Contains(p Point) bool {
	return p.X >= e.MinX && p.X <= e.MaxX && p.Y >= e.MinY && p.Y <= e.MaxY
}

func (e Extent) Center() Point {
	return Point{X: (e.MinX + e.MaxX) / 2, Y: (e.MinY + e.MaxY) / 2}
}
