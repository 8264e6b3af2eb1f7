package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// Polygon is a map-space polygon as produced by the provider.
type Polygon = orb.Polygon

// A CRS identifies one of the two coordinate systems the app deals in.
type CRS int

const (
	// WGS84 is lon/lat degrees.
	WGS84 CRS = iota
	// WebMercator is the projected map space (EPSG:3857), in meters.
	WebMercator
)

// Provider is the geometry-engine surface the rest of the app relies on.
// Everything behind it is delegated to orb; nothing here implements
// geodetic math itself.
type Provider interface {
	// ProjectPoint converts a point into the target CRS. The input is
	// assumed to be in the other one.
	ProjectPoint(p Point, to CRS) Point
	// ProjectExtent converts both corners of an extent into the target CRS.
	ProjectExtent(e Extent, to CRS) Extent
	// GeodesicBuffer returns a polygon approximating the set of points
	// within radiusMeters of center, measured along the geodesic.
	GeodesicBuffer(center Point, radiusMeters float64) Polygon
	// Contains reports whether p falls inside poly, boundary inclusive.
	Contains(poly Polygon, p Point) bool
	// FormatCoordinate renders a map-space point as human-readable lon/lat.
	FormatCoordinate(p Point, f Format) string
}

const defaultBufferVertices = 90

// Engine is the orb-backed Provider.
type Engine struct {
	// BufferVertices is the ring resolution of GeodesicBuffer.
	BufferVertices int
}

func NewEngine() *Engine {
	return &Engine{BufferVertices: defaultBufferVertices}
}

func (e *Engine) ProjectPoint(p Point, to CRS) Point {
	var q orb.Point
	switch to {
	case WGS84:
		q = project.Mercator.ToWGS84(orb.Point{p.X, p.Y})
	case WebMercator:
		q = project.WGS84.ToMercator(orb.Point{p.X, p.Y})
	default:
		return p
	}
	return Point{X: q[0], Y: q[1]}
}

func (e *Engine) ProjectExtent(ext Extent, to CRS) Extent {
	lo := e.ProjectPoint(Point{X: ext.MinX, Y: ext.MinY}, to)
	hi := e.ProjectPoint(Point{X: ext.MaxX, Y: ext.MaxY}, to)
	return Extent{MinX: lo.X, MinY: lo.Y, MaxX: hi.X, MaxY: hi.Y}
}

// GeodesicBuffer traces the circle in WGS84 with one vertex per bearing
// step and projects the ring back into map space. The ring is closed.
func (e *Engine) GeodesicBuffer(center Point, radiusMeters float64) Polygon {
	n := e.BufferVertices
	if n <= 0 {
		n = defaultBufferVertices
	}
	ll := project.Mercator.ToWGS84(orb.Point{center.X, center.Y})
	ring := make(orb.Ring, 0, n+1)
	for i := 0; i < n; i++ {
		bearing := float64(i) * 360 / float64(n)
		v := orbgeo.PointAtBearingAndDistance(ll, bearing, radiusMeters)
		ring = append(ring, project.WGS84.ToMercator(v))
	}
	ring = append(ring, ring[0])
	return Polygon{ring}
}

func (e *Engine) Contains(poly Polygon, p Point) bool {
	if len(poly) == 0 {
		return false
	}
	return planar.PolygonContains(poly, orb.Point{p.X, p.Y})
}
