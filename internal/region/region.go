// Package region holds the single user-chosen buffer region.
package region

import (
	"math"

	"github.com/iburimskiy/geo-buffer-swarm/internal/geo"
)

// A Region is the one live buffer polygon. At most one exists at a time;
// "no buffer" is a nil *Region. A tap replaces the region wholesale at the
// call site, a drag mutates it in place via Update so its identity is
// stable for the duration of the gesture.
type Region struct {
	center   geo.Point
	fraction float64
	radius   float64
	polygon  geo.Polygon
}

// New builds a region centered on a map point. The radius is
// fraction × min(viewport width, viewport height) / 2, in the viewport's
// projected linear unit.
func New(prov geo.Provider, center geo.Point, fraction float64, viewport geo.Extent) *Region {
	r := &Region{fraction: fraction}
	r.rebuild(prov, center, viewport)
	return r
}

// Update moves the region to a new center, recomputing radius and polygon
// in place.
func (r *Region) Update(prov geo.Provider, center geo.Point, viewport geo.Extent) {
	r.rebuild(prov, center, viewport)
}

func (r *Region) rebuild(prov geo.Provider, center geo.Point, viewport geo.Extent) {
	if viewport.IsEmpty() {
		return
	}
	r.center = center
	r.radius = r.fraction * math.Min(viewport.Width(), viewport.Height()) / 2
	r.polygon = prov.GeodesicBuffer(center, r.radius)
}

// Contains reports whether p falls inside the region. A nil region
// contains nothing.
func (r *Region) Contains(prov geo.Provider, p geo.Point) bool {
	if r == nil {
		return false
	}
	return prov.Contains(r.polygon, p)
}

func (r *Region) Center() geo.Point {
	return r.center
}

func (r *Region) Radius() float64 {
	return r.radius
}

func (r *Region) Polygon() geo.Polygon {
	return r.polygon
}
