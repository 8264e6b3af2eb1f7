package region_test

import (
	"testing"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/geo-buffer-swarm/internal/geo"
	"github.com/iburimskiy/geo-buffer-swarm/internal/region"
)

// A viewport near the equator: 2000 x 1000 km in map units.
func testViewport() geo.Extent {
	return geo.Extent{MinX: -1e6, MinY: -5e5, MaxX: 1e6, MaxY: 5e5}
}

func TestRadiusFromFraction(t *testing.T) {
	eng := geo.NewEngine()
	vp := testViewport()
	center := vp.Center()

	r := region.New(eng, center, 0.5, vp)

	// fraction x min(width, height) / 2
	assert.InDelta(t, 0.5*1e6/2, r.Radius(), 1e-9)
}

func TestRadiusScalesLinearlyWithFraction(t *testing.T) {
	eng := geo.NewEngine()
	vp := testViewport()
	center := vp.Center()

	small := region.New(eng, center, 0.25, vp)
	large := region.New(eng, center, 0.5, vp)

	assert.InDelta(t, 2*small.Radius(), large.Radius(), 1e-9)
}

func TestBufferIsGeodesic(t *testing.T) {
	eng := geo.NewEngine()
	vp := testViewport()
	center := geo.Point{X: 2e5, Y: 1e5}

	r := region.New(eng, center, 0.5, vp)
	poly := r.Polygon()
	require.Len(t, poly, 1)

	centerLL := eng.ProjectPoint(center, geo.WGS84)
	for _, v := range poly[0] {
		vLL := eng.ProjectPoint(geo.Point{X: v[0], Y: v[1]}, geo.WGS84)
		d := orbgeo.Distance(orb.Point{centerLL.X, centerLL.Y}, orb.Point{vLL.X, vLL.Y})
		assert.InEpsilon(t, r.Radius(), d, 0.01)
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	eng := geo.NewEngine()
	vp := testViewport()

	r := region.New(eng, geo.Point{X: 0, Y: 0}, 0.5, vp)
	before := r
	oldCenter := r.Center()

	r.Update(eng, geo.Point{X: 3e5, Y: -1e5}, vp)

	assert.Same(t, before, r)
	assert.NotEqual(t, oldCenter, r.Center())
	assert.Equal(t, geo.Point{X: 3e5, Y: -1e5}, r.Center())
}

func TestTapReplacesRegion(t *testing.T) {
	eng := geo.NewEngine()
	vp := testViewport()

	first := region.New(eng, geo.Point{X: 0, Y: 0}, 0.5, vp)
	second := region.New(eng, geo.Point{X: 1e5, Y: 0}, 0.5, vp)

	assert.NotSame(t, first, second)
}

func TestContains(t *testing.T) {
	eng := geo.NewEngine()
	vp := testViewport()
	center := geo.Point{X: 0, Y: 0}

	r := region.New(eng, center, 0.5, vp)

	assert.True(t, r.Contains(eng, center))
	assert.True(t, r.Contains(eng, geo.Point{X: center.X + r.Radius()/2, Y: center.Y}))
	assert.False(t, r.Contains(eng, geo.Point{X: center.X + 3*r.Radius(), Y: center.Y}))
}

func TestNilRegionContainsNothing(t *testing.T) {
	eng := geo.NewEngine()
	var r *region.Region

	assert.False(t, r.Contains(eng, geo.Point{X: 0, Y: 0}))
}

func TestEmptyViewportSkipsRebuild(t *testing.T) {
	eng := geo.NewEngine()

	r := region.New(eng, geo.Point{X: 0, Y: 0}, 0.5, geo.Extent{})

	assert.Zero(t, r.Radius())
	assert.Empty(t, r.Polygon())
	assert.False(t, r.Contains(eng, geo.Point{X: 0, Y: 0}))
}
