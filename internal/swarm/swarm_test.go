package swarm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/geo-buffer-swarm/internal/geo"
	"github.com/iburimskiy/geo-buffer-swarm/internal/swarm"
)

func testExtent() geo.Extent {
	return geo.Extent{MinX: 0, MinY: 0, MaxX: 1000, MaxY: 500}
}

func randomPoints(n int, ext geo.Extent, rng *rand.Rand) []geo.Point {
	pts := make([]geo.Point, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, geo.Point{
			X: ext.MinX + rng.Float64()*ext.Width(),
			Y: ext.MinY + rng.Float64()*ext.Height(),
		})
	}
	return pts
}

func TestStepIntegratesVelocity(t *testing.T) {
	s := swarm.New()
	s.Add(geo.Point{X: 100, Y: 100}, geo.Vector{DX: 3, DY: -2})

	s.Step(testExtent())

	p := s.Particles()[0]
	assert.Equal(t, geo.Point{X: 103, Y: 98}, p.Pos)
	assert.Equal(t, geo.Vector{DX: 3, DY: -2}, p.Vel)
}

func TestStepReflectsAtBoundary(t *testing.T) {
	tests := []struct {
		name    string
		pos     geo.Point
		vel     geo.Vector
		wantPos geo.Point
		wantVel geo.Vector
	}{
		{
			name:    "right edge negates dx",
			pos:     geo.Point{X: 998, Y: 250},
			vel:     geo.Vector{DX: 5, DY: 1},
			wantPos: geo.Point{X: 1003, Y: 251},
			wantVel: geo.Vector{DX: -5, DY: 1},
		},
		{
			name:    "left edge negates dx",
			pos:     geo.Point{X: 2, Y: 250},
			vel:     geo.Vector{DX: -5, DY: 0},
			wantPos: geo.Point{X: -3, Y: 250},
			wantVel: geo.Vector{DX: 5, DY: 0},
		},
		{
			name:    "top edge negates dy",
			pos:     geo.Point{X: 500, Y: 499},
			vel:     geo.Vector{DX: 1, DY: 4},
			wantPos: geo.Point{X: 501, Y: 503},
			wantVel: geo.Vector{DX: 1, DY: -4},
		},
		{
			name:    "corner negates both",
			pos:     geo.Point{X: 999, Y: 499},
			vel:     geo.Vector{DX: 3, DY: 3},
			wantPos: geo.Point{X: 1002, Y: 502},
			wantVel: geo.Vector{DX: -3, DY: -3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := swarm.New()
			s.Add(tt.pos, tt.vel)

			s.Step(testExtent())

			p := s.Particles()[0]
			// Reflection, not clamping: the overshoot position survives
			// the tick and the next step heads back in.
			assert.Equal(t, tt.wantPos, p.Pos)
			assert.Equal(t, tt.wantVel, p.Vel)
		})
	}
}

func TestReflectedParticleReenters(t *testing.T) {
	s := swarm.New()
	s.Add(geo.Point{X: 998, Y: 250}, geo.Vector{DX: 5, DY: 0})

	ext := testExtent()
	s.Step(ext) // overshoots to 1003, dx flips
	s.Step(ext) // heads back in

	p := s.Particles()[0]
	assert.Equal(t, 998.0, p.Pos.X)
	assert.True(t, ext.Contains(p.Pos))
}

func TestStepSkippedWithoutExtent(t *testing.T) {
	s := swarm.New()
	s.Add(geo.Point{X: 100, Y: 100}, geo.Vector{DX: 3, DY: 3})

	s.Step(geo.Extent{})

	p := s.Particles()[0]
	assert.Equal(t, geo.Point{X: 100, Y: 100}, p.Pos)
	assert.Equal(t, geo.Vector{DX: 3, DY: 3}, p.Vel)
}

func TestSpawnCountSpeedAndRunning(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ext := testExtent()
	s := swarm.New()

	require.False(t, s.Running())
	s.Spawn(randomPoints(100, ext, rng), ext, rng)

	assert.Equal(t, 100, s.Len())
	assert.True(t, s.Running())

	minSpeed := ext.Width() / 1000
	maxSpeed := ext.Width() / 500
	for _, p := range s.Particles() {
		speed := math.Hypot(p.Vel.DX, p.Vel.DY)
		assert.GreaterOrEqual(t, speed, minSpeed)
		assert.LessOrEqual(t, speed, maxSpeed)
		assert.True(t, ext.Contains(p.Pos))
	}
}

func TestSpawnEmptyExtentIsNoop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := swarm.New()

	s.Spawn(randomPoints(10, testExtent(), rng), geo.Extent{}, rng)

	assert.Zero(t, s.Len())
	assert.False(t, s.Running())
}

func TestClearStopsAndEmpties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ext := testExtent()
	s := swarm.New()
	s.Spawn(randomPoints(50, ext, rng), ext, rng)
	s.Classify(func(geo.Point) bool { return true })

	s.Clear()

	assert.Zero(t, s.Len())
	assert.False(t, s.Running())
	inside, outside := s.Counts()
	assert.Zero(t, inside)
	assert.Zero(t, outside)

	// Step after Clear is a no-op.
	s.Step(ext)
	assert.Zero(t, s.Len())
}

func TestClassifyCounts(t *testing.T) {
	s := swarm.New()
	s.Add(geo.Point{X: 100, Y: 100}, geo.Vector{})
	s.Add(geo.Point{X: 600, Y: 100}, geo.Vector{})
	s.Add(geo.Point{X: 900, Y: 400}, geo.Vector{})

	inside, outside := s.Classify(func(p geo.Point) bool { return p.X > 500 })

	assert.Equal(t, 2, inside)
	assert.Equal(t, 1, outside)
	assert.Equal(t, s.Len(), inside+outside)

	flags := []bool{}
	for _, p := range s.Particles() {
		flags = append(flags, p.Inside)
	}
	assert.Equal(t, []bool{false, true, true}, flags)
}

func TestClassifyWithoutRegionAllOutside(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ext := testExtent()
	s := swarm.New()
	s.Spawn(randomPoints(25, ext, rng), ext, rng)

	inside, outside := s.Classify(nil)

	assert.Zero(t, inside)
	assert.Equal(t, 25, outside)
	for _, p := range s.Particles() {
		assert.False(t, p.Inside)
	}
}
