// Package swarm owns the moving point markers and the per-tick logic that
// advances and classifies them.
package swarm

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/geo-buffer-swarm/internal/geo"
)

// A Particle is one moving marker. Position and velocity are map-space;
// Inside is the result of the latest containment classification.
type Particle struct {
	Pos    geo.Point
	Vel    geo.Vector
	Inside bool
}

// A Swarm is the mutable particle set. It is only ever touched from the
// update loop, so there is no locking.
type Swarm struct {
	particles []Particle
	running   bool
	inside    int
	outside   int
}

func New() *Swarm {
	return &Swarm{}
}

func (s *Swarm) Len() int {
	return len(s.particles)
}

// Running reports whether the simulation loop should be ticking.
func (s *Swarm) Running() bool {
	return s.running
}

// Particles exposes the set for drawing. Callers must not hold the slice
// across ticks.
func (s *Swarm) Particles() []Particle {
	return s.particles
}

// Counts returns the inside/outside totals from the latest Classify.
func (s *Swarm) Counts() (inside, outside int) {
	return s.inside, s.outside
}

// Add inserts one particle and marks the swarm running.
func (s *Swarm) Add(pos geo.Point, vel geo.Vector) {
	s.particles = append(s.particles, Particle{Pos: pos, Vel: vel})
	s.running = true
}

// Spawn adds one particle per point with a random heading and a speed
// drawn uniformly from [extent.Width()/1000, extent.Width()/500], and
// marks the swarm running. An empty extent spawns nothing.
func (s *Swarm) Spawn(points []geo.Point, extent geo.Extent, rng *rand.Rand) {
	if extent.IsEmpty() {
		return
	}
	minSpeed := extent.Width() / 1000
	maxSpeed := extent.Width() / 500
	for _, p := range points {
		heading := rng.Float64() * 2 * math.Pi
		speed := minSpeed + rng.Float64()*(maxSpeed-minSpeed)
		s.Add(p, geo.Vector{DX: math.Cos(heading) * speed, DY: math.Sin(heading) * speed})
	}
}

// Clear empties the set and stops the loop.
func (s *Swarm) Clear() {
	s.particles = s.particles[:0]
	s.running = false
	s.inside, s.outside = 0, 0
}

// Step advances every particle by one tick: position += velocity, then the
// velocity component is negated on the axis where the new position left the
// extent. The boundary is reflective, not a clamp, so a particle may sit
// outside by up to one step before heading back in. An empty extent skips
// the whole tick.
func (s *Swarm) Step(extent geo.Extent) {
	if !s.running || extent.IsEmpty() {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		p.Pos.X += p.Vel.DX
		p.Pos.Y += p.Vel.DY
		if p.Pos.X < extent.MinX || p.Pos.X > extent.MaxX {
			p.Vel.DX = -p.Vel.DX
		}
		if p.Pos.Y < extent.MinY || p.Pos.Y > extent.MaxY {
			p.Vel.DY = -p.Vel.DY
		}
	}
}

// Classify recounts containment from scratch and updates every particle's
// Inside flag. A nil predicate means no buffer region exists and everything
// is outside.
func (s *Swarm) Classify(contains func(geo.Point) bool) (inside, outside int) {
	for i := range s.particles {
		p := &s.particles[i]
		p.Inside = contains != nil && contains(p.Pos)
		if p.Inside {
			inside++
		} else {
			outside++
		}
	}
	s.inside, s.outside = inside, outside
	return inside, outside
}
