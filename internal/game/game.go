// Package game wires input, the simulation and the geometry provider into
// an ebiten screen.
package game

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/geo-buffer-swarm/internal/config"
	"github.com/iburimskiy/geo-buffer-swarm/internal/geo"
	"github.com/iburimskiy/geo-buffer-swarm/internal/logger"
	"github.com/iburimskiy/geo-buffer-swarm/internal/region"
	"github.com/iburimskiy/geo-buffer-swarm/internal/swarm"
)

// Game is the single screen. Everything is mutated from Update on the UI
// goroutine; ticks and input events interleave, never overlap.
type Game struct {
	cfg    config.Settings
	prov   geo.Provider
	canvas *Canvas
	swarm  *swarm.Swarm
	region *region.Region

	rng   *rand.Rand
	sound *soundCue

	overlay *overlay

	// simulation cadence: sim ticks run at config.SimHz, decoupled from
	// ebiten's update rate
	updateTick int
	simTicks   int
	paused     bool

	// buffer drag gesture in progress
	dragging bool

	coordLabel string
	colorPhase float64
	lastErr    error

	buttons []*button

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func New(cfg config.Settings) *Game {
	prov := &geo.Engine{BufferVertices: config.BufferVertices}
	start := prov.ProjectPoint(geo.Point{X: cfg.StartLon, Y: cfg.StartLat}, geo.WebMercator)

	g := &Game{
		cfg:     cfg,
		prov:    prov,
		canvas:  NewCanvas(config.WindowWidth, config.WindowHeight, start, cfg.StartSpanKm*1000),
		swarm:   swarm.New(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		sound:   newSoundCue(cfg.SoundEnabled),
		prevKey: map[ebiten.Key]bool{},
	}
	g.cfg.BufferFraction = clamp01(g.cfg.BufferFraction)

	bx, by := config.ButtonX, config.ButtonY
	step := config.ButtonWidth + config.ButtonGap
	g.buttons = []*button{
		{x: bx, y: by, w: config.ButtonWidth, h: config.ButtonHeight, label: "Spawn", onClick: g.spawnParticles},
		{x: bx + step, y: by, w: config.ButtonWidth, h: config.ButtonHeight, label: "Clear", onClick: g.clearParticles},
		{x: bx + 2*step, y: by, w: config.ButtonWidth, h: config.ButtonHeight, label: "Overlay...", onClick: func() {
			if err := g.openOverlayDialog(); err != nil {
				g.lastErr = err
				logger.L().Warn("overlay_load_failed", "err", err)
			}
		}},
	}
	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	overUI := false
	for _, b := range g.buttons {
		if b.update(mouseX, mouseY) {
			overUI = true
		}
	}

	g.handleViewportInput()
	g.handleBufferInput(mouseX, mouseY, overUI)

	g.colorPhase += config.ColorShiftSpeed

	// Sim cadence: ebiten updates at 60 TPS, the simulation steps at SimHz.
	g.updateTick++
	every := ebiten.TPS() / config.SimHz
	if every < 1 {
		every = 1
	}
	if !g.paused && g.swarm.Running() && g.updateTick%every == 0 {
		ext := g.canvas.Extent()
		if !ext.IsEmpty() {
			g.swarm.Step(ext)
			g.simTicks++
		}
		g.classify()
	}

	return nil
}

// handleViewportInput pans with the arrow keys and zooms with the wheel.
func (g *Game) handleViewportInput() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.canvas.Pan(-config.PanStepPx, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.canvas.Pan(config.PanStepPx, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.canvas.Pan(0, -config.PanStepPx)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.canvas.Pan(0, config.PanStepPx)
	}
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.canvas.Zoom(1 - wheelY*config.ZoomStep)
	}
}

// handleBufferInput turns a tap into a fresh buffer region and a drag into
// in-place updates of the existing one.
func (g *Game) handleBufferInput(mouseX, mouseY int, overUI bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !overUI {
		ext := g.canvas.Extent()
		if ext.IsEmpty() {
			return
		}
		pt := g.canvas.ScreenToMap(float64(mouseX), float64(mouseY))
		g.region = region.New(g.prov, pt, g.cfg.BufferFraction, ext)
		g.dragging = true
		g.coordLabel = g.prov.FormatCoordinate(pt, geo.FormatDMS)
		g.sound.play(660)
		g.classify()
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if g.dragging && g.region != nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		ext := g.canvas.Extent()
		if ext.IsEmpty() {
			return
		}
		pt := g.canvas.ScreenToMap(float64(mouseX), float64(mouseY))
		g.region.Update(g.prov, pt, ext)
		g.coordLabel = g.prov.FormatCoordinate(pt, geo.FormatDMS)
		g.classify()
	}
}

// classify runs the full inside/outside recount against the current region.
func (g *Game) classify() {
	var pred func(geo.Point) bool
	if g.region != nil {
		r := g.region
		pred = func(p geo.Point) bool { return r.Contains(g.prov, p) }
	}
	g.swarm.Classify(pred)
}

func (g *Game) spawnParticles() {
	ext := g.canvas.Extent()
	if ext.IsEmpty() {
		return
	}
	w, h := g.canvas.ScreenSize()
	points := make([]geo.Point, 0, g.cfg.ParticleCount)
	for i := 0; i < g.cfg.ParticleCount; i++ {
		points = append(points, g.canvas.ScreenToMap(g.rng.Float64()*float64(w), g.rng.Float64()*float64(h)))
	}
	g.swarm.Spawn(points, ext, g.rng)
	g.classify()
	g.sound.play(880)
	logger.L().Debug("spawn", "count", g.cfg.ParticleCount, "total", g.swarm.Len())
}

func (g *Game) clearParticles() {
	g.swarm.Clear()
	g.simTicks = 0
	logger.L().Debug("clear")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
