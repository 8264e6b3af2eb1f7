package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Button dimensions
	ButtonWidth  = 110
	ButtonHeight = 36
	ButtonX      = 20
	ButtonY      = 20
	ButtonGap    = 10

	// Simulation parameters
	SimHz                 = 30
	DefaultParticleCount  = 100
	DefaultBufferFraction = 0.5
	BufferVertices        = 90

	// Viewport controls
	PanStepPx       = 24
	ZoomStep        = 0.1
	ColorShiftSpeed = 0.01

	// Start view (central Europe, wide)
	DefaultStartLon    = 10.0
	DefaultStartLat    = 48.0
	DefaultStartSpanKm = 2000.0
)

// Settings are the runtime-tunable knobs, loaded from the environment
// (optionally seeded from a .env file) with sane defaults.
type Settings struct {
	ParticleCount  int
	BufferFraction float64
	SoundEnabled   bool
	StartLon       float64
	StartLat       float64
	StartSpanKm    float64
}

// Load reads settings from the environment. Unset or malformed variables
// fall back to the defaults.
func Load() Settings {
	_ = godotenv.Load(".env")

	s := Settings{
		ParticleCount:  DefaultParticleCount,
		BufferFraction: DefaultBufferFraction,
		SoundEnabled:   true,
		StartLon:       DefaultStartLon,
		StartLat:       DefaultStartLat,
		StartSpanKm:    DefaultStartSpanKm,
	}
	if v := os.Getenv("PARTICLE_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.ParticleCount = n
		}
	}
	if v := os.Getenv("BUFFER_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			s.BufferFraction = f
		}
	}
	if v := os.Getenv("SOUND"); v != "" {
		s.SoundEnabled = !strings.EqualFold(v, "off") && v != "0"
	}
	if v := os.Getenv("START_LON"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= -180 && f <= 180 {
			s.StartLon = f
		}
	}
	if v := os.Getenv("START_LAT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= -85 && f <= 85 {
			s.StartLat = f
		}
	}
	if v := os.Getenv("START_SPAN_KM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			s.StartSpanKm = f
		}
	}
	return s
}
