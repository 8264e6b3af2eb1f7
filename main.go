package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/geo-buffer-swarm/internal/config"
	"github.com/iburimskiy/geo-buffer-swarm/internal/game"
	"github.com/iburimskiy/geo-buffer-swarm/internal/logger"
)

func main() {
	cfg := config.Load()
	l := logger.Setup()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Geodesic Buffer Swarm - tap/drag to place buffer, Space: pause, Esc/Q: quit")

	l.Info("start",
		"particles", cfg.ParticleCount,
		"buffer_fraction", cfg.BufferFraction,
		"sound", cfg.SoundEnabled,
	)

	if err := ebiten.RunGame(game.New(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		l.Error("run_error", "err", err)
		os.Exit(1)
	}
}
