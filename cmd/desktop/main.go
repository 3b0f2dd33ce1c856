package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/typedrift/internal/config"
	"github.com/tomz197/typedrift/internal/desktop"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

	settings, err := config.FromEnv()
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	width := config.GetEnvPositiveInt("WINDOW_WIDTH", defaultWidth)
	height := config.GetEnvPositiveInt("WINDOW_HEIGHT", defaultHeight)

	app := desktop.NewApp(width, height, settings.NewPool(), settings.GameOptions()...)

	ebiten.SetWindowTitle("typedrift")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", "width", width, "height", height, "words", len(settings.Vocabulary))
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game error", "err", err)
	}
	logger.Info("game over", "score", app.Game().Score())
}
