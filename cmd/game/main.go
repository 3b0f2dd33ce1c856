package main

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tomz197/typedrift/internal/config"
	"github.com/tomz197/typedrift/internal/loop/client"
	"github.com/tomz197/typedrift/internal/loop/server"
)

func main() {
	// Logs would corrupt the game screen, so they go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("TYPEDRIFT_LOG", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			config.NewLogger(os.Stderr, "game").Fatal("failed to open log file", "path", path, "err", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")
	fail := config.NewLogger(os.Stderr, "game")

	settings, err := config.FromEnv()
	if err != nil {
		fail.Fatal("failed to load settings", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fail.Fatal("failed to enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	hub := server.NewServer(logger)
	c := client.NewClient(hub, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username:    config.GetEnv("USER", "player"),
		Renderer:    lipgloss.NewRenderer(os.Stdout),
		Vocabulary:  settings.Vocabulary,
		GameOptions: settings.GameOptions(),
		TickRate:    settings.TickRate,
	})
	if err := c.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fail.Fatal("game error", "err", err)
	}

	best := 0
	if top := hub.TopScores(); len(top) > 0 {
		best = top[0].Score
	}
	logger.Info("session ended", "best", best)
}
