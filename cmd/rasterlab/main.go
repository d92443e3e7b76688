package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rasterlab/internal/config"
	"rasterlab/internal/logging"
	"rasterlab/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the exit code so deferred cleanup runs before the process exits.
func run(args []string) int {
	cfg, err := config.Load(args, os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "rasterlab")
		if err != nil {
			fmt.Fprintln(os.Stderr, "log file:", err)
			return 1
		}
		defer f.Close()
		logging.SetLogger(logging.NewText(f, cfg.Debug))
	}
	logging.L().Info("starting", "size", cfg.Size, "fps", cfg.FPS, "target", cfg.Target)

	if _, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen()).Run(); err != nil {
		logging.L().Error("program exited", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
