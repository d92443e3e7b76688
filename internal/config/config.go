// Package config holds the runtime settings of rasterlab.
package config

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"golang.org/x/image/colornames"
)

// Config centralizes the constants that were repeated in every demo program.
type Config struct {
	Size       int        // viewport size in pixel units; shapes are laid out in [0, Size]
	FPS        int        // frame rate of the idle render loop
	Title      string     // header title
	DrawColor  color.RGBA // colour of rasterized points
	ClearColor color.RGBA // canvas background
	LogFile    string     // log destination; empty disables logging
	Debug      bool       // debug-level logging
	Target     string     // demo ID or .shape file to open at start; empty opens the first demo
}

// Default returns the settings the built-in demos are laid out for.
func Default() Config {
	return Config{
		Size:       800,
		FPS:        30,
		Title:      "rasterlab ─ rasterization algorithms",
		DrawColor:  colornames.White,
		ClearColor: colornames.Black,
	}
}

// Load builds a Config from defaults, then environment overrides, then
// command-line flags. getenv is usually os.Getenv.
func Load(args []string, getenv func(string) string, stderr io.Writer) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("rasterlab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: rasterlab [flags] [line-shallow | line-steep | circle | ellipse | file.shape]")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.Size, "size", cfg.Size, "viewport size in pixel units")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frame rate of the render loop")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path (empty disables logging)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug-level logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("config: expected at most one demo or file, got %d", fs.NArg())
	}
	cfg.Target = fs.Arg(0)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("config: size must be > 0, got %d", c.Size)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("config: fps must be in 1..240, got %d", c.FPS)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"RASTERLAB_SIZE", &c.Size},
		{"RASTERLAB_FPS", &c.FPS},
	}
	for _, e := range ints {
		v := getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", e.name, err)
		}
		*e.dst = n
	}
	if v := getenv("RASTERLAB_LOG"); v != "" {
		c.LogFile = v
	}
	return nil
}
