package config

import (
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultScale = 2
	MinScale     = 1
	MaxScale     = 4
)

// Config holds the application configuration
type Config struct {
	Window  bool   // ebiten window instead of the terminal
	Seed    uint64 // launch RNG seed, 0 picks one from the clock
	Debug   bool
	LogFile string
	Scale   int // window scale factor
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pixbreak", flag.ContinueOnError)

	window := fs.Bool("window", false, "play in a window instead of the terminal")
	seed := fs.Uint64("seed", 0, "random `seed` for the ball launch (0 = time based)")
	debug := fs.Bool("debug", false, "enable debug logging")
	logFile := fs.String("log", "", "write logs to `file`")
	scale := fs.Int("scale", DefaultScale, "window scale factor (1-4)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate scale
	if *scale < MinScale || *scale > MaxScale {
		return nil, fmt.Errorf("scale must be between %d and %d, got %d", MinScale, MaxScale, *scale)
	}

	cfg := &Config{
		Window:  *window,
		Seed:    *seed,
		Debug:   *debug,
		LogFile: *logFile,
		Scale:   *scale,
	}

	return cfg, nil
}
