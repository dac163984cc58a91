package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/pixbreak/internal/app"
	"github.com/diegok/pixbreak/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pixbreak [options]               Play in the terminal")
	fmt.Fprintln(os.Stderr, "  pixbreak --window [options]      Play in a window")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Launch seed (default: time based)")
	fmt.Fprintln(os.Stderr, "  --scale <n>         Window scale 1-4 (default: 2)")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write logs to file")
	fmt.Fprintln(os.Stderr, "  --debug             Debug logging")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  ←/→ or a/d move, space launch, ↓ stop, enter restart, q quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pixbreak --seed 42")
	fmt.Fprintln(os.Stderr, "  pixbreak --window --scale 3 --log pixbreak.log --debug")
}
