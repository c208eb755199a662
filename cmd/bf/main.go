// Command bf is a thin reference entrypoint wiring internal/config into
// internal/bf's tape machine: it runs the given file as Brainfuck program
// text, with internal/sysgw's gateway in extended mode. It does not compile
// SIL. It is not a tested deliverable: every behavior it exercises is
// covered in the packages it wires together.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/tinyrange/bfx/internal/bf"
	"github.com/tinyrange/bfx/internal/config"
	"github.com/tinyrange/bfx/internal/sysgw"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bf: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a YAML config file (mode, memory_limit, test_mode)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: bf [-config path] <program.bf>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		return errors.New("exactly one program file required")
	}

	cfg := &config.Config{ModeName: "base"}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	opts := cfg.MachineOptions()
	if mode == bf.ModeExtended {
		gwOpts := []sysgw.Option{}
		if cfg.TestMode {
			gwOpts = append(gwOpts, sysgw.TestMode())
		}
		gw, err := sysgw.New(runtime.GOOS, runtime.GOARCH, gwOpts...)
		if err != nil {
			return fmt.Errorf("building syscall gateway: %w", err)
		}
		opts = append(opts, bf.WithGateway(gw))
	}

	slog.Info("bf: running program", "file", args[0], "mode", mode)
	m := bf.New(string(source), mode, opts...)
	return m.Run(context.Background())
}
