// Package config loads the toolchain's machine knobs (execution mode,
// memory limit, test mode) from a YAML file, following the loaded-config-
// struct shape of tinyrange-cc's cmd/ccapp/site_config.go and
// internal/bundle/bundle.go, parsed with gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"

	"github.com/tinyrange/bfx/internal/bf"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape:
//
//	mode: extended        # base | extended
//	memory_limit: 65536    # cells; 0 = unbounded (auto-grow only)
//	test_mode: false        # deny socket-class syscalls
type Config struct {
	ModeName    string `yaml:"mode"`
	MemoryLimit int    `yaml:"memory_limit"`
	TestMode    bool   `yaml:"test_mode"`
}

// Load reads and unmarshals the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c := &Config{ModeName: "base"}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if _, err := c.Mode(); err != nil {
		return nil, err
	}
	return c, nil
}

// Mode translates ModeName into a bf.Mode.
func (c *Config) Mode() (bf.Mode, error) {
	switch c.ModeName {
	case "", "base":
		return bf.ModeBase, nil
	case "extended":
		return bf.ModeExtended, nil
	default:
		return 0, fmt.Errorf("config: unknown mode %q (want %q or %q)", c.ModeName, "base", "extended")
	}
}

// MachineOptions translates the loaded config into bf.Option values ready
// to pass to bf.New. It does not set a gateway: extended mode callers are
// expected to append bf.WithGateway themselves once they've built one,
// since the gateway's platform and test-mode wiring lives one level up
// from what a Config file can express.
func (c *Config) MachineOptions() []bf.Option {
	var opts []bf.Option
	if c.MemoryLimit > 0 {
		opts = append(opts, bf.WithMemoryLimit(c.MemoryLimit))
	}
	return opts
}
