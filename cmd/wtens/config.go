package main

import (
	"flag"
	"fmt"
)

// Config holds command line configuration.
type Config struct {
	Command string
	Size    int
	Seed    uint64
	Backend string
}

// Supported values for Config.Backend.
const (
	backendCPU       = "cpu"
	backendReference = "reference"
)

// ParseConfig parses command line arguments into a Config.
func ParseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("wtens", flag.ContinueOnError)
	cfg := &Config{}
	fs.IntVar(&cfg.Size, "n", 3, "extent of each tensor axis")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	fs.StringVar(&cfg.Backend, "backend", backendCPU, "compute backend: cpu or reference")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		cfg.Command = fs.Arg(0)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Command {
	case "version", "eigen", "contract":
	case "":
		return fmt.Errorf("missing command (version, eigen, contract)")
	default:
		return fmt.Errorf("unknown command %q", c.Command)
	}

	if c.Size <= 0 {
		return fmt.Errorf("size must be positive")
	}

	if c.Backend != backendCPU && c.Backend != backendReference {
		return fmt.Errorf("backend must be %q or %q", backendCPU, backendReference)
	}

	return nil
}
