package app

import (
	"flag"
	"fmt"

	"life-ca/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   life.DefaultWidth,
		Height:  life.DefaultHeight,
		Scale:   8,
		TPS:     10,
		Seed:    42,
		Pattern: "default",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board column count")
	fs.IntVar(&c.Height, "height", c.Height, "board row count")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: default or random")
}

// Seeder maps the configured pattern name to a seeding policy.
func (c *Config) Seeder() (life.Seeder, error) {
	switch c.Pattern {
	case "default":
		return life.DefaultPattern, nil
	case "random":
		return life.RandomPattern(c.Seed), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", c.Pattern)
	}
}
