package app

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"mad-life/internal/core"
	"mad-life/internal/sims/life"
)

// Defaults for the startup grid and playback.
const (
	DefaultWidth   = 64
	DefaultHeight  = 40
	DefaultScale   = 12
	DefaultSpacing = 2
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   float64
	Spacing float64
	TPS     int
	Seed    int64
	Soup    float64
	Scene   string
	Edit    string
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Scale:   DefaultScale,
		Spacing: DefaultSpacing,
		TPS:     core.DefaultTPS,
		Seed:    42,
		Scene:   "default",
		Edit:    EditAsymmetric.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.Float64Var(&c.Spacing, "spacing", c.Spacing, "gap between cells in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "maximum generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Soup, "soup", c.Soup, "fill the grid randomly with this density (0 disables)")
	fs.StringVar(&c.Scene, "scene", c.Scene, "startup scene: default, empty, or comma-separated pattern@x:y list")
	fs.StringVar(&c.Edit, "edit", c.Edit, "edit policy: asymmetric, paused or always")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log state changes")
}

// Validate reports the first configuration problem, if any.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, core.ErrInvalidSize)
	}
	if c.Scale < MinScale || c.Scale > MaxScale {
		return fmt.Errorf("scale %v outside [%d,%d]", c.Scale, MinScale, MaxScale)
	}
	if c.Spacing < MinSpacing || c.Spacing > MaxSpacing {
		return fmt.Errorf("spacing %v outside [%d,%d]", c.Spacing, MinSpacing, MaxSpacing)
	}
	if c.TPS < MinTPS || c.TPS > MaxTPS {
		return fmt.Errorf("tps %d outside [%d,%d]", c.TPS, MinTPS, MaxTPS)
	}
	if c.Soup < 0 || c.Soup > 1 {
		return fmt.Errorf("soup density %v outside [0,1]", c.Soup)
	}
	if _, err := ParseEditPolicy(c.Edit); err != nil {
		return err
	}
	if _, err := ParseScene(c.Scene); err != nil {
		return err
	}
	return nil
}

// ParseScene turns a -scene value into placements. "default" is the built-in
// scene, "empty" or "" places nothing, anything else is a comma-separated
// list of name@x:y entries.
func ParseScene(s string) ([]life.Placement, error) {
	switch s {
	case "default":
		return life.DefaultScene, nil
	case "", "empty":
		return nil, nil
	}
	var out []life.Placement
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		var pl life.Placement
		name, pos, ok := strings.Cut(part, "@")
		if !ok {
			return nil, fmt.Errorf("scene entry %q: want name@x:y", part)
		}
		if _, err := fmt.Sscanf(pos, "%d:%d", &pl.X, &pl.Y); err != nil {
			return nil, fmt.Errorf("scene entry %q: %w", part, err)
		}
		if _, known := life.Lookup(name); !known {
			return nil, fmt.Errorf("scene entry %q: unknown pattern %q", part, name)
		}
		pl.Pattern = name
		out = append(out, pl)
	}
	return out, nil
}

// Build creates the grid, seeds it and wraps it in a Loop. logger may be nil.
func (c *Config) Build(logger *log.Logger) (*Loop, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	l, err := life.New(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	if c.Soup > 0 {
		l.Randomize(c.Seed, c.Soup)
	}
	scene, _ := ParseScene(c.Scene)
	if err := life.Seed(l, scene...); err != nil {
		if !errors.Is(err, core.ErrOutOfBounds) {
			return nil, err
		}
		return nil, fmt.Errorf("scene %q does not fit a %dx%d grid: %w", c.Scene, c.Width, c.Height, err)
	}
	policy, _ := ParseEditPolicy(c.Edit)
	sched := core.NewScheduler(c.TPS)
	ctrl := NewControl(c.Scale, c.Spacing)
	if !c.Verbose {
		logger = nil
	}
	return NewLoop(l, sched, ctrl, policy, logger), nil
}
