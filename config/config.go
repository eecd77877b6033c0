// Package config reads runtime settings for the crowdnav binaries from the
// process environment and an optional .env file.
//
// Variables (process environment wins over the .env file):
//
//	CROWDNAV_LAYOUT          path to a JSON venue layout; empty uses venue.Exhibition()
//	CROWDNAV_ADDR            HTTP listen address (default ":8080")
//	CROWDNAV_MAX_EXPANSIONS  per-search expansion cap; 0 disables it (default 0)
//	CROWDNAV_ACCESS_POLICY   "nearest-start" (default) or "lowest-cost"
//	CROWDNAV_PENALTY_STEPS   crowd penalty table, e.g. "5:0,10:2,15:5,20:10,inf:15"
//	CROWDNAV_PARALLEL        evaluate booth access points in parallel (default false)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/crowdnav/astar"
	"github.com/katalvlaran/crowdnav/crowd"
	"github.com/katalvlaran/crowdnav/navigator"
	"github.com/katalvlaran/crowdnav/venue"
)

// ErrInvalidConfig indicates a variable that could not be parsed.
var ErrInvalidConfig = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvLayout        = "CROWDNAV_LAYOUT"
	EnvAddr          = "CROWDNAV_ADDR"
	EnvMaxExpansions = "CROWDNAV_MAX_EXPANSIONS"
	EnvAccessPolicy  = "CROWDNAV_ACCESS_POLICY"
	EnvPenaltySteps  = "CROWDNAV_PENALTY_STEPS"
	EnvParallel      = "CROWDNAV_PARALLEL"
)

// Config holds the parsed settings.
type Config struct {
	LayoutPath    string
	Addr          string
	MaxExpansions int
	AccessPolicy  navigator.AccessPolicy
	Policy        crowd.Policy
	Parallel      bool
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		Addr:         ":8080",
		AccessPolicy: navigator.NearestToStart,
		Policy:       crowd.DefaultPolicy(),
	}
}

// Load reads the given .env files (".env" when none are named) and the
// process environment. Missing files are not an error.
func Load(files ...string) (Config, error) {
	fileVals, err := godotenv.Read(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: read env file: %w", err)
	}
	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

// FromLookup builds a Config from a key lookup function. Unset or empty
// keys keep their defaults.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvLayout); ok {
		cfg.LayoutPath = v
	}
	if v, ok := get(EnvAddr); ok {
		cfg.Addr = v
	}
	if v, ok := get(EnvMaxExpansions); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvMaxExpansions, v)
		}
		cfg.MaxExpansions = n
	}
	if v, ok := get(EnvAccessPolicy); ok {
		switch strings.ToLower(v) {
		case "nearest-start":
			cfg.AccessPolicy = navigator.NearestToStart
		case "lowest-cost":
			cfg.AccessPolicy = navigator.LowestCost
		default:
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvAccessPolicy, v)
		}
	}
	if v, ok := get(EnvPenaltySteps); ok {
		p, err := crowd.ParsePolicy(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvPenaltySteps, err)
		}
		cfg.Policy = p
	}
	if v, ok := get(EnvParallel); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvParallel, v)
		}
		cfg.Parallel = b
	}
	return cfg, nil
}

// SearchOptions translates the settings into astar options.
func (c Config) SearchOptions() []astar.Option {
	opts := []astar.Option{astar.WithPolicy(c.Policy), astar.WithMaxExpansions(c.MaxExpansions)}
	if c.Parallel {
		opts = append(opts, astar.WithParallelCandidates())
	}
	return opts
}

// NavigatorOptions translates the settings into navigator options.
func (c Config) NavigatorOptions() []navigator.Option {
	return []navigator.Option{
		navigator.WithAccessPolicy(c.AccessPolicy),
		navigator.WithSearchOptions(c.SearchOptions()...),
	}
}

// Layout loads the configured layout file, or returns the built-in
// exhibition venue when no path is set.
func (c Config) Layout() (*venue.Layout, error) {
	if c.LayoutPath == "" {
		return venue.Exhibition(), nil
	}
	f, err := os.Open(c.LayoutPath)
	if err != nil {
		return nil, fmt.Errorf("config: open layout %q: %w", c.LayoutPath, err)
	}
	defer f.Close()
	return venue.LoadLayout(f)
}
