// Package config loads frame generation defaults from a TOML file. Values
// left out of the file keep their built-in defaults; command-line flags set
// explicitly by the user override both.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the default frame and base parameters, all in mm.
type Config struct {
	FrameThickness float64 `toml:"frame_thickness"`
	Margin         float64 `toml:"margin"`
	PegHeight      float64 `toml:"peg_height"`
	LipHeight      float64 `toml:"lip_height"`
	BaseThickness  float64 `toml:"base_thickness"`
}

// Default returns the built-in parameter set.
func Default() Config {
	return Config{
		FrameThickness: 2.0,
		Margin:         2.0,
		PegHeight:      6.0,
		LipHeight:      5.0,
		BaseThickness:  2.0,
	}
}

// Load reads a TOML config file and merges it over the built-in defaults.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown key %q in config file %s", undecoded[0].String(), path)
	}

	return cfg, nil
}
