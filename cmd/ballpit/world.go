package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/sim"
)

// loadConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.LoadOver(cfg, configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("bodies") {
		cfg.Spawn.Count = numBodies
	}
	if flags.Changed("radius") {
		cfg.Spawn.Radius = radius
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = frameRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildWorld creates the world, spawns the initial bodies and wires a
// controller to it.
func buildWorld(cfg *config.Config) (*sim.World, *control.Controller, error) {
	sc, err := cfg.SimConfig()
	if err != nil {
		return nil, nil, err
	}
	w, err := sim.New(sc)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < cfg.Spawn.Count; i++ {
		if _, err := w.Spawn(cfg.Spawn.Radius, sim.RandomColor); err != nil {
			return nil, nil, err
		}
	}

	keys, err := cfg.KeyMap()
	if err != nil {
		return nil, nil, err
	}
	return w, control.New(w, keys, cfg.Spawn.Radius), nil
}
