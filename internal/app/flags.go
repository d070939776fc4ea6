package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Side  int
	Scale int
	TPS   int
	Seed  int64
	File  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Side: 128, Scale: 4, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Side, "side", c.Side, "cells per grid side")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}
