package app

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type fileConfig struct {
	Side  *int   `json:"side"`
	Scale *int   `json:"scale"`
	TPS   *int   `json:"tps"`
	Seed  *int64 `json:"seed"`
}

// LoadFile overlays settings from a JSON file onto the config. Keys absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	if fc.Side != nil {
		c.Side = *fc.Side
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.TPS != nil {
		c.TPS = *fc.TPS
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	return nil
}
