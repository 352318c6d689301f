package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// config holds the settings of a session. Settings may come from a YAML file
// and then be overridden by flags.
type config struct {
	// Degrees selects degree mode for trigonometric functions.
	Degrees bool `yaml:"degrees"`
	// Symbolic enables exact closed forms in degree mode.
	Symbolic bool `yaml:"symbolic"`
	// Places is the number of decimal places to print, or negative to print
	// twelve significant digits.
	Places int `yaml:"places"`
	// Capacity bounds the size of compiled expressions.
	Capacity int `yaml:"capacity"`
	// Echo prints the postfix form of each expression.
	Echo bool `yaml:"echo"`
}

func defaultConfig() config {
	return config{
		Symbolic: true,
		Places:   -1,
		Capacity: calc.DefaultCapacity,
	}
}

// loadConfig reads a YAML config file over the defaults in cfg.
func loadConfig(name string, cfg config) (config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", name)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %s", name)
	}
	if cfg.Capacity <= 0 {
		return cfg, errors.Errorf("config %s: capacity (%d) must be positive", name, cfg.Capacity)
	}
	return cfg, nil
}
