package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version   string    `yaml:"version" json:"version"`
	Server    Server    `yaml:"server" json:"server"`
	Data      Data      `yaml:"data" json:"data"`
	Loop      Loop      `yaml:"loop" json:"loop"`
	Telemetry Telemetry `yaml:"telemetry" json:"telemetry"`
	Balance   Balance   `yaml:"balance" json:"balance"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
}

type Data struct {
	Dir string `yaml:"dir" json:"dir"`
}

type Loop struct {
	TickSeconds       int `yaml:"tick_seconds" json:"tick_seconds"`
	CheckpointSeconds int `yaml:"checkpoint_seconds" json:"checkpoint_seconds"`
}

type Telemetry struct {
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path"`
}

// DefaultConfig returns a fully populated configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Server:  Server{Addr: ":4242"},
		Data:    Data{Dir: "data"},
		Loop: Loop{
			TickSeconds:       1,
			CheckpointSeconds: 30,
		},
		Telemetry: Telemetry{SQLitePath: ""},
		Balance:   Default(),
	}
}

// Load reads the YAML config file at path, layering it over defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Loop.TickSeconds <= 0 {
		return fmt.Errorf("loop.tick_seconds must be positive, got %d", c.Loop.TickSeconds)
	}
	if c.Loop.CheckpointSeconds <= 0 {
		return fmt.Errorf("loop.checkpoint_seconds must be positive, got %d", c.Loop.CheckpointSeconds)
	}
	if c.Balance.DuckCostGrowth < 1 {
		return fmt.Errorf("balance.duck_cost_growth must be >= 1, got %v", c.Balance.DuckCostGrowth)
	}
	if c.Balance.MultiplierDamping <= 0 || c.Balance.MultiplierDamping > 1 {
		return fmt.Errorf("balance.multiplier_damping must be in (0,1], got %v", c.Balance.MultiplierDamping)
	}
	return nil
}

// TickInterval returns the game loop tick interval.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Loop.TickSeconds) * time.Second
}

// CheckpointInterval returns the autosave interval.
func (c *Config) CheckpointInterval() time.Duration {
	return time.Duration(c.Loop.CheckpointSeconds) * time.Second
}
