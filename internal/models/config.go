package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GenerationCaps bounds randomly generated forces
type GenerationCaps struct {
	MaxRank           int `yaml:"max_rank" json:"max_rank"`
	MaxUnits          int `yaml:"max_units" json:"max_units"`
	MaxReinforcements int `yaml:"max_reinforcements" json:"max_reinforcements"`
}

// DefaultGenerationCaps returns the caps used when none are configured
func DefaultGenerationCaps() GenerationCaps {
	return GenerationCaps{
		MaxRank:           3,
		MaxUnits:          10,
		MaxReinforcements: 5,
	}
}

// Config holds the settings read from autoresolve.yaml. Empty paths mean built-in data.
type Config struct {
	RosterFile   string         `yaml:"roster_file"`
	TreasureFile string         `yaml:"treasure_file"`
	OutputDir    string         `yaml:"output_dir"`
	Database     string         `yaml:"database"`
	Workers      int            `yaml:"workers"`
	Caps         GenerationCaps `yaml:"caps"`
}

// DefaultConfig returns the configuration used without a config file
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "DataCapture",
		Caps:      DefaultGenerationCaps(),
	}
}

// LoadConfig reads a YAML config file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	return config, nil
}

// Validate checks that the configured values are usable
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Caps.MaxRank < 0 {
		return fmt.Errorf("caps.max_rank must be >= 0, got %d", c.Caps.MaxRank)
	}
	if c.Caps.MaxUnits < 1 {
		return fmt.Errorf("caps.max_units must be >= 1, got %d", c.Caps.MaxUnits)
	}
	if c.Caps.MaxReinforcements < 0 {
		return fmt.Errorf("caps.max_reinforcements must be >= 0, got %d", c.Caps.MaxReinforcements)
	}
	return nil
}
