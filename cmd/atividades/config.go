package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edulab/atividades/docpipe"
)

// Config holds all service configuration.
type Config struct {
	Listen        string         `yaml:"listen"`
	GeneratedDir  string         `yaml:"generated_dir"`
	DBPath        string         `yaml:"db_path"`
	StoreCapacity int            `yaml:"store_capacity"`
	StoreTTL      time.Duration  `yaml:"store_ttl"`
	Extract       docpipe.Config `yaml:"extract"`
}

func (c *Config) defaults() {
	if c.Listen == "" {
		c.Listen = ":8085"
	}
	if c.GeneratedDir == "" {
		c.GeneratedDir = "generated"
	}
	if c.DBPath == "" {
		c.DBPath = "db/atividades.db"
	}
	if c.StoreCapacity <= 0 {
		c.StoreCapacity = 256
	}
	if c.StoreTTL <= 0 {
		c.StoreTTL = time.Hour
	}
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
