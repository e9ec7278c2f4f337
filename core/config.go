package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the well-known config name looked up in the working directory.
const ConfigFile = "minisite.config.yml"

type Config struct {
	Port         int    `yaml:"port"`
	TemplatesDir string `yaml:"templatesDir"`
	PublicDir    string `yaml:"publicDir"`
	OutputDir    string `yaml:"outputDir"`
	CacheEnabled bool   `yaml:"cache"`
	DebugHeaders bool   `yaml:"debugHeaders"`
	DebugLogs    bool   `yaml:"debugLogs"`
}

var LoadConfig = func(path string) *Config {
	cfg := &Config{}

	if data, err := os.ReadFile(path); err == nil {
		yaml.Unmarshal(data, cfg)
	}

	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./cache"
	}

	return cfg
}
