package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/pagegrade"
	"gopkg.in/yaml.v3"
)

// configEnv names the environment variable holding the default config path.
const configEnv = "PAGEGRADE_CONFIG"

// Config holds defaults read from a YAML file. Flags given on the command
// line win over file values.
type Config struct {
	Format      string `yaml:"format"`
	Extractor   string `yaml:"extractor"`
	Concurrency int    `yaml:"concurrency"`
	CountTokens bool   `yaml:"countTokens"`
	TokenModel  string `yaml:"tokenModel"`
	OutDir      string `yaml:"outDir"`
}

// LoadConfig reads the config file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, pagegrade.Errorf(pagegrade.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return cfg, pagegrade.Errorf(pagegrade.EINTERNAL, "read config %q: %v", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, pagegrade.Errorf(pagegrade.EINVALID, "parse config %q: %v", path, err)
	}
	if cfg.Format != "" {
		if _, err := pagegrade.ParseFormat(cfg.Format); err != nil {
			return cfg, pagegrade.Errorf(pagegrade.EINVALID, "config %q: %s", path, pagegrade.ErrorMessage(err))
		}
	}
	return cfg, nil
}

// loadConfig reads the explicit config path, or the default path when one
// exists. Without either it returns an empty Config.
func (m *Main) loadConfig(explicit string) (Config, error) {
	if explicit != "" {
		return LoadConfig(explicit)
	}
	if m.ConfigPath == "" {
		return Config{}, nil
	}
	cfg, err := LoadConfig(m.ConfigPath)
	if pagegrade.ErrorCode(err) == pagegrade.ENOTFOUND {
		return Config{}, nil
	}
	return cfg, err
}

func defaultConfigPath() string {
	if path := os.Getenv(configEnv); path != "" {
		return path
	}
	return "pagegrade.yaml"
}

// applyConfig fills options not set on the command line from cfg.
func (f *PipelineFlags) applyConfig(cfg Config) {
	if f.Extractor == "" {
		f.Extractor = cfg.Extractor
	}
	if f.Concurrency == 0 {
		f.Concurrency = cfg.Concurrency
	}
	if !f.CountTokens {
		f.CountTokens = cfg.CountTokens
	}
	if f.TokenModel == "" {
		f.TokenModel = cfg.TokenModel
	}
}

// applyConfig fills options not set on the command line from cfg.
func (c *AnalyzeCmd) applyConfig(cfg Config) {
	if c.Format == "" {
		c.Format = cfg.Format
	}
	if c.Out == "" {
		c.Out = cfg.OutDir
	}
	c.PipelineFlags.applyConfig(cfg)
}
