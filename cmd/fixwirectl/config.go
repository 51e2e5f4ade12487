package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type cliConfig struct {
	Catalog     string
	LogLevel    string
	Terminator  string
	MetricsAddr string
}

type fileConfig struct {
	Catalog     string `toml:"catalog"`
	LogLevel    string `toml:"log_level"`
	Terminator  string `toml:"terminator"`
	MetricsAddr string `toml:"metrics_addr"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		LogLevel:   "info",
		Terminator: "\n",
	}
}

func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load fixwirectl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cliConfig{}, fmt.Errorf("load fixwirectl config: unknown keys %v", undecoded)
	}

	if meta.IsDefined("catalog") {
		cfg.Catalog = strings.TrimSpace(raw.Catalog)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("terminator") {
		cfg.Terminator = raw.Terminator
	}

	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}

	return cfg, nil
}
