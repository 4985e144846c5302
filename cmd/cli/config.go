package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// cliConfig holds defaults for local play, loaded from
// XDG_CONFIG_HOME/madiao/config.toml when the file exists.
type cliConfig struct {
	Players []string `toml:"players"`
	NoColor bool     `toml:"no_color"`
}

func configFilePath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "madiao", "config.toml")
}

// loadConfig reads the config file. A missing file is not an error; the
// zero config comes back instead.
func loadConfig() (cliConfig, error) {
	var cfg cliConfig

	path := configFilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cliConfig{}, fmt.Errorf("error decoding %s: %v", path, err)
	}

	return cfg, nil
}
