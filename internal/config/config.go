package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all user-facing configuration for trip-scout. API keys are
// deliberately absent: they come from the environment, not the config file.
type Config struct {
	Data    DataConfig    `toml:"data"`
	Server  ServerConfig  `toml:"server"`
	Advisor AdvisorConfig `toml:"advisor"`
	Places  PlacesConfig  `toml:"places"`
}

type DataConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type AdvisorConfig struct {
	Model string `toml:"model"`
}

type PlacesConfig struct {
	Radius     int     `toml:"radius"`     // search radius in meters
	Categories string  `toml:"categories"` // Geoapify category filter
	Limit      int     `toml:"limit"`      // max places stored per recommendation
	RateLimit  float64 `toml:"rate_limit"` // outgoing requests per second
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:    DataConfig{Dir: "data"},
		Server:  ServerConfig{Host: "localhost", Port: 8080},
		Advisor: AdvisorConfig{Model: "gemini-2.5-flash"},
		Places: PlacesConfig{
			Radius:     5000,
			Categories: "tourism.sights",
			Limit:      5,
			RateLimit:  5.0,
		},
	}
}

// Load reads a TOML config file. If the file does not exist, built-in
// defaults are returned without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
