package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PlayerA   Player `yaml:"player-a" env-prefix:"PLAYER_A_"`
	PlayerB   Player `yaml:"player-b" env-prefix:"PLAYER_B_"`
	MovesPath string `yaml:"moves-path" env:"MOVES_PATH"`
	NoColor   bool   `yaml:"no-color" env:"KUBA_NO_COLOR"`
}

// Player is a player descriptor; an empty name is replaced with a generated one.
type Player struct {
	Name  string `yaml:"name" env:"NAME"`
	Color string `yaml:"color" env:"COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
