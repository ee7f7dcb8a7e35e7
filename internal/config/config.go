package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeCLI = "cli"
	ModeWeb = "web"
)

type Config struct {
	Mode     string `yaml:"mode" env:"TTT_MODE" env-default:"cli"`
	LogLevel string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"TTT_HTTP_PORT" env-default:"8080"`
	BotMark  string `yaml:"bot-mark" env:"TTT_BOT_MARK" env-default:"O"`
}

// MustLoad - loads configuration from the given YAML file, falling back to
// environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment config: %w", err))
	}

	return config
}
