package config

import (
	"fmt"
	"os"

	"Calcline/internal/logger"

	"github.com/BurntSushi/toml"
)

// Config carries the settings shared by the server and the REPL. All fields
// have defaults so running without a config file works out of the box.
type Config struct {
	ListenAddr string `toml:"listen_addr"`
	LogDir     string `toml:"log_dir"`
	LogLevel   string `toml:"log_level"`
}

const DefaultPath = "calcline.toml"

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		LogDir:     "logs",
		LogLevel:   "error",
	}
}

// Load reads a TOML config file, falling back to defaults when the file does
// not exist. A file that exists but fails to parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Level() logger.LogLevel {
	switch c.LogLevel {
	case "debug":
		return logger.DEBUG
	case "info":
		return logger.INFO
	default:
		return logger.ERROR
	}
}
