package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultLogLevel         = "warn"
	defaultProgressInterval = 5
	defaultLegacyTimeout    = 2 * time.Minute
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	viperConfig.SetDefault("log.level", defaultLogLevel)
	viperConfig.SetDefault("search.progress_interval", defaultProgressInterval)
	viperConfig.SetDefault("legacy.timeout", defaultLegacyTimeout)

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetLogLevel() string {
	level := c.config.GetString("LOG_LEVEL")
	if len(level) == 0 {
		level = c.config.GetString("log.level")
	}

	return level
}

func (c *Config) GetProgressInterval() int {
	interval := c.config.GetInt("PROGRESS_INTERVAL")
	if interval <= 0 {
		interval = c.config.GetInt("search.progress_interval")
	}
	if interval <= 0 {
		interval = defaultProgressInterval
	}

	return interval
}

func (c *Config) GetAntiwordPath() string {
	antiwordPath := c.config.GetString("ANTIWORD_PATH")
	if len(antiwordPath) == 0 {
		antiwordPath = c.config.GetString("legacy.antiword_path")
	}

	return antiwordPath
}

func (c *Config) GetLibreOfficePath() string {
	libreOfficePath := c.config.GetString("LIBREOFFICE_PATH")
	if len(libreOfficePath) == 0 {
		libreOfficePath = c.config.GetString("legacy.libreoffice_path")
	}

	return libreOfficePath
}

func (c *Config) GetLegacyTimeout() time.Duration {
	timeout := c.config.GetDuration("LEGACY_TIMEOUT")
	if timeout <= 0 {
		timeout = c.config.GetDuration("legacy.timeout")
	}
	if timeout <= 0 {
		timeout = defaultLegacyTimeout
	}

	return timeout
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Debug("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Debug("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
