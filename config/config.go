// Package config holds the named configuration for ft-otp. Values come from
// defaults, an optional .env file, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

const (
	// DefaultKeyFile is the fixed name of the persisted key store.
	DefaultKeyFile = "ft_otp.key"
)

var (
	config     *Config
	configOnce sync.Once
)

type Config struct {
	KeyFile string

	Agent struct {
		Host string
		Port string
	}

	Logging struct {
		Directory  string
		MaxSize    int64
		MaxBackups int
	}
}

// LoadConfig loads the configuration from defaults, an optional .env file,
// and environment variables. The result is cached for the process lifetime.
func LoadConfig() (*Config, error) {
	var err error
	configOnce.Do(func() {
		cfg := &Config{}

		// Load .env file if it exists
		godotenv.Load()

		loadDefaultConfig(cfg)
		loadEnvConfig(cfg)

		if err = validateConfig(cfg); err != nil {
			return
		}

		config = cfg
	})

	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("configuration failed to load")
	}

	return config, nil
}

// ResetConfigForTest clears the cached configuration so tests can reload it
// with different environment variables.
func ResetConfigForTest() {
	config = nil
	configOnce = sync.Once{}
}

func loadDefaultConfig(cfg *Config) {
	cfg.KeyFile = DefaultKeyFile
	cfg.Agent.Host = "localhost"
	cfg.Agent.Port = "8090"
	cfg.Logging.Directory = "logs"
	cfg.Logging.MaxSize = 10 * 1024 * 1024 // 10MB
	cfg.Logging.MaxBackups = 5
}

func loadEnvConfig(cfg *Config) {
	if keyFile := os.Getenv("OTP_KEY_FILE"); keyFile != "" {
		cfg.KeyFile = keyFile
	}
	if host := os.Getenv("OTP_AGENT_HOST"); host != "" {
		cfg.Agent.Host = host
	}
	if port := os.Getenv("OTP_AGENT_PORT"); port != "" {
		cfg.Agent.Port = port
	}
	if dir := os.Getenv("OTP_LOG_DIR"); dir != "" {
		cfg.Logging.Directory = dir
	}
}

func validateConfig(cfg *Config) error {
	if cfg.KeyFile == "" {
		return fmt.Errorf("key file path cannot be empty")
	}

	port, err := strconv.Atoi(cfg.Agent.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid agent port: %q", cfg.Agent.Port)
	}

	return nil
}
