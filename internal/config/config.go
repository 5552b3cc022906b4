package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appName = "nestor"

	defaultLogLevel    = "info"
	defaultPollTimeout = 10
	defaultEmptyMarker = "--"
)

// Config represents the application configuration
type Config struct {
	LogFile            string `toml:"log_file"`
	LogLevel           string `toml:"log_level"`
	PollTimeoutSeconds int    `toml:"poll_timeout_seconds"`
	Color              bool   `toml:"color"`
	EmptyMarker        string `toml:"empty_marker"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		LogFile:            GetDefaultLogPath(),
		LogLevel:           defaultLogLevel,
		PollTimeoutSeconds: defaultPollTimeout,
		Color:              true,
		EmptyMarker:        defaultEmptyMarker,
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDefaultLogPath returns where the session log goes unless configured otherwise
func GetDefaultLogPath() string {
	return filepath.Join(GetXDGDataHome(), appName, appName+".log")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// PollTimeout returns the input heartbeat interval
func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.PollTimeoutSeconds) * time.Second
}

// Validate reports every invalid setting and replaces it with its default
func (c *Config) Validate() []string {
	var problems []string

	if strings.TrimSpace(c.LogFile) == "" {
		problems = append(problems, "log_file is empty, using "+GetDefaultLogPath())
		c.LogFile = GetDefaultLogPath()
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log_level %q, using %s", c.LogLevel, defaultLogLevel))
		c.LogLevel = defaultLogLevel
	}

	if c.PollTimeoutSeconds <= 0 {
		problems = append(problems, fmt.Sprintf("poll_timeout_seconds must be positive, using %d", defaultPollTimeout))
		c.PollTimeoutSeconds = defaultPollTimeout
	}

	if c.EmptyMarker == "" {
		problems = append(problems, fmt.Sprintf("empty_marker is empty, using %q", defaultEmptyMarker))
		c.EmptyMarker = defaultEmptyMarker
	}

	return problems
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at configPath, creating it with
// defaults if it doesn't exist. Keys missing from the file keep their defaults.
func LoadConfigFrom(configPath string) (*Config, error) {
	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := Default()

	// Create the file
	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}
