// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultBasePath is where the quote routes are mounted.
	DefaultBasePath = "/api"

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultConfigDir is where Load looks for base.yaml and profile files.
	DefaultConfigDir = "configs"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "APP_"
)

// Repository drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
)

// Config is the root configuration structure.
type Config struct {
	App        AppConfig        `koanf:"app"        validate:"required"  yaml:"app"`
	Server     ServerConfig     `koanf:"server"     validate:"required"  yaml:"server"`
	Log        LogConfig        `koanf:"log"        validate:"required"  yaml:"log"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"                       yaml:"telemetry"`
	Repository RepositoryConfig `koanf:"repository" validate:"required"  yaml:"repository"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"                                yaml:"name"`
	Version     string `koanf:"version"     validate:"required"                                yaml:"version"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test" yaml:"environment"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535" yaml:"port"`
	Host            string        `koanf:"host"             validate:"required"                 yaml:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"          yaml:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"          yaml:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"          yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"          yaml:"shutdown_timeout"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"           yaml:"max_request_size"`

	// BasePath prefixes the quote routes. Empty mounts them at the root.
	BasePath string `koanf:"base_path" validate:"omitempty,startswith=/" yaml:"base_path"`

	// RequestTimeout bounds each API request. Zero disables the deadline.
	// It must stay below WriteTimeout or the server drops the connection
	// before the deadline error can be written.
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"min=0,ltfield=WriteTimeout" yaml:"request_timeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error" yaml:"level"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"            yaml:"format"`
	File   LogFileConfig `koanf:"file"                                                          yaml:"file"`

	// Redact names extra log attribute keys to mask.
	Redact []string `koanf:"redact" yaml:"redact,omitempty"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"                                                yaml:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"        yaml:"path"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"        yaml:"max_size"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"         yaml:"max_backups"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"         yaml:"max_age"`
	Compress   bool   `koanf:"compress"                                               yaml:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"                                                       yaml:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url" yaml:"endpoint"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"               yaml:"service_name"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"                            yaml:"sampling_rate"`
}

// RepositoryConfig selects and configures the quote store.
type RepositoryConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=memory file"     yaml:"driver"`
	Path   string `koanf:"path"   validate:"required_if=Driver file"        yaml:"path"`
	Seed   bool   `koanf:"seed"                                             yaml:"seed"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotes-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,
		"server.base_path":        DefaultBasePath,
		"server.request_timeout":  "10s",

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotes-service",
		"telemetry.sampling_rate": 1.0,

		"repository.driver": DriverMemory,
		"repository.path":   "./data/quotes.json",
		"repository.seed":   true,
	}
}

// Load loads configuration from DefaultConfigDir. See LoadFrom.
func Load(profile string) (*Config, error) {
	return LoadFrom(DefaultConfigDir, profile)
}

// LoadFrom loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix), including those from a .env file
//  2. Profile config file ({dir}/{profile}.yaml)
//  3. Base config file ({dir}/base.yaml)
//  4. Default values
//
// A .env file in the working directory never overrides variables that are
// already set.
func LoadFrom(dir, profile string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	k := koanf.New(".")

	// 1. Load defaults
	err = k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, filepath.Join(dir, "base.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		err := loadFileIfExists(k, filepath.Join(dir, profile+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with APP_ prefix
	err = k.Load(env.Provider(EnvPrefix, ".", envKey(k.Keys())), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_SERVER_BASE_PATH to server.base_path. Keys already known
// to koanf are matched exactly so underscores inside a key survive; anything
// else has every underscore turned into a dot.
func envKey(known []string) func(string) string {
	byEnv := make(map[string]string, len(known))
	for _, key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key, ok := byEnv[name]; ok {
			return key
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
