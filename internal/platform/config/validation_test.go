package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig mirrors the shipped defaults.
func validConfig() *Config {
	return &Config{
		App: AppConfig{Name: "quotes-service", Version: "1.0.0", Environment: "local"},
		Server: ServerConfig{
			Port:            DefaultServerPort,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			MaxRequestSize:  DefaultMaxRequestSize,
			BasePath:        DefaultBasePath,
			RequestTimeout:  10 * time.Second,
		},
		Log:        LogConfig{Level: "info", Format: "json"},
		Repository: RepositoryConfig{Driver: DriverMemory, Seed: true},
	}
}

func TestValidate_Accepts(t *testing.T) {
	tests := map[string]func(*Config){
		"defaults":                   func(*Config) {},
		"environment dev":            func(c *Config) { c.App.Environment = "dev" },
		"environment qa":             func(c *Config) { c.App.Environment = "qa" },
		"environment prod":           func(c *Config) { c.App.Environment = "prod" },
		"environment test":           func(c *Config) { c.App.Environment = "test" },
		"lowest port":                func(c *Config) { c.Server.Port = 1 },
		"highest port":               func(c *Config) { c.Server.Port = 65535 },
		"routes at root":             func(c *Config) { c.Server.BasePath = "" },
		"no request deadline":        func(c *Config) { c.Server.RequestTimeout = 0 },
		"trace level":                func(c *Config) { c.Log.Level = "trace" },
		"pretty format":              func(c *Config) { c.Log.Format = "pretty" },
		"text format":                func(c *Config) { c.Log.Format = "text" },
		"extra redact keys":          func(c *Config) { c.Log.Redact = []string{"x_api_secret"} },
		"file logging without path":  func(c *Config) { c.Log.File.Path = "" },
		"telemetry off without URL":  func(c *Config) { c.Telemetry.Endpoint = "" },
		"sampling everything":        func(c *Config) { c.Telemetry.SamplingRate = 1 },
		"sampling nothing":           func(c *Config) { c.Telemetry.SamplingRate = 0 },
		"memory store without path":  func(c *Config) { c.Repository.Path = "" },
		"file store with yaml path":  func(c *Config) { c.Repository = RepositoryConfig{Driver: DriverFile, Path: "data/quotes.yaml"} },
		"file store with json path":  func(c *Config) { c.Repository = RepositoryConfig{Driver: DriverFile, Path: "data/quotes.json"} },
		"file logging fully enabled": enableFileLog,
		"telemetry fully enabled":    enableTelemetry,
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)

			assert.NoError(t, cfg.Validate())
		})
	}
}

func enableFileLog(c *Config) {
	c.Log.File = LogFileConfig{Enabled: true, Path: "/var/log/quotes.log", MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 28}
}

func enableTelemetry(c *Config) {
	c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://otel-collector:4317", ServiceName: "quotes-service", SamplingRate: 0.25}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"no version", func(c *Config) { c.App.Version = "" }, "app.version is required"},
		{"no environment", func(c *Config) { c.App.Environment = "" }, "app.environment is required"},
		{"unknown environment", func(c *Config) { c.App.Environment = "staging" }, "app.environment must be one of: local dev qa prod test"},

		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port is required"},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, "server.port must be at least 1"},
		{"port too high", func(c *Config) { c.Server.Port = 65536 }, "server.port must be at most 65535"},
		{"no host", func(c *Config) { c.Server.Host = "" }, "server.host is required"},
		{"sub-second read timeout", func(c *Config) { c.Server.ReadTimeout = 500 * time.Millisecond }, "server.read_timeout must be at least 1s"},
		{"negative body limit", func(c *Config) { c.Server.MaxRequestSize = -1 }, "server.max_request_size must be at least 1"},
		{"relative base path", func(c *Config) { c.Server.BasePath = "api" }, `server.base_path must start with "/"`},
		{"negative request timeout", func(c *Config) { c.Server.RequestTimeout = -time.Second }, "server.request_timeout must be at least 0"},
		{
			"request timeout equal to write timeout",
			func(c *Config) { c.Server.RequestTimeout = c.Server.WriteTimeout },
			"server.request_timeout must be less than server.write_timeout",
		},

		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, "log.level must be one of"},
		{"upper-case level", func(c *Config) { c.Log.Level = "DEBUG" }, "log.level must be one of"},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be one of: json text pretty"},
		{
			"file logging without path",
			func(c *Config) { c.Log.File = LogFileConfig{Enabled: true} },
			"log.file.path is required when log.file.enabled is true",
		},
		{
			"oversized log file",
			func(c *Config) { enableFileLog(c); c.Log.File.MaxSizeMB = 1025 },
			"log.file.max_size must be at most 1024",
		},

		{
			"telemetry without endpoint",
			func(c *Config) { enableTelemetry(c); c.Telemetry.Endpoint = "" },
			"telemetry.endpoint is required when telemetry.enabled is true",
		},
		{
			"telemetry without service name",
			func(c *Config) { enableTelemetry(c); c.Telemetry.ServiceName = "" },
			"telemetry.service_name is required when telemetry.enabled is true",
		},
		{
			"telemetry endpoint not a URL",
			func(c *Config) { enableTelemetry(c); c.Telemetry.Endpoint = "collector" },
			"telemetry.endpoint must be a valid URL",
		},
		{"sampling below zero", func(c *Config) { c.Telemetry.SamplingRate = -0.1 }, "telemetry.sampling_rate must be at least 0"},
		{"sampling above one", func(c *Config) { c.Telemetry.SamplingRate = 1.1 }, "telemetry.sampling_rate must be at most 1"},

		{"no driver", func(c *Config) { c.Repository.Driver = "" }, "repository.driver is required"},
		{"unknown driver", func(c *Config) { c.Repository.Driver = "postgres" }, "repository.driver must be one of: memory file"},
		{
			"file store without path",
			func(c *Config) { c.Repository = RepositoryConfig{Driver: DriverFile} },
			"repository.path is required when repository.driver is file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Server.Host = ""
	cfg.Repository.Driver = "sqlite"

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{"app.name", "server.host", "repository.driver"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestFormatFieldPath(t *testing.T) {
	tests := map[string]string{
		"Config.server.port":       "server.port",
		"Config.repository.driver": "repository.driver",
		"Config.log.file.path":     "log.file.path",
		"Config":                   "Config",
	}

	for namespace, want := range tests {
		assert.Equal(t, want, formatFieldPath(namespace), namespace)
	}
}

func TestSibling(t *testing.T) {
	assert.Equal(t, "server.write_timeout", sibling("server.request_timeout", "WriteTimeout"))
	assert.Equal(t, "repository.driver", sibling("repository.path", "Driver"))
	assert.Equal(t, "enabled", sibling("path", "Enabled"))
}
