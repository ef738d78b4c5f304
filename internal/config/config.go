package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// MetricsConfig selects which provider collectors run and how long the
// per-core CPU sample window lasts.
type MetricsConfig struct {
	Sources           []string      `yaml:"sources"`
	CPUSampleInterval time.Duration `yaml:"cpu_sample_interval"`
}

// SamplerConfig describes the external utility used as the authoritative
// per-process CPU source. Its output must be "PID CPU%" rows after one header row.
type SamplerConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// TerminateConfig picks the termination back-end: "signal" or "command".
type TerminateConfig struct {
	Method string `yaml:"method"`
}

// DashboardConfig controls the interactive part of the run.
type DashboardConfig struct {
	Interactive bool `yaml:"interactive"`
	RequireTTY  bool `yaml:"require_tty"` // skip the prompt when stdin is not a terminal
	Color       bool `yaml:"color"`
}

// ReportConfig enables the optional JSON dump of the latest run.
type ReportConfig struct {
	File string `yaml:"file"`
}

// Config holds the configuration for Pulse.
// It is loaded from a YAML file and can be overridden by environment
// variables and then command-line flags.
type Config struct {
	Logs struct {
		AppLogFile   string `yaml:"app_log_file"`
		ErrorLogFile string `yaml:"error_log_file"`
		LogLevel     string `yaml:"log_level"`
	} `yaml:"logs"`

	Metrics   MetricsConfig   `yaml:"metrics"`
	Sampler   SamplerConfig   `yaml:"sampler"`
	Terminate TerminateConfig `yaml:"terminate"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Report    ReportConfig    `yaml:"report"`
}

// Default returns the built-in configuration, identical to the file written
// by EnsureDefaultConfig.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultYAML), &cfg); err != nil {
		panic(fmt.Sprintf("invalid embedded default config: %v", err))
	}
	return &cfg
}

// LoadConfig loads the configuration from a YAML file on top of the defaults,
// so keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be corrected silently.
func (c *Config) Validate() error {
	switch c.Terminate.Method {
	case "signal", "command":
	default:
		return fmt.Errorf("terminate.method must be \"signal\" or \"command\", got %q", c.Terminate.Method)
	}
	if c.Metrics.CPUSampleInterval < 0 {
		return fmt.Errorf("metrics.cpu_sample_interval must not be negative")
	}
	if strings.TrimSpace(c.Sampler.Command) == "" {
		return fmt.Errorf("sampler.command must not be empty")
	}
	return nil
}

// ApplyEnvOverrides applies PULSE_* environment variables to cfg.
func ApplyEnvOverrides(cfg *Config) {
	if val := os.Getenv("PULSE_LOG_LEVEL"); val != "" {
		cfg.Logs.LogLevel = val
	}
	if val := os.Getenv("PULSE_APP_LOG_FILE"); val != "" {
		cfg.Logs.AppLogFile = val
	}
	if val := os.Getenv("PULSE_ERROR_LOG_FILE"); val != "" {
		cfg.Logs.ErrorLogFile = val
	}
	if val := os.Getenv("PULSE_METRICS_SOURCES"); val != "" {
		cfg.Metrics.Sources = SplitCSV(val)
	}
	if val := os.Getenv("PULSE_CPU_SAMPLE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Metrics.CPUSampleInterval = d
		} else {
			fmt.Fprintf(os.Stderr, "Invalid PULSE_CPU_SAMPLE_INTERVAL format (ignored): %s\n", val)
		}
	}
	if fields := strings.Fields(os.Getenv("PULSE_SAMPLER_COMMAND")); len(fields) > 0 {
		cfg.Sampler.Command = fields[0]
		cfg.Sampler.Args = fields[1:]
	}
	if val := os.Getenv("PULSE_TERMINATE_METHOD"); val != "" {
		cfg.Terminate.Method = strings.ToLower(val)
	}
	if val := os.Getenv("PULSE_REPORT_FILE"); val != "" {
		cfg.Report.File = val
	}
}

// SplitCSV splits a CSV string into a slice of strings.
// It trims whitespace from each element and ignores empty elements.
func SplitCSV(input string) []string {
	var out []string
	for _, s := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
