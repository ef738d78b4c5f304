package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devpospicha/pulse/internal/config"
	"github.com/devpospicha/pulse/internal/logger"
)

// Flags holds command-line overrides. Zero values and nil pointers mean
// "not set on the command line".
type Flags struct {
	ConfigPath      string
	LogLevel        string
	AppLogFile      string
	ErrorLogFile    string
	Sources         string
	CPUInterval     time.Duration
	SamplerCommand  string
	TerminateMethod string
	ReportFile      string
	Interactive     *bool
	RequireTTY      *bool
	Color           *bool
}

// LoadConfig loads the configuration from a file, environment variables, and command-line flags.
// It applies the overrides in the following order: command-line flags > environment variables > config file.
func LoadConfig(flags Flags) (*config.Config, error) {
	configPath, err := resolvePath(flags.ConfigPath, "PULSE_CONFIG", "pulse.yaml")
	if err != nil {
		return nil, err
	}
	if err := config.EnsureDefaultConfig(configPath); err != nil {
		return nil, fmt.Errorf("could not create default config: %w", err)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.ApplyEnvOverrides(cfg)
	applyFlags(cfg, flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Loaded config file from: %s", configPath)
	return cfg, nil
}

func applyFlags(cfg *config.Config, flags Flags) {
	if flags.LogLevel != "" {
		cfg.Logs.LogLevel = flags.LogLevel
	}
	if flags.AppLogFile != "" {
		cfg.Logs.AppLogFile = flags.AppLogFile
	}
	if flags.ErrorLogFile != "" {
		cfg.Logs.ErrorLogFile = flags.ErrorLogFile
	}
	if flags.Sources != "" {
		cfg.Metrics.Sources = config.SplitCSV(flags.Sources)
	}
	if flags.CPUInterval != 0 {
		cfg.Metrics.CPUSampleInterval = flags.CPUInterval
	}
	if fields := strings.Fields(flags.SamplerCommand); len(fields) > 0 {
		cfg.Sampler.Command = fields[0]
		cfg.Sampler.Args = fields[1:]
	}
	if flags.TerminateMethod != "" {
		cfg.Terminate.Method = strings.ToLower(flags.TerminateMethod)
	}
	if flags.ReportFile != "" {
		cfg.Report.File = flags.ReportFile
	}
	if flags.Interactive != nil {
		cfg.Dashboard.Interactive = *flags.Interactive
	}
	if flags.RequireTTY != nil {
		cfg.Dashboard.RequireTTY = *flags.RequireTTY
	}
	if flags.Color != nil {
		cfg.Dashboard.Color = *flags.Color
	}
}

// resolvePath resolves the path for a given flag value, environment variable, and fallback value.
func resolvePath(flagVal, envVar, fallback string) (string, error) {
	path := fallback
	if flagVal != "" {
		path = flagVal
	} else if val := os.Getenv(envVar); val != "" {
		path = val
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}
