package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/raftario/possum/frontend"
)

// ErrInvalidConfig is returned for configuration files with invalid values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of the command line tool.
type Config struct {
	Trace      string `yaml:"trace"`
	Prompt     string `yaml:"prompt"`
	ShowTokens bool   `yaml:"show_tokens"`
	ShowTiming bool   `yaml:"show_timing"`
	Format     string `yaml:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Trace:      "Error",
		Prompt:     "possum> ",
		ShowTokens: true,
		ShowTiming: true,
		Format:     string(frontend.JSON),
	}
}

// LoadConfig loads the environment file envPath, if it exists, and then the
// configuration file configPath. A missing configuration file results in the default
// configuration. Values missing from the file keep their defaults.
func LoadConfig(configPath, envPath string) (*Config, error) {
	if envPath != "" && fileExists(envPath) {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load environment file: %w", err)
		}
	}
	config := defaultConfig()
	if configPath != "" && fileExists(configPath) {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// unknown fields are most probably typos
		if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		tracer().Debugf("loaded configuration from %s", configPath)
	}
	config.Trace = expandEnvVars(config.Trace)
	config.Prompt = expandEnvVars(config.Prompt)
	config.Format = expandEnvVars(config.Format)
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Trace) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("%w: trace level must be one of Debug, Info, Error; is %q", ErrInvalidConfig, c.Trace)
	}
	format, err := frontend.ParseFormat(c.Format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.Format = string(format)
	return nil
}

var (
	bracedVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	plainVar  = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands environment variables in the format ${VAR} or $VAR.
func expandEnvVars(s string) string {
	s = bracedVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
	return plainVar.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[1:])
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
