// Package config loads datasourcegen configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default settings.
const (
	DefaultOutputDir = "datasources"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Config holds the generator settings.
type Config struct {
	ProjectName string   `mapstructure:"project_name"`
	DateRange   string   `mapstructure:"date_range"`
	OutputDir   string   `mapstructure:"output_dir"`
	Strict      bool     `mapstructure:"strict"`
	Log         Log      `mapstructure:"log"`
	Members     []Member `mapstructure:"members"`
}

// Log holds logger settings.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Member describes one roster entry.
type Member struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Extended bool   `mapstructure:"extended" yaml:"extended,omitempty"`
}

// MemberValidationError describes an invalid roster entry.
type MemberValidationError struct {
	Index   int
	Message string
}

func (e *MemberValidationError) Error() string {
	return fmt.Sprintf("members[%d]: %s", e.Index, e.Message)
}

// Load reads configuration from the given file, or from the default search
// paths when path is empty. A missing config file is not an error in the
// search-path case; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix("DATASOURCEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env values through Unmarshal for
	// keys without a default, so bind every scalar key explicitly.
	for _, key := range []string{
		"project_name", "date_range", "output_dir", "strict",
		"log.level", "log.format",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("datasourcegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "datasourcegen"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the roster entries.
func (c *Config) Validate() error {
	for i, member := range c.Members {
		if strings.TrimSpace(member.Name) == "" {
			return &MemberValidationError{Index: i, Message: "name is required"}
		}
	}
	return nil
}
