package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	sectionRuntime = "runtime"
	sectionProcess = "process"
	sectionServer  = "server"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	knownSections = []string{sectionRuntime, sectionProcess, sectionServer}
	knownFormats  = []string{formatText, formatJSON, formatYAML}
)

// Config holds monitorctl settings.
type Config struct {
	Domain   string        `mapstructure:"domain"`
	Sections []string      `mapstructure:"sections"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Format   string        `mapstructure:"format"`
	Server   ServerConfig  `mapstructure:"server"`
}

// ServerConfig configures the server status section.
type ServerConfig struct {
	ID      string `mapstructure:"id"`
	Version string `mapstructure:"version"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Domain:   "monitoring",
		Sections: append([]string(nil), knownSections...),
		CacheTTL: 0,
		Format:   formatText,
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("domain", d.Domain)
	v.SetDefault("sections", d.Sections)
	v.SetDefault("cache_ttl", d.CacheTTL)
	v.SetDefault("format", d.Format)
	v.SetDefault("server.id", d.Server.ID)
	v.SetDefault("server.version", d.Server.Version)
}

// readConfig loads cfgFile, or monitorctl.yaml from the working directory or
// ~/.config/monitorctl when cfgFile is empty. A missing default file is not an error.
func readConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("MONITORCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("monitorctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "monitorctl"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks section names and the output format.
func (c Config) Validate() error {
	if c.Domain == "" {
		return errors.New("config: domain must not be empty")
	}
	for _, s := range c.Sections {
		if !slices.Contains(knownSections, s) {
			return fmt.Errorf("config: unknown section %q (known: %s)", s, strings.Join(knownSections, ", "))
		}
	}
	if !slices.Contains(knownFormats, c.Format) {
		return fmt.Errorf("config: unknown format %q (known: %s)", c.Format, strings.Join(knownFormats, ", "))
	}
	if c.CacheTTL < 0 {
		return errors.New("config: cache_ttl must not be negative")
	}
	return nil
}
