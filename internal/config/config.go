// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/quoter/internal/quote"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for quoter.
type Config struct {
	PricePerFoot    float64 `mapstructure:"price_per_foot" yaml:"price_per_foot"`
	Company         string  `mapstructure:"company" yaml:"company"`
	DataDir         string  `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel        string  `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string  `mapstructure:"log_file" yaml:"log_file"`
	NATSURL         string  `mapstructure:"nats_url" yaml:"nats_url"`
	SummaryTemplate string  `mapstructure:"summary_template" yaml:"summary_template"`
}

// keys lists every config key with its environment variable.
var keys = []string{
	"price_per_foot",
	"company",
	"data_dir",
	"log_level",
	"log_file",
	"nats_url",
	"summary_template",
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		PricePerFoot: quote.DefaultPricePerFoot,
		Company:      "Custom Cabinetry",
		DataDir:      ".quoter",
		LogLevel:     "info",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	return load(viper.New())
}

// LoadWith is Load with a caller-provided Viper instance, so commands can
// bind their flags before the files are read.
func LoadWith(v *viper.Viper) (*Config, error) {
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigType("yaml")
	v.SetConfigName("quoter")

	d := Default()
	v.SetDefault("price_per_foot", d.PricePerFoot)
	v.SetDefault("company", d.Company)
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("nats_url", "")
	v.SetDefault("summary_template", "")

	v.SetEnvPrefix("QUOTER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range keys {
		if err := v.BindEnv(key, "QUOTER_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if globalPath := GlobalPath(); fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	if projectPath := ProjectPath(); fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects a price per foot that the pricing pipeline cannot use.
func (c *Config) Validate() error {
	if err := quote.CheckAmount(c.PricePerFoot); err != nil {
		return fmt.Errorf("price_per_foot: %w", err)
	}
	if c.PricePerFoot == 0 {
		return fmt.Errorf("price_per_foot must be greater than zero")
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns ~/.config/quoter/quoter.yml or
// $XDG_CONFIG_HOME/quoter/quoter.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quoter", "quoter.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "quoter", "quoter.yml")
}

// ProjectPath returns ./quoter.yml.
func ProjectPath() string {
	return "quoter.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
