// Package config loads ec1 settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/takoeight0821/ec1/eval"
	"github.com/takoeight0821/ec1/parser"
)

// AppName names the directories ec1 uses under the XDG base directories.
const AppName = "ec1"

// Config holds the settings of the ec1 command.
type Config struct {
	MaxDepth    int    `toml:"max_depth" yaml:"max_depth"`
	Division    string `toml:"division" yaml:"division"`
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	Output      Output `toml:"output" yaml:"output"`
}

// Output selects which renderings are printed after a successful evaluation.
type Output struct {
	Infix bool `toml:"infix" yaml:"infix"`
	Value bool `toml:"value" yaml:"value"`
	Tree  bool `toml:"tree" yaml:"tree"`
}

var ErrUnknownFormat = errors.New("unknown config format")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxDepth:    parser.DefaultMaxDepth,
		Division:    eval.Floor.String(),
		Prompt:      "> ",
		HistoryFile: filepath.Join(xdg.DataHome, AppName, "."+AppName+"_history"),
		Output:      Output{Infix: true, Value: true, Tree: true},
	}
}

// Load reads the file at path on top of the defaults.
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Discover loads the first of config.toml, config.yaml and config.yml found
// in the XDG config directories. It returns the defaults and an empty path
// if there is none.
func Discover() (*Config, string, error) {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path, err := xdg.SearchConfigFile(filepath.Join(AppName, name))
		if err != nil {
			continue
		}
		cfg, err := Load(path)

		return cfg, path, err
	}

	return Default(), "", nil
}

func (c *Config) Validate() error {
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if _, err := eval.ParseDivision(c.Division); err != nil {
		return err
	}

	return nil
}

// DivisionMode returns the configured division mode.
func (c *Config) DivisionMode() eval.Division {
	d, err := eval.ParseDivision(c.Division)
	if err != nil {
		return eval.Floor
	}

	return d
}
