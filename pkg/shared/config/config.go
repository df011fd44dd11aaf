package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Logger  Logger  `yaml:"logger"`
	Engine  Engine  `yaml:"engine"`
	Bap     Bap     `yaml:"bap"`
	Plugins Plugins `yaml:"plugins"`
}

type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// Engine holds defaults for the propagation prompts. Values left at zero
// fall back to the built-in defaults (primus, 4096, 64).
type Engine struct {
	Name       string `yaml:"name"`
	MaxLength  int    `yaml:"max_length"`
	MaxVisited int    `yaml:"max_visited"`
}

// Bap describes how to reach the external analysis toolchain.
type Bap struct {
	// Path is the engine binary. Defaults to "bap" on PATH.
	Path string `yaml:"path"`
	// TempDir is where session artifacts are created. Defaults to os.TempDir.
	TempDir string `yaml:"temp_dir"`
	// ScriptInterpreter, when set, is the command the headless host uses to
	// execute the generated script, e.g. ["python3"]. The script path is
	// appended as the last argument.
	ScriptInterpreter []string `yaml:"script_interpreter"`
}

type Plugins struct {
	Home string `yaml:"home"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the YAML config at configPath. A missing file is not an
// error; the zero Config works with built-in defaults everywhere.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateConfig checks values that have no sensible recovery at use time.
func ValidateConfig(cfg *Config) error {
	if cfg.Engine.MaxLength < 0 {
		return fmt.Errorf("engine.max_length must be positive, got %d", cfg.Engine.MaxLength)
	}
	if cfg.Engine.MaxVisited < 0 {
		return fmt.Errorf("engine.max_visited must be positive, got %d", cfg.Engine.MaxVisited)
	}
	return nil
}
