package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.yml"))
	assert.NoError(t, err, "a missing config file is not an error")
	assert.NotNil(t, cfg)
	assert.Equal(t, "", cfg.Engine.Name)
}

func TestLoadConfigFromYAML(t *testing.T) {
	body := `logger:
  level: debug
engine:
  name: legacy
  max_length: 1024
  max_visited: 32
bap:
  path: /opt/bap/bin/bap
  temp_dir: /tmp/bap-sessions
  script_interpreter: ["python3"]
plugins:
  home: /opt/bap-taint/plugins
`
	path := filepath.Join(t.TempDir(), "config.yml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "legacy", cfg.Engine.Name)
	assert.Equal(t, 1024, cfg.Engine.MaxLength)
	assert.Equal(t, 32, cfg.Engine.MaxVisited)
	assert.Equal(t, "/opt/bap/bin/bap", cfg.Bap.Path)
	assert.Equal(t, []string{"python3"}, cfg.Bap.ScriptInterpreter)
	assert.Equal(t, "/opt/bap-taint/plugins", cfg.Plugins.Home)
}

func TestLoadConfigRejectsDirectory(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	// Stat succeeds, so the directory check in LoadYAML must trip.
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(&Config{}))
	assert.Error(t, ValidateConfig(&Config{Engine: Engine{MaxLength: -1}}))
	assert.Error(t, ValidateConfig(&Config{Engine: Engine{MaxVisited: -1}}))
}

func TestGetBoolValue(t *testing.T) {
	enabled := true
	cfg := &Config{Logger: Logger{JSONFormat: &enabled}}

	assert.True(t, GetBoolValue(cfg, "Logger.JSONFormat", false))
	assert.True(t, GetBoolValue(cfg, "Logger.DisableTime", true), "unset pointer falls back to default")
	assert.False(t, GetBoolValue(nil, "Logger.JSONFormat", false))
}
