package editorui

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the externally settable editor options, loadable from a
// YAML file so hosts can ship a theme alongside the plugin:
//
//	background:
//	  r: 0.12
//	  g: 0.12
//	  b: 0.14
//	  a: 1.0
//	repaint_interval_ms: 15
type Config struct {
	Background        Color `yaml:"background"`
	RepaintIntervalMS int   `yaml:"repaint_interval_ms"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Background:        DefaultBackground,
		RepaintIntervalMS: int(DefaultRepaintInterval / time.Millisecond),
	}
}

// LoadConfig reads a YAML config file. Missing fields keep their
// defaults; a non-positive repaint interval is replaced by the default.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("editorui: read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("editorui: parse config %s: %w", path, err)
	}

	if cfg.RepaintIntervalMS <= 0 {
		cfg.RepaintIntervalMS = int(DefaultRepaintInterval / time.Millisecond)
	}
	return cfg, nil
}

// ApplyConfig applies a loaded config to the editor.
func (e *Editor) ApplyConfig(cfg Config) {
	e.SetBackgroundColor(cfg.Background)
	e.SetRepaintInterval(time.Duration(cfg.RepaintIntervalMS) * time.Millisecond)
}
