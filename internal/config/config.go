// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger LoggerConfig `yaml:"logger"`
}

type LoggerConfig struct {
	Instrument InstrumentConfig `yaml:"instrument"`
	Poll       PollConfig       `yaml:"poll"`
	Fault      FaultConfig      `yaml:"fault"`
	Reconnect  ReconnectConfig  `yaml:"reconnect"`
	Alert      AlertConfig      `yaml:"alert"`
	MQTT       MQTTConfig       `yaml:"mqtt"`
}

// ---- INSTRUMENT ----

type InstrumentConfig struct {
	Port       string `yaml:"port"`
	BaudRate   int    `yaml:"baud_rate"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	Channels   string `yaml:"channels"`   // "101:113" or "101,102"
	Function   string `yaml:"function"`   // RES | VOLT:DC
	Range      string `yaml:"range"`
	Resolution string `yaml:"resolution"`
	NPLC       int    `yaml:"nplc"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- FAULT CLASSIFICATION ----

type FaultConfig struct {
	// Threshold is the magnitude at or above which a reading counts as the
	// instrument's fault sentinel. Firmware conventions vary, hence config.
	Threshold float64 `yaml:"threshold"`
	// Sentinel is the fill value written into synthesized fault records.
	Sentinel float64 `yaml:"sentinel"`
	// AlarmLimit arms the instrument's own low-limit alarm (0 disables).
	AlarmLimit float64 `yaml:"alarm_limit"`
}

// ---- RECONNECT ----

type ReconnectConfig struct {
	MaxAttempts      int `yaml:"max_attempts"`
	InitialBackoffMs int `yaml:"initial_backoff_ms"`
	MaxBackoffMs     int `yaml:"max_backoff_ms"`
}

// ---- FRONT-PANEL ALERT ----

type AlertConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	DisplayText string `yaml:"display_text"`
	Beep        *bool  `yaml:"beep"`
}

// ---- MQTT SINK ----

type MQTTConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Server   string `yaml:"server"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Load reads and decodes a YAML configuration file. Callers run Normalize
// and Validate afterwards.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given. Every field
// is runnable as-is so the binary needs no arguments in the field.
func Default() *Config {
	cfg := &Config{}
	Normalize(cfg)
	return cfg
}
