// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
logger:
  instrument:
    port: /dev/ttyACM1
    baud_rate: 9600
    channels: "201:213"
    function: VOLT:DC
  poll:
    interval_ms: 5000
  fault:
    threshold: 1.0e+36
    sentinel: 9.9e+37
  reconnect:
    max_attempts: 3
  mqtt:
    enabled: true
    server: tcp://broker.local:1883
    topic: lab/daq
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	Normalize(cfg)
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate err=%v", err)
	}

	lg := cfg.Logger
	if lg.Instrument.Port != "/dev/ttyACM1" {
		t.Fatalf("port=%q", lg.Instrument.Port)
	}
	if lg.Instrument.Function != "VOLT:DC" {
		t.Fatalf("function=%q", lg.Instrument.Function)
	}
	if lg.Poll.IntervalMs != 5000 {
		t.Fatalf("interval=%d", lg.Poll.IntervalMs)
	}
	if lg.Fault.Threshold != 1.0e+36 {
		t.Fatalf("threshold=%g", lg.Fault.Threshold)
	}
	if lg.Reconnect.MaxAttempts != 3 {
		t.Fatalf("max_attempts=%d", lg.Reconnect.MaxAttempts)
	}
	// unset fields picked up defaults
	if lg.Instrument.TimeoutMs != 3000 {
		t.Fatalf("timeout default missing, got %d", lg.Instrument.TimeoutMs)
	}
	if lg.Reconnect.MaxBackoffMs != 30000 {
		t.Fatalf("max backoff default missing, got %d", lg.Reconnect.MaxBackoffMs)
	}
	if !lg.MQTT.Enabled || lg.MQTT.ClientID != "healthlogger" {
		t.Fatalf("mqtt fields wrong: %+v", lg.MQTT)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Default() must validate: %v", err)
	}
	if cfg.Logger.Instrument.Channels != "101:113" {
		t.Fatalf("channels default=%q", cfg.Logger.Instrument.Channels)
	}
	if !*cfg.Logger.Alert.Enabled || !*cfg.Logger.Alert.Beep {
		t.Fatalf("alert defaults wrong: %+v", cfg.Logger.Alert)
	}
}
