// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/u1and0/HealthLogger/internal/acquire/scpi"
)

// Validate checks configuration correctness. Declarative checks only; it
// MUST NOT mutate configuration and expects Normalize() to have run.
func Validate(cfg *Config) error {
	lg := cfg.Logger

	// ------------------------------------------------------------
	// INSTRUMENT LINK
	// ------------------------------------------------------------

	if lg.Instrument.Port == "" {
		return fmt.Errorf("instrument.port is required")
	}
	if lg.Instrument.BaudRate <= 0 {
		return fmt.Errorf("instrument.baud_rate must be > 0, got %d", lg.Instrument.BaudRate)
	}
	if lg.Instrument.TimeoutMs <= 0 {
		return fmt.Errorf("instrument.timeout_ms must be > 0, got %d", lg.Instrument.TimeoutMs)
	}

	switch lg.Instrument.Function {
	case "RES", "VOLT:DC":
	default:
		return fmt.Errorf("instrument.function must be RES or VOLT:DC, got %q", lg.Instrument.Function)
	}

	if lg.Instrument.NPLC < 0 {
		return fmt.Errorf("instrument.nplc must be >= 0, got %d", lg.Instrument.NPLC)
	}

	// The channel list fixes the topology for the whole deployment; reject
	// anything the instrument would not accept.
	chs, err := scpi.ExpandChannels(lg.Instrument.Channels)
	if err != nil {
		return fmt.Errorf("instrument.channels: %w", err)
	}
	if len(chs) == 0 {
		return fmt.Errorf("instrument.channels %q selects no channels", lg.Instrument.Channels)
	}

	// ------------------------------------------------------------
	// CADENCE AND CLASSIFICATION
	// ------------------------------------------------------------

	if lg.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll.interval_ms must be > 0, got %d", lg.Poll.IntervalMs)
	}

	if lg.Fault.Threshold <= 0 {
		return fmt.Errorf("fault.threshold must be > 0, got %g", lg.Fault.Threshold)
	}
	if lg.Fault.Sentinel < lg.Fault.Threshold {
		return fmt.Errorf(
			"fault.sentinel %g is below fault.threshold %g: synthesized fault records would classify as normal",
			lg.Fault.Sentinel, lg.Fault.Threshold,
		)
	}
	if lg.Fault.AlarmLimit < 0 {
		return fmt.Errorf("fault.alarm_limit must be >= 0, got %g", lg.Fault.AlarmLimit)
	}

	// ------------------------------------------------------------
	// RECONNECT BUDGET
	// ------------------------------------------------------------

	if lg.Reconnect.MaxAttempts <= 0 {
		return fmt.Errorf("reconnect.max_attempts must be > 0, got %d", lg.Reconnect.MaxAttempts)
	}
	if lg.Reconnect.InitialBackoffMs <= 0 {
		return fmt.Errorf("reconnect.initial_backoff_ms must be > 0, got %d", lg.Reconnect.InitialBackoffMs)
	}
	if lg.Reconnect.MaxBackoffMs < lg.Reconnect.InitialBackoffMs {
		return fmt.Errorf(
			"reconnect.max_backoff_ms %d is below initial_backoff_ms %d",
			lg.Reconnect.MaxBackoffMs, lg.Reconnect.InitialBackoffMs,
		)
	}

	// ------------------------------------------------------------
	// MQTT SINK (OPT-IN)
	// ------------------------------------------------------------

	if lg.MQTT.Enabled {
		if lg.MQTT.Server == "" {
			return fmt.Errorf("mqtt.server is required when mqtt.enabled is set")
		}
		if lg.MQTT.Topic == "" {
			return fmt.Errorf("mqtt.topic is required when mqtt.enabled is set")
		}
		if lg.MQTT.ClientID == "" {
			return fmt.Errorf("mqtt.client_id is required when mqtt.enabled is set")
		}
	}

	return nil
}
