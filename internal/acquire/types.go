// internal/acquire/types.go
package acquire

import "time"

// Instrument abstracts the session operations the loop drives. The scpi
// session is the production implementation; tests substitute fakes.
type Instrument interface {
	Scan() (string, error)
	SetAlert(text string, beep bool) error
	ClearAlert() error
	Close() error
}

// InstrumentFactory opens one session. ONE attempt per call: the loop owns
// retry policy so every failed attempt stays observable.
type InstrumentFactory func() (Instrument, error)

// Config is the loop's immutable runtime configuration.
type Config struct {
	// Channels is the fixed channel topology; every record carries exactly
	// this many values.
	Channels int

	// Interval is the delay between the end of one cycle and the start of
	// the next. The single suspension point.
	Interval time.Duration

	// FaultThreshold classifies a reading as the instrument's fault
	// sentinel; SentinelFill populates synthesized fault records.
	FaultThreshold float64
	SentinelFill   float64

	// Reconnect budget: attempts per outage, exponential backoff between
	// them doubling from ReconnectBackoff up to ReconnectMaxBackoff.
	ReconnectAttempts   int
	ReconnectBackoff    time.Duration
	ReconnectMaxBackoff time.Duration

	// Front-panel alerting on fault records. Best effort.
	AlertEnabled bool
	AlertText    string
	AlertBeep    bool
}
