// internal/acquire/loop.go

// Package acquire drives the continuous measure-classify-log cycle against
// the instrument and owns shutdown responsiveness. One sequential loop, no
// concurrent scans; the session is the loop's exclusive resource.
package acquire

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/u1and0/HealthLogger/internal/acquire/scpi"
	"github.com/u1and0/HealthLogger/internal/emit"
	"github.com/u1and0/HealthLogger/internal/scan"
)

// ErrReconnectExhausted is returned when the reconnect budget is spent
// without reclaiming the instrument. The only fatal loop outcome; a human
// is expected to intervene physically.
var ErrReconnectExhausted = errors.New("acquire: reconnect attempts exhausted")

type Loop struct {
	cfg     Config
	factory InstrumentFactory
	emitter emit.Emitter

	inst    Instrument
	state   State
	alerted bool
}

// New creates a loop with immutable config.
func New(cfg Config, factory InstrumentFactory, emitter emit.Emitter) (*Loop, error) {
	if cfg.Channels <= 0 {
		return nil, errors.New("acquire: channel count must be > 0")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("acquire: interval must be > 0")
	}
	if cfg.FaultThreshold <= 0 {
		return nil, errors.New("acquire: fault threshold must be > 0")
	}
	if cfg.ReconnectAttempts <= 0 {
		return nil, errors.New("acquire: reconnect attempts must be > 0")
	}
	if factory == nil {
		return nil, errors.New("acquire: instrument factory required")
	}
	if emitter == nil {
		return nil, errors.New("acquire: emitter required")
	}
	return &Loop{cfg: cfg, factory: factory, emitter: emitter, state: StateStarting}, nil
}

// State reports the loop's current lifecycle state.
func (l *Loop) State() State { return l.state }

// Run drives the loop until ctx is cancelled (clean shutdown, returns nil)
// or the reconnect budget is exhausted (returns ErrReconnectExhausted).
//
// Cancellation is observed only at safe points: during the inter-cycle
// delay and during reconnect backoff waits. Never mid-transaction, so the
// instrument session is never left half-transacted.
func (l *Loop) Run(ctx context.Context) error {
	inst, err := l.connect(ctx)
	if err != nil {
		return l.finish(err)
	}
	l.inst = inst
	l.setState(StateRunning)
	defer l.closeInstrument()

	for {
		rec, err := l.cycle()
		if err != nil {
			// Connection-level loss is the only error that escapes a cycle.
			log.Printf("acquire: connection lost: %v", err)
			l.closeInstrument()
			l.setState(StateReconnecting)
			inst, cerr := l.connect(ctx)
			if cerr != nil {
				return l.finish(cerr)
			}
			l.inst = inst
			l.setState(StateRunning)
			continue
		}

		if err := l.emitter.Emit(rec); err != nil {
			log.Printf("acquire: emit failed: %v", err)
		}
		l.alert(rec.Severity)

		// Safe point: shutdown is observed here and only here. Poll first so
		// a signal that arrived during the cycle wins over the timer.
		select {
		case <-ctx.Done():
			return l.finish(nil)
		default:
		}
		select {
		case <-ctx.Done():
			return l.finish(nil)
		case <-time.After(l.cfg.Interval):
		}
	}
}

// cycle performs one acquisition: scan, parse, classify. Per-cycle faults
// (timeout, rejected command, malformed response) are downgraded to a Fault
// record so the log stays append-only and gap-free; only connection loss is
// handed back to the caller.
func (l *Loop) cycle() (scan.Record, error) {
	raw, err := l.inst.Scan()
	at := time.Now()
	if err != nil {
		if scpi.IsConnection(err) {
			return scan.Record{}, err
		}
		log.Printf("acquire: scan failed: %v", err)
		return scan.FaultRecord(at, l.cfg.Channels, l.cfg.SentinelFill), nil
	}

	values, err := scan.Parse(raw, l.cfg.Channels)
	if err != nil {
		log.Printf("acquire: bad scan response: %v", err)
		return scan.FaultRecord(at, l.cfg.Channels, l.cfg.SentinelFill), nil
	}

	return scan.Record{
		At:       at,
		Severity: scan.Classify(values, l.cfg.FaultThreshold),
		Values:   values,
	}, nil
}

// connect opens a session, retrying within the bounded backoff budget. A
// cancelled ctx aborts the wait; Run maps that to a clean shutdown.
func (l *Loop) connect(ctx context.Context) (Instrument, error) {
	attempts := l.cfg.ReconnectAttempts
	for n := 1; ; n++ {
		inst, err := l.factory()
		if err == nil {
			return inst, nil
		}
		log.Printf("acquire: open attempt %d/%d failed: %v", n, attempts, err)
		if n >= attempts {
			return nil, ErrReconnectExhausted
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff(l.cfg.ReconnectBackoff, l.cfg.ReconnectMaxBackoff, n)):
		}
	}
}

// alert mirrors record severity on the instrument front panel,
// edge-triggered so the display is not rewritten every cycle. Best effort:
// a failed display write never affects the loop.
func (l *Loop) alert(sev scan.Severity) {
	if !l.cfg.AlertEnabled || l.inst == nil {
		return
	}
	switch {
	case sev == scan.Fault && !l.alerted:
		if err := l.inst.SetAlert(l.cfg.AlertText, l.cfg.AlertBeep); err != nil {
			log.Printf("acquire: alert failed: %v", err)
			return
		}
		l.alerted = true
	case sev == scan.Normal && l.alerted:
		if err := l.inst.ClearAlert(); err != nil {
			log.Printf("acquire: alert clear failed: %v", err)
			return
		}
		l.alerted = false
	}
}

func (l *Loop) closeInstrument() {
	if l.inst == nil {
		return
	}
	if err := l.inst.Close(); err != nil {
		log.Printf("acquire: session close: %v", err)
	}
	l.inst = nil
	l.alerted = false
}

// finish records the terminal transition. Context cancellation is the
// operator's shutdown request, not a failure.
func (l *Loop) finish(err error) error {
	l.setState(StateShuttingDown)
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (l *Loop) setState(s State) {
	if l.state == s {
		return
	}
	log.Printf("acquire: %s -> %s", l.state, s)
	l.state = s
}
