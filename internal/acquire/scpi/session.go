// internal/acquire/scpi/session.go

// Package scpi drives a scanning multimeter (Keysight DAQ970-series class)
// over a USB/serial control link. One command/response transaction at a
// time; the acquisition loop is the only caller.
package scpi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goburrow/serial"
)

// Config is the transport plus measurement setup for one session.
type Config struct {
	Port       string        // serial device, e.g. /dev/ttyUSB0
	BaudRate   int
	Timeout    time.Duration // per read/write transaction
	Channels   string        // channel list as the instrument takes it, e.g. "101:113"
	Function   string        // measurement function: RES or VOLT:DC
	Range      string        // AUTO, MIN, MAX, DEF or an explicit value
	Resolution string        // MIN, MAX, DEF or an explicit value
	NPLC       int           // integration time in power line cycles, 0 leaves default
	AlarmLimit float64       // CALC:LIMIT:LOW threshold on the instrument, 0 disables
}

// Session owns the serial control channel to the instrument. At most one
// open session per process; it must be closed (or the process exit) before
// another session can claim the port.
type Session struct {
	cfg    Config
	port   io.ReadWriteCloser
	rd     *bufio.Reader
	closed bool
}

// Open claims the serial port and applies the measurement configuration.
// No retries here: retry policy belongs to the caller so failures stay
// observable per attempt.
func Open(cfg Config) (*Session, error) {
	port, err := serial.Open(&serial.Config{
		Address:  cfg.Port,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, &ConnectionError{Op: "open " + cfg.Port, Err: err}
	}

	s := &Session{cfg: cfg, port: port, rd: bufio.NewReader(port)}
	if err := s.configure(); err != nil {
		_ = port.Close()
		return nil, err
	}
	return s, nil
}

// Identify queries *IDN? and returns the instrument's identity string.
func (s *Session) Identify() (string, error) {
	return s.query("*IDN?")
}

// Scan triggers one measurement of the configured channel set and returns
// the raw multi-value response, terminator stripped.
//
// The instrument stays silent both while still integrating and when it
// rejected the command, so after a silent read SYST:ERR? tells a
// CommandError apart from a plain TimeoutError.
func (s *Session) Scan() (string, error) {
	if err := s.writeLine("READ?"); err != nil {
		return "", err
	}
	line, err := s.readLine()
	if err == nil {
		return line, nil
	}
	if !errors.Is(err, serial.ErrTimeout) {
		return "", &ConnectionError{Op: "read scan response", Err: err}
	}
	if report, perr := s.probeError(); perr == nil && report != "" {
		return "", &CommandError{Command: "READ?", Report: report}
	}
	return "", &TimeoutError{Op: "READ?", Timeout: s.cfg.Timeout}
}

// SetAlert shows text on the instrument front panel, optionally beeping
// first. Used to flag faulted channels to anyone standing at the rack.
func (s *Session) SetAlert(text string, beep bool) error {
	if beep {
		if err := s.writeLine("SYST:BEEP"); err != nil {
			return err
		}
	}
	return s.writeLine(fmt.Sprintf("DISP:TEXT '%s'", text))
}

// ClearAlert restores the normal front-panel display.
func (s *Session) ClearAlert() error {
	return s.writeLine("DISP:TEXT:CLEAR")
}

// Close releases the control channel. Idempotent, and safe to call on a
// broken session: the instrument teardown writes are best effort only.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for _, cmd := range []string{"STATUS:PRESET", "DISP:TEXT:CLEAR", "*CLS"} {
		if _, err := s.port.Write([]byte(cmd + "\n")); err != nil {
			break
		}
	}
	return s.port.Close()
}

// configure programs the measurement setup. Runs once per connection; the
// caller re-opens (and therefore re-configures) after a connection loss.
func (s *Session) configure() error {
	cmds := []string{
		fmt.Sprintf("CONF:%s %s,%s, (@%s)",
			s.cfg.Function, s.cfg.Range, s.cfg.Resolution, s.cfg.Channels),
	}
	if s.cfg.NPLC > 0 {
		cmds = append(cmds, fmt.Sprintf("%s:NPLC %d", s.cfg.Function, s.cfg.NPLC))
	}
	if s.cfg.AlarmLimit > 0 {
		// Instrument-side alarm: readings below the limit turn the channel
		// display red.
		cmds = append(cmds,
			fmt.Sprintf("CALC:LIMIT:LOW %g", s.cfg.AlarmLimit),
			"CALC:LIMIT:LOW:STATE ON",
		)
	}
	for _, cmd := range cmds {
		if err := s.writeLine(cmd); err != nil {
			return err
		}
	}
	return nil
}

// probeError drains the instrument error queue head. An empty report means
// the last command was accepted.
func (s *Session) probeError() (string, error) {
	line, err := s.query("SYST:ERR?")
	if err != nil {
		return "", err
	}
	// "+0,"No error"" is the all-clear response.
	if strings.HasPrefix(line, "+0,") || strings.HasPrefix(line, "0,") {
		return "", nil
	}
	return line, nil
}

func (s *Session) query(cmd string) (string, error) {
	if err := s.writeLine(cmd); err != nil {
		return "", err
	}
	line, err := s.readLine()
	if err != nil {
		if errors.Is(err, serial.ErrTimeout) {
			return "", &TimeoutError{Op: cmd, Timeout: s.cfg.Timeout}
		}
		return "", &ConnectionError{Op: cmd, Err: err}
	}
	return line, nil
}

func (s *Session) writeLine(cmd string) error {
	if s.closed {
		return &ConnectionError{Op: cmd, Err: errors.New("session closed")}
	}
	if _, err := s.port.Write([]byte(cmd + "\n")); err != nil {
		return &ConnectionError{Op: cmd, Err: err}
	}
	return nil
}

func (s *Session) readLine() (string, error) {
	line, err := s.rd.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
