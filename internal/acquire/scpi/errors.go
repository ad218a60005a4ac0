// internal/acquire/scpi/errors.go
package scpi

import (
	"errors"
	"fmt"
	"time"
)

// ConnectionError reports a control channel that could not be established or
// dropped mid-transaction. The acquisition loop reconnects on it.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("scpi: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TimeoutError reports an instrument that produced no response within the
// configured window. Recoverable per cycle; no reconnect.
type TimeoutError struct {
	Op      string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("scpi: %s: no response within %s", e.Op, e.Timeout)
}

// CommandError reports a command the instrument rejected, carrying the
// SYST:ERR? report when one could be retrieved.
type CommandError struct {
	Command string
	Report  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("scpi: %q rejected: %s", e.Command, e.Report)
}

func IsConnection(err error) bool {
	var e *ConnectionError
	return errors.As(err, &e)
}

func IsTimeout(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}

func IsCommand(err error) bool {
	var e *CommandError
	return errors.As(err, &e)
}
