// internal/acquire/state.go
package acquire

// State identifies where the acquisition loop is in its lifecycle. Used for
// diagnostics only; transitions are logged to stderr.
type State int

const (
	StateStarting State = iota
	StateRunning
	StateReconnecting
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateReconnecting:
		return "reconnecting"
	case StateShuttingDown:
		return "shutting-down"
	default:
		return "unknown"
	}
}
