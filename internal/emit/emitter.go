// internal/emit/emitter.go
package emit

import "github.com/u1and0/HealthLogger/internal/scan"

// Emitter delivers one classified record to a sink.
type Emitter interface {
	Emit(rec scan.Record) error
	Close() error
}

// Multi fans a record out to every sink in order. All sinks are attempted;
// the first error is returned.
type Multi []Emitter

func (m Multi) Emit(rec scan.Record) error {
	var first error
	for _, e := range m {
		if err := e.Emit(rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m Multi) Close() error {
	var first error
	for _, e := range m {
		if err := e.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
