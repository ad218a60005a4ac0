// internal/scan/record.go
package scan

import "time"

// Severity is the record-level classification of one scan.
type Severity int

const (
	Normal Severity = iota
	Fault
)

func (s Severity) String() string {
	if s == Fault {
		return "fault"
	}
	return "normal"
}

// Record is the unit of one acquisition cycle: one value per configured
// channel, insertion order = channel order. Immutable once classified;
// consumers index channels positionally.
type Record struct {
	At       time.Time
	Severity Severity
	Values   []float64
}

// FaultRecord synthesizes the record for a cycle whose scan never produced
// usable values, keeping the log append-only and gap-free. Every channel
// carries the sentinel fill value.
func FaultRecord(at time.Time, channels int, sentinel float64) Record {
	values := make([]float64, channels)
	for i := range values {
		values[i] = sentinel
	}
	return Record{At: at, Severity: Fault, Values: values}
}
