// internal/emit/console_test.go
package emit

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/u1and0/HealthLogger/internal/scan"
)

func sampleRecord() scan.Record {
	return scan.Record{
		At:       time.Date(2023, 6, 29, 10, 44, 30, 509*int(time.Millisecond), time.Local),
		Severity: scan.Fault,
		Values:   []float64{9946.14871, 9.9e+37},
	}
}

func TestConsoleEmit(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	if err := c.Emit(sampleRecord()); err != nil {
		t.Fatalf("Emit err=%v", err)
	}

	want := "[ ERRO ] 2023-06-29 10:44:30,509: 9946.14871,9.9e+37\n"
	if buf.String() != want {
		t.Fatalf("console wrote:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestConsoleAppends(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	_ = c.Emit(sampleRecord())
	_ = c.Emit(sampleRecord())

	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}

// failEmitter always errors, for Multi behavior checks.
type failEmitter struct{ calls int }

func (f *failEmitter) Emit(scan.Record) error { f.calls++; return errors.New("sink down") }
func (f *failEmitter) Close() error           { return nil }

func TestMultiAttemptsAllSinks(t *testing.T) {
	var buf bytes.Buffer
	bad := &failEmitter{}
	m := Multi{bad, NewConsole(&buf)}

	err := m.Emit(sampleRecord())
	if err == nil {
		t.Fatalf("expected error from failing sink")
	}
	if bad.calls != 1 {
		t.Fatalf("failing sink called %d times", bad.calls)
	}
	if buf.Len() == 0 {
		t.Fatalf("console sink skipped after earlier failure")
	}
}
