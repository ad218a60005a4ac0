// internal/emit/console.go
package emit

import (
	"io"

	"github.com/u1and0/HealthLogger/internal/logline"
	"github.com/u1and0/HealthLogger/internal/scan"
)

// Console appends one canonical log line per record to a writer, stdout in
// production. File placement and rotation are the invoking environment's
// job: the process only ever appends.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Emit(rec scan.Record) error {
	_, err := io.WriteString(c.w, logline.Format(rec)+"\n")
	return err
}

func (c *Console) Close() error { return nil }
