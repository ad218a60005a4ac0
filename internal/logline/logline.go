// internal/logline/logline.go

// Package logline encodes scan records into the canonical log format:
//
//	[ INFO ] 2023-06-29 10:44:30,509: 9946.14871,9.9e+37
//
// One record per line, UTF-8, severity tag padded to 4 characters, local
// wall-clock timestamp with millisecond precision, channel values in fixed
// channel order. The format is append-only and stable: Parse(Format(r))
// recovers severity, timestamp and values exactly.
package logline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/u1and0/HealthLogger/internal/scan"
)

const (
	tagNormal = "INFO"
	tagFault  = "ERRO"

	timeLayout = "2006-01-02 15:04:05"
)

// Format renders one record as a single canonical line, without trailing
// newline. Values use shortest round-trip formatting so that re-parsing an
// emitted line reproduces the original measurement.
func Format(rec scan.Record) string {
	var b strings.Builder
	b.WriteString("[ ")
	b.WriteString(tag(rec.Severity))
	b.WriteString(" ] ")
	b.WriteString(rec.At.Format(timeLayout))
	fmt.Fprintf(&b, ",%03d: ", rec.At.Nanosecond()/int(time.Millisecond))
	for i, v := range rec.Values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

// Parse is the inverse of Format. The timestamp is interpreted as local
// wall-clock time, matching what Format wrote.
func Parse(line string) (scan.Record, error) {
	var rec scan.Record

	rest, ok := strings.CutPrefix(line, "[ ")
	if !ok {
		return rec, fmt.Errorf("logline: missing severity tag in %q", line)
	}
	tagStr, rest, ok := strings.Cut(rest, " ] ")
	if !ok {
		return rec, fmt.Errorf("logline: missing severity tag in %q", line)
	}
	switch tagStr {
	case tagNormal:
		rec.Severity = scan.Normal
	case tagFault:
		rec.Severity = scan.Fault
	default:
		return rec, fmt.Errorf("logline: unknown severity %q", tagStr)
	}

	stamp, payload, ok := strings.Cut(rest, ": ")
	if !ok {
		return rec, fmt.Errorf("logline: missing timestamp separator in %q", line)
	}
	base, msStr, ok := strings.Cut(stamp, ",")
	if !ok {
		return rec, fmt.Errorf("logline: missing milliseconds in %q", stamp)
	}
	at, err := time.ParseInLocation(timeLayout, base, time.Local)
	if err != nil {
		return rec, fmt.Errorf("logline: bad timestamp %q: %w", base, err)
	}
	ms, err := strconv.Atoi(msStr)
	if err != nil || ms < 0 || ms > 999 {
		return rec, fmt.Errorf("logline: bad milliseconds %q", msStr)
	}
	rec.At = at.Add(time.Duration(ms) * time.Millisecond)

	for _, tok := range strings.Split(payload, ",") {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return rec, fmt.Errorf("logline: bad value %q: %w", tok, err)
		}
		rec.Values = append(rec.Values, v)
	}
	return rec, nil
}

func tag(s scan.Severity) string {
	if s == scan.Fault {
		return tagFault
	}
	return tagNormal
}
