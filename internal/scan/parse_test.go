// internal/scan/parse_test.go
package scan

import (
	"errors"
	"testing"
)

func TestParse_TwoChannels(t *testing.T) {
	values, err := Parse("9946.14871,9.9e+37\n", 2)
	if err != nil {
		t.Fatalf("Parse err=%v", err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	if values[0] != 9946.14871 || values[1] != 9.9e+37 {
		t.Fatalf("values out of order or wrong: %v", values)
	}
}

func TestParse_InstrumentNotation(t *testing.T) {
	// The instrument answers in explicit-sign scientific notation.
	values, err := Parse("+1.99674538E+03,+2.63265505E+04\r\n", 2)
	if err != nil {
		t.Fatalf("Parse err=%v", err)
	}
	if values[0] != 1996.74538 || values[1] != 26326.5505 {
		t.Fatalf("unexpected values: %v", values)
	}
}

func TestParse_CountMismatch(t *testing.T) {
	var perr *ParseError

	_, err := Parse("1.0,2.0,3.0\n", 2)
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Got != 3 || perr.Want != 2 {
		t.Fatalf("got=%d want=%d", perr.Got, perr.Want)
	}

	if _, err := Parse("1.0\n", 2); err == nil {
		t.Fatalf("expected error for short response")
	}
}

func TestParse_BadToken(t *testing.T) {
	_, err := Parse("1.0,overload\n", 2)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse("\n", 2); err == nil {
		t.Fatalf("expected error for empty response")
	}
	if _, err := Parse("", 2); err == nil {
		t.Fatalf("expected error for empty response")
	}
}
