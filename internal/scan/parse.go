// internal/scan/parse.go
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a scan response whose shape does not match the
// configured channel topology. Always a hard failure: a malformed response
// must never silently yield truncated or padded data.
type ParseError struct {
	Raw  string
	Want int
	Got  int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scan: bad response %q: %v", e.Raw, e.Err)
	}
	return fmt.Sprintf("scan: bad response %q: %d values, want %d", e.Raw, e.Got, e.Want)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts one raw instrument response into channel values.
// Positional order is preserved. All-or-nothing: a wrong token count or a
// single unparseable token fails the whole response.
func Parse(raw string, want int) ([]float64, error) {
	trimmed := strings.TrimRight(raw, "\r\n")
	if trimmed == "" {
		return nil, &ParseError{Raw: raw, Want: want, Got: 0}
	}

	tokens := strings.Split(trimmed, ",")
	if len(tokens) != want {
		return nil, &ParseError{Raw: raw, Want: want, Got: len(tokens)}
	}

	values := make([]float64, 0, want)
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, &ParseError{
				Raw:  raw,
				Want: want,
				Got:  len(tokens),
				Err:  fmt.Errorf("value %d %q: %w", i, tok, err),
			}
		}
		values = append(values, v)
	}
	return values, nil
}
