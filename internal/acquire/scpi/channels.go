// internal/acquire/scpi/channels.go
package scpi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ExpandChannels parses an instrument channel list into the ordered channel
// numbers it covers. Two forms are accepted, the same ones the instrument
// takes in a (@...) argument: a comma list ("101,102,110") and an inclusive
// range ("101:113").
//
// The instrument sorts channel lists ascending before scanning, so the
// response order always follows ascending channel number regardless of how
// the list was written.
func ExpandChannels(list string) ([]int, error) {
	s := strings.TrimSpace(list)
	if s == "" {
		return nil, errors.New("scpi: empty channel list")
	}

	if lo, hi, ok := strings.Cut(s, ":"); ok {
		a, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("scpi: bad channel range %q: %w", s, err)
		}
		b, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("scpi: bad channel range %q: %w", s, err)
		}
		if b < a {
			return nil, fmt.Errorf("scpi: descending channel range %q", s)
		}
		out := make([]int, 0, b-a+1)
		for ch := a; ch <= b; ch++ {
			out = append(out, ch)
		}
		return out, nil
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		ch, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("scpi: bad channel %q in %q: %w", p, s, err)
		}
		out = append(out, ch)
	}
	return out, nil
}
