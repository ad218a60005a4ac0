// internal/scan/classify.go
package scan

import "math"

// Classify assigns record-level severity from parsed channel values.
//
// The instrument encodes "no valid measurement on this channel" as a huge
// out-of-range float (~9.9e37) instead of a distinct error channel, so
// classification is a magnitude test against a configured threshold. Any
// single faulted channel marks the whole record: partial validity is not
// expressible at record level.
func Classify(values []float64, threshold float64) Severity {
	for _, v := range values {
		if math.Abs(v) >= threshold {
			return Fault
		}
	}
	return Normal
}
