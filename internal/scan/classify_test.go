// internal/scan/classify_test.go
package scan

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	const threshold = 1e37

	cases := []struct {
		name   string
		values []float64
		want   Severity
	}{
		{"all valid", []float64{9954.80522, 9962.13349}, Normal},
		{"one sentinel", []float64{9946.14871, 9.9e+37}, Fault},
		{"all sentinel", []float64{9.9e+37, 9.9e+37}, Fault},
		{"negative sentinel", []float64{-9.9e+37, 100.0}, Fault},
		{"exactly threshold", []float64{1e37}, Fault},
		{"just below", []float64{9.999e36}, Normal},
		{"empty", nil, Normal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.values, threshold); got != tc.want {
				t.Fatalf("Classify(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestFaultRecord(t *testing.T) {
	rec := FaultRecord(time.Now(), 3, 9.9e+37)
	if rec.Severity != Fault {
		t.Fatalf("severity = %v, want fault", rec.Severity)
	}
	if len(rec.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(rec.Values))
	}
	for i, v := range rec.Values {
		if v != 9.9e+37 {
			t.Fatalf("value %d = %v, want sentinel", i, v)
		}
	}
}
