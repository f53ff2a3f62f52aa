package types

import "fmt"

// MetricKind identifies a class-level metric.
type MetricKind string

const (
	// HCC is Handler Cyclomatic Complexity: the decision logic embedded in
	// a class's catch blocks.
	HCC MetricKind = "HCC"
)

func (k MetricKind) String() string {
	return string(k)
}

// Measure is one metric value collected for a class.
type Measure struct {
	Kind  MetricKind `json:"kind"`
	Value float64    `json:"value"`
}

func (m Measure) String() string {
	return fmt.Sprintf("%s=%g", m.Kind, m.Value)
}
