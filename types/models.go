package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/TFMV/surrealhcc/tree"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// ClassUnit is one declared class together with its syntax subtree.
type ClassUnit struct {
	QualifiedName string   `json:"qualified_name"`
	Package       string   `json:"package,omitempty"`
	Path          string   `json:"path"`
	Line          int      `json:"line"`
	Annotations   []string `json:"annotations,omitempty"`
	// SyntaxErrors is set when the file did not parse cleanly, so decision
	// constructs may be missing from Root.
	SyntaxErrors bool       `json:"syntax_errors,omitempty"`
	Root         *tree.Node `json:"-"`
}

// SimpleName returns the class name without package or enclosing classes.
func (u ClassUnit) SimpleName() string {
	name := u.QualifiedName
	if i := strings.LastIndexAny(name, ".$"); i >= 0 {
		name = name[i+1:]
	}
	// Local classes carry their index in the binary name.
	return strings.TrimLeft(name, "0123456789")
}

// HasAnnotation reports whether the class carries the named annotation,
// matched on its simple or qualified name.
func (u ClassUnit) HasAnnotation(name string) bool {
	for _, a := range u.Annotations {
		if a == name || strings.HasSuffix(a, "."+name) {
			return true
		}
	}
	return false
}

// HandlerResult is the score of a single catch block.
type HandlerResult struct {
	Line  int     `json:"line"`
	Score float64 `json:"score"`
}

// ClassResult is the measure collected for one eligible class.
type ClassResult struct {
	QualifiedName string          `json:"qualified_name"`
	Path          string          `json:"path"`
	Measure       Measure         `json:"measure"`
	Handlers      []HandlerResult `json:"handlers,omitempty"`
	SyntaxErrors  bool            `json:"syntax_errors,omitempty"`
}

// Failure records a class whose tree could not be scored.
type Failure struct {
	QualifiedName string `json:"qualified_name"`
	Path          string `json:"path"`
	Error         string `json:"error"`
}

// MeasureRecord is the row persisted per class in the metric store.
type MeasureRecord struct {
	ID            *models.RecordID `json:"id,omitempty"`
	QualifiedName string           `json:"qualified_name"`
	Metric        MetricKind       `json:"metric"`
	Value         float64          `json:"value"`
	Path          string           `json:"path,omitempty"`
	Handlers      int              `json:"handlers"`
}

// AnalysisReport contains the complete analysis results
type AnalysisReport struct {
	Classes  []ClassResult
	Skipped  []string
	Failures []Failure
	Summary  Summary
}

// Summary is a high-level view of the collected measures.
type Summary struct {
	TotalClasses    int     `json:"total_classes"`
	MeasuredClasses int     `json:"measured_classes"`
	SkippedClasses  int     `json:"skipped_classes"`
	FailedClasses   int     `json:"failed_classes"`
	TotalHandlers   int     `json:"total_handlers"`
	TotalHCC        float64 `json:"total_hcc"`
	AvgHCC          float64 `json:"avg_hcc"`
	MaxHCC          float64 `json:"max_hcc"`

	// Hotspots are the classes with the highest HCC.
	Hotspots []Hotspot `json:"hotspots"`
}

type Hotspot struct {
	QualifiedName string  `json:"qualified_name"`
	Path          string  `json:"path"`
	HCC           float64 `json:"hcc"`
	Handlers      int     `json:"handlers"`
}

// Records converts the class results into store rows.
func (r AnalysisReport) Records() []MeasureRecord {
	records := make([]MeasureRecord, 0, len(r.Classes))
	for _, c := range r.Classes {
		records = append(records, MeasureRecord{
			QualifiedName: c.QualifiedName,
			Metric:        c.Measure.Kind,
			Value:         c.Measure.Value,
			Path:          c.Path,
			Handlers:      len(c.Handlers),
		})
	}
	return records
}

// PrettyPrint returns a formatted summary of the analysis
func (r AnalysisReport) PrettyPrint() string {
	type ClassSummary struct {
		Name     string  `json:"name"`
		File     string  `json:"file"`
		HCC      float64 `json:"hcc"`
		Handlers int     `json:"handlers"`
		Partial  bool    `json:"syntax_errors,omitempty"`
	}

	type Output struct {
		Summary  Summary        `json:"summary"`
		Classes  []ClassSummary `json:"classes"`
		Failures []Failure      `json:"failures,omitempty"`
	}

	out := Output{
		Summary:  r.Summary,
		Classes:  make([]ClassSummary, 0, len(r.Classes)),
		Failures: r.Failures,
	}

	for _, c := range r.Classes {
		out.Classes = append(out.Classes, ClassSummary{
			Name:     c.QualifiedName,
			File:     c.Path,
			HCC:      c.Measure.Value,
			Handlers: len(c.Handlers),
			Partial:  c.SyntaxErrors,
		})
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating summary: %v", err)
	}

	return string(jsonBytes)
}
