package analysis

import (
	"sort"

	"github.com/TFMV/surrealhcc/types"
)

// Summarize computes the report summary. total is the number of class units
// seen, eligible or not; hotspots caps the number of listed top classes.
func Summarize(report types.AnalysisReport, total, hotspots int) types.Summary {
	s := types.Summary{
		TotalClasses:    total,
		MeasuredClasses: len(report.Classes),
		SkippedClasses:  len(report.Skipped),
		FailedClasses:   len(report.Failures),
		Hotspots:        []types.Hotspot{},
	}

	for _, c := range report.Classes {
		s.TotalHandlers += len(c.Handlers)
		s.TotalHCC += c.Measure.Value
		if c.Measure.Value > s.MaxHCC {
			s.MaxHCC = c.Measure.Value
		}
	}
	if len(report.Classes) > 0 {
		s.AvgHCC = s.TotalHCC / float64(len(report.Classes))
	}

	ranked := make([]types.ClassResult, 0, len(report.Classes))
	for _, c := range report.Classes {
		if c.Measure.Value > 0 {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Measure.Value != ranked[j].Measure.Value {
			return ranked[i].Measure.Value > ranked[j].Measure.Value
		}
		return ranked[i].QualifiedName < ranked[j].QualifiedName
	})
	if hotspots >= 0 && len(ranked) > hotspots {
		ranked = ranked[:hotspots]
	}
	for _, c := range ranked {
		s.Hotspots = append(s.Hotspots, types.Hotspot{
			QualifiedName: c.QualifiedName,
			Path:          c.Path,
			HCC:           c.Measure.Value,
			Handlers:      len(c.Handlers),
		})
	}

	return s
}
