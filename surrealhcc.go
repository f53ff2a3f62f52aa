// Package surrealhcc measures Handler Cyclomatic Complexity (HCC) of Java
// classes and records it in a metric store.
//
// HCC of a class is the sum, over every catch block found anywhere in the
// class, of 1 plus the weighted count of decision constructs in the catch
// body: if (+1 more with else), switch, each case label, for, for-each,
// while, do, break, continue, return and each && or || operator.
//
// Start SurrealDB for the default store:
//
//	surreal start --user root --pass root --bind 0.0.0.0:8000 memory
package surrealhcc

import (
	"context"
	"log/slog"

	"github.com/TFMV/surrealhcc/analysis"
	"github.com/TFMV/surrealhcc/db"
	"github.com/TFMV/surrealhcc/eligibility"
	"github.com/TFMV/surrealhcc/types"
)

const Version = "0.1.0"

// Config holds everything needed for one analysis run.
type Config struct {
	DB           db.Config
	Options      analysis.Options
	IncludeTests bool
	Logger       *slog.Logger
}

// DefaultConfig returns the CLI defaults.
func DefaultConfig() Config {
	return Config{
		DB:      db.DefaultConfig(),
		Options: analysis.DefaultOptions(),
	}
}

// NewAnalyzer builds an Analyzer over store from cfg.
func NewAnalyzer(store db.Store, cfg Config) *analysis.Analyzer {
	a := analysis.New(store, cfg.Options)
	if cfg.IncludeTests {
		a.Eligible = eligibility.WithTests()
	}
	if cfg.Logger != nil {
		a.Logger = cfg.Logger
	}
	return a
}

// Analyze initializes store, measures every eligible class under dir and
// records the results.
func Analyze(ctx context.Context, dir string, store db.Store, cfg Config) (types.AnalysisReport, error) {
	a := NewAnalyzer(store, cfg)
	if err := a.Initialize(ctx); err != nil {
		return types.AnalysisReport{}, err
	}
	return a.AnalyzeDirectory(ctx, dir)
}
