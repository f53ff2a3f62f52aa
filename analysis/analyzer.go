package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"

	"github.com/TFMV/surrealhcc/cache"
	"github.com/TFMV/surrealhcc/db"
	"github.com/TFMV/surrealhcc/discover"
	"github.com/TFMV/surrealhcc/eligibility"
	"github.com/TFMV/surrealhcc/parser"
	"github.com/TFMV/surrealhcc/tree"
	"github.com/TFMV/surrealhcc/types"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicateClass is reported when two units share a qualified name. Only
// the first, in path and line order, is measured.
var ErrDuplicateClass = errors.New("duplicate qualified name")

// Options tunes an Analyzer.
type Options struct {
	// Workers bounds the number of files parsed at once. Zero means GOMAXPROCS.
	Workers int
	// CacheSize is the number of files whose lowered units are kept. Zero disables caching.
	CacheSize int
	// Hotspots is the number of top classes listed in the summary.
	Hotspots int
	// FailFast aborts the run on the first malformed class instead of
	// collecting it as a failure.
	FailFast bool
}

// DefaultOptions returns the settings used by the CLI.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		CacheSize: 10000,
		Hotspots:  10,
	}
}

// Analyzer provides a high-level interface for code analysis and storage
type Analyzer struct {
	DB       db.Store
	Cache    *cache.UnitCache
	Eligible eligibility.Predicate
	Logger   *slog.Logger
	Options  Options
}

// NewAnalyzer creates a new Analyzer with the given configuration
func NewAnalyzer(config db.Config, opts Options) (*Analyzer, error) {
	sdb, err := db.NewSurrealDB(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	return New(sdb, opts), nil
}

// New creates an Analyzer writing into store with the default eligibility
// predicate and a discarding logger.
func New(store db.Store, opts Options) *Analyzer {
	a := &Analyzer{
		DB:       store,
		Eligible: eligibility.Default(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Options:  opts,
	}
	if opts.CacheSize > 0 {
		a.Cache = cache.NewUnitCache(opts.CacheSize)
	}
	return a
}

// Initialize sets up the database connection and schema
func (a *Analyzer) Initialize(ctx context.Context) error {
	return a.DB.Initialize(ctx)
}

// Close releases the store.
func (a *Analyzer) Close() error {
	return a.DB.Close()
}

// AnalyzeDirectory scans a directory tree, records one HCC measure per
// eligible class and returns the report.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, dir string) (types.AnalysisReport, error) {
	report, err := a.GetAnalysis(ctx, dir)
	if err != nil {
		return types.AnalysisReport{}, fmt.Errorf("failed to analyze directory: %w", err)
	}

	if err := a.record(ctx, report); err != nil {
		return report, fmt.Errorf("failed to store analysis results: %w", err)
	}

	return report, nil
}

func (a *Analyzer) record(ctx context.Context, report types.AnalysisReport) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())
	for _, rec := range report.Records() {
		rec := rec
		g.Go(func() error {
			if err := a.DB.RecordMeasure(ctx, rec); err != nil {
				return fmt.Errorf("error storing measure for %s: %w", rec.QualifiedName, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// GetAnalysis performs code analysis without storing results
func (a *Analyzer) GetAnalysis(ctx context.Context, dir string) (types.AnalysisReport, error) {
	filePaths, err := discover.Files(dir)
	if err != nil {
		return types.AnalysisReport{}, err
	}
	a.logger().Info("discovered source files", "dir", dir, "files", len(filePaths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers())
	resultCh := make(chan parser.FileAnalysis, len(filePaths))

	// Process files concurrently
	for _, path := range filePaths {
		path := path
		g.Go(func() error {
			p := parser.NewParser(a.Cache)
			defer p.Close()

			analysis, err := p.ParseFile(gctx, path)
			if err != nil {
				return fmt.Errorf("error parsing %s: %w", path, err)
			}
			a.logger().Debug("parsed file", "path", path, "classes", len(analysis.Units), "cached", analysis.Cached)

			select {
			case <-gctx.Done():
				return gctx.Err()
			case resultCh <- analysis:
				return nil
			}
		})
	}

	// Wait for all goroutines and check for errors
	err = g.Wait()
	close(resultCh)
	if err != nil {
		return types.AnalysisReport{}, err
	}

	var units []types.ClassUnit
	for res := range resultCh {
		units = append(units, res.Units...)
	}

	return a.AnalyzeUnits(ctx, units)
}

// AnalyzeUnits runs the per-class loop over units produced by any front-end.
// Ineligible classes are listed as skipped. A malformed class is listed as a
// failure, or aborts the run when Options.FailFast is set.
func (a *Analyzer) AnalyzeUnits(ctx context.Context, units []types.ClassUnit) (types.AnalysisReport, error) {
	// Files arrive in completion order; sort so reports are reproducible.
	units = append([]types.ClassUnit(nil), units...)
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].Path != units[j].Path {
			return units[i].Path < units[j].Path
		}
		return units[i].Line < units[j].Line
	})

	var report types.AnalysisReport
	seen := make(map[string]string, len(units))
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return types.AnalysisReport{}, err
		}

		if first, ok := seen[unit.QualifiedName]; ok {
			err := fmt.Errorf("class %s: %w (first declared in %s)", unit.QualifiedName, ErrDuplicateClass, first)
			if a.Options.FailFast {
				return types.AnalysisReport{}, err
			}
			a.logger().Warn("skipping duplicate class", "class", unit.QualifiedName, "path", unit.Path, "first", first)
			report.Failures = append(report.Failures, types.Failure{
				QualifiedName: unit.QualifiedName,
				Path:          unit.Path,
				Error:         err.Error(),
			})
			continue
		}
		seen[unit.QualifiedName] = unit.Path

		if !a.eligible(unit) {
			report.Skipped = append(report.Skipped, unit.QualifiedName)
			continue
		}

		measure, handlers, err := extract(unit)
		if err != nil {
			if a.Options.FailFast || !errors.Is(err, tree.ErrMalformedTree) {
				return types.AnalysisReport{}, err
			}
			a.logger().Warn("skipping malformed class", "class", unit.QualifiedName, "path", unit.Path, "error", err)
			report.Failures = append(report.Failures, types.Failure{
				QualifiedName: unit.QualifiedName,
				Path:          unit.Path,
				Error:         err.Error(),
			})
			continue
		}

		if unit.SyntaxErrors {
			a.logger().Warn("class measured from a file with syntax errors", "class", unit.QualifiedName, "path", unit.Path)
		}
		report.Classes = append(report.Classes, types.ClassResult{
			QualifiedName: unit.QualifiedName,
			Path:          unit.Path,
			Measure:       measure,
			Handlers:      handlers,
			SyntaxErrors:  unit.SyntaxErrors,
		})
	}

	report.Summary = Summarize(report, len(units), a.Options.Hotspots)
	a.logger().Info("analysis complete",
		"classes", report.Summary.TotalClasses,
		"measured", report.Summary.MeasuredClasses,
		"skipped", report.Summary.SkippedClasses,
		"failed", report.Summary.FailedClasses)
	return report, nil
}

func (a *Analyzer) eligible(unit types.ClassUnit) bool {
	if a.Eligible == nil {
		return eligibility.All(unit)
	}
	return a.Eligible(unit)
}

func (a *Analyzer) workers() int {
	if a.Options.Workers > 0 {
		return a.Options.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.Logger
}
