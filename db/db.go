package db

import (
	"context"

	"github.com/TFMV/surrealhcc/types"
)

// Store persists class measures keyed by qualified class name. Record may be
// called from several goroutines at once; implementations keep one entry per
// class and never leave a partially written entry behind.
//
// RecordMeasure is Record with the row's path and handler count filled in.
type Store interface {
	Initialize(ctx context.Context) error
	Record(ctx context.Context, qualifiedName string, kind types.MetricKind, value float64) error
	RecordMeasure(ctx context.Context, rec types.MeasureRecord) error
	StoreAnalysis(ctx context.Context, report types.AnalysisReport) error
	Close() error
}
