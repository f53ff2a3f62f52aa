package db

import (
	"context"

	"github.com/TFMV/surrealhcc/types"
)

type MockDB struct {
	InitializeFunc    func(ctx context.Context) error
	RecordFunc        func(ctx context.Context, qualifiedName string, kind types.MetricKind, value float64) error
	RecordMeasureFunc func(ctx context.Context, rec types.MeasureRecord) error
	StoreAnalysisFunc func(ctx context.Context, report types.AnalysisReport) error
}

func NewMockDB() *MockDB {
	return &MockDB{
		InitializeFunc: func(ctx context.Context) error {
			return nil
		},
	}
}

func (m *MockDB) Initialize(ctx context.Context) error {
	return m.InitializeFunc(ctx)
}

func (m *MockDB) Record(ctx context.Context, qualifiedName string, kind types.MetricKind, value float64) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, qualifiedName, kind, value)
	}
	return nil
}

// RecordMeasure falls back to RecordFunc when RecordMeasureFunc is unset.
func (m *MockDB) RecordMeasure(ctx context.Context, rec types.MeasureRecord) error {
	if m.RecordMeasureFunc != nil {
		return m.RecordMeasureFunc(ctx, rec)
	}
	return m.Record(ctx, rec.QualifiedName, rec.Metric, rec.Value)
}

func (m *MockDB) StoreAnalysis(ctx context.Context, report types.AnalysisReport) error {
	if m.StoreAnalysisFunc != nil {
		return m.StoreAnalysisFunc(ctx, report)
	}
	for _, rec := range report.Records() {
		if err := m.RecordMeasure(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockDB) Close() error {
	return nil
}
