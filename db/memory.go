package db

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/TFMV/surrealhcc/types"
)

// MemoryStore keeps measures in process. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	measures map[string]map[types.MetricKind]types.MeasureRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		measures: make(map[string]map[types.MetricKind]types.MeasureRecord),
	}
}

func (m *MemoryStore) Initialize(ctx context.Context) error {
	return nil
}

// Record stores value for the class, replacing any earlier value of the same kind.
func (m *MemoryStore) Record(ctx context.Context, qualifiedName string, kind types.MetricKind, value float64) error {
	return m.RecordMeasure(ctx, types.MeasureRecord{QualifiedName: qualifiedName, Metric: kind, Value: value})
}

// RecordMeasure stores the whole row, replacing any earlier row of the same metric.
func (m *MemoryStore) RecordMeasure(ctx context.Context, rec types.MeasureRecord) error {
	if rec.QualifiedName == "" {
		return fmt.Errorf("record %s: empty qualified name", rec.Metric)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	byKind, ok := m.measures[rec.QualifiedName]
	if !ok {
		byKind = make(map[types.MetricKind]types.MeasureRecord)
		m.measures[rec.QualifiedName] = byKind
	}
	byKind[rec.Metric] = rec
	return nil
}

func (m *MemoryStore) StoreAnalysis(ctx context.Context, report types.AnalysisReport) error {
	for _, rec := range report.Records() {
		if err := m.RecordMeasure(ctx, rec); err != nil {
			return fmt.Errorf("error storing measure for %s: %w", rec.QualifiedName, err)
		}
	}
	return nil
}

// Get returns the value recorded for a class.
func (m *MemoryStore) Get(qualifiedName string, kind types.MetricKind) (float64, bool) {
	rec, ok := m.Row(qualifiedName, kind)
	return rec.Value, ok
}

// Row returns the full row recorded for a class.
func (m *MemoryStore) Row(qualifiedName string, kind types.MetricKind) (types.MeasureRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.measures[qualifiedName][kind]
	return rec, ok
}

// Classes returns the recorded class names in sorted order.
func (m *MemoryStore) Classes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.measures))
	for name := range m.measures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of classes with at least one measure.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.measures)
}

func (m *MemoryStore) Close() error {
	return nil
}
