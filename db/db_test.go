package db_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/TFMV/surrealhcc/db"
	"github.com/TFMV/surrealhcc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ db.Store = (*db.MemoryStore)(nil)
	_ db.Store = (*db.SurrealDB)(nil)
	_ db.Store = (*db.MockDB)(nil)
)

func TestMemoryStore_Record(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	require.NoError(t, store.Initialize(ctx))

	require.NoError(t, store.Record(ctx, "com.acme.Foo", types.HCC, 6))
	require.NoError(t, store.Record(ctx, "com.acme.Bar", types.HCC, 0))

	v, ok := store.Get("com.acme.Foo", types.HCC)
	require.True(t, ok)
	assert.Equal(t, 6.0, v)

	v, ok = store.Get("com.acme.Bar", types.HCC)
	require.True(t, ok)
	assert.Zero(t, v)

	_, ok = store.Get("com.acme.Missing", types.HCC)
	assert.False(t, ok)

	assert.Equal(t, []string{"com.acme.Bar", "com.acme.Foo"}, store.Classes())
}

func TestMemoryStore_RecordReplaces(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()

	require.NoError(t, store.Record(ctx, "A", types.HCC, 1))
	require.NoError(t, store.Record(ctx, "A", types.HCC, 3))

	v, _ := store.Get("A", types.HCC)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_RejectsEmptyName(t *testing.T) {
	store := db.NewMemoryStore()
	assert.Error(t, store.Record(context.Background(), "", types.HCC, 1))
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := db.NewMemoryStore()
	assert.ErrorIs(t, store.Record(ctx, "A", types.HCC, 1), context.Canceled)
}

func TestMemoryStore_ConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Record(ctx, fmt.Sprintf("C%d", i), types.HCC, float64(i)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	v, ok := store.Get("C42", types.HCC)
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestMemoryStore_StoreAnalysis(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()

	report := types.AnalysisReport{
		Classes: []types.ClassResult{
			{QualifiedName: "A", Measure: types.Measure{Kind: types.HCC, Value: 2}},
			{QualifiedName: "B", Measure: types.Measure{Kind: types.HCC, Value: 5}},
		},
	}
	require.NoError(t, store.StoreAnalysis(ctx, report))

	v, _ := store.Get("B", types.HCC)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_RecordMeasure(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()

	rec := types.MeasureRecord{
		QualifiedName: "com.acme.Bar",
		Metric:        types.HCC,
		Value:         9,
		Path:          "src/com/acme/Bar.java",
		Handlers:      2,
	}
	require.NoError(t, store.RecordMeasure(ctx, rec))

	row, ok := store.Row("com.acme.Bar", types.HCC)
	require.True(t, ok)
	assert.Equal(t, rec, row)

	// A bare Record replaces the whole row.
	require.NoError(t, store.Record(ctx, "com.acme.Bar", types.HCC, 3))
	row, _ = store.Row("com.acme.Bar", types.HCC)
	assert.Equal(t, 3.0, row.Value)
	assert.Empty(t, row.Path)
}

func TestMockDB(t *testing.T) {
	mock := db.NewMockDB()
	var got []string
	mock.RecordFunc = func(ctx context.Context, name string, kind types.MetricKind, value float64) error {
		got = append(got, fmt.Sprintf("%s:%s=%g", name, kind, value))
		return nil
	}

	ctx := context.Background()
	require.NoError(t, mock.Initialize(ctx))
	require.NoError(t, mock.Record(ctx, "A", types.HCC, 4))
	require.NoError(t, mock.StoreAnalysis(ctx, types.AnalysisReport{
		Classes: []types.ClassResult{{QualifiedName: "B", Measure: types.Measure{Kind: types.HCC, Value: 1}}},
	}))
	assert.Equal(t, []string{"A:HCC=4", "B:HCC=1"}, got)
}
