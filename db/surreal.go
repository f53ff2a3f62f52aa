package db

import (
	"context"
	"fmt"

	"github.com/TFMV/surrealhcc/schema"
	"github.com/TFMV/surrealhcc/types"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// DefaultConfig matches `surreal start --user root --pass root memory`.
func DefaultConfig() Config {
	return Config{
		URL:       "ws://localhost:8000/rpc",
		Namespace: "hcc",
		Database:  "hcc",
		Username:  "root",
		Password:  "root",
	}
}

type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

func NewSurrealDB(config Config) (*SurrealDB, error) {
	db, err := surrealdb.New(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SurrealDB{
		db:     db,
		config: config,
	}, nil
}

func (s *SurrealDB) Initialize(ctx context.Context) error {
	if err := s.db.Use(s.config.Namespace, s.config.Database); err != nil {
		return fmt.Errorf("failed to set namespace/database: %w", err)
	}

	authData := &surrealdb.Auth{
		Username: s.config.Username,
		Password: s.config.Password,
	}
	token, err := s.db.SignIn(authData)
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}

	if err := s.db.Authenticate(token); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := schema.InitializeSchema(s.db); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

// Record upserts the measure row keyed by [class, metric], so a class never
// holds two values for the same metric and concurrent writers do not merge.
func (s *SurrealDB) Record(ctx context.Context, qualifiedName string, kind types.MetricKind, value float64) error {
	return s.upsert(ctx, types.MeasureRecord{
		QualifiedName: qualifiedName,
		Metric:        kind,
		Value:         value,
	})
}

// RecordMeasure upserts the full row, path and handler count included.
func (s *SurrealDB) RecordMeasure(ctx context.Context, rec types.MeasureRecord) error {
	return s.upsert(ctx, rec)
}

func (s *SurrealDB) StoreAnalysis(ctx context.Context, report types.AnalysisReport) error {
	for _, rec := range report.Records() {
		if err := s.upsert(ctx, rec); err != nil {
			return fmt.Errorf("error storing measure %s: %w", rec.QualifiedName, err)
		}
	}
	return nil
}

func (s *SurrealDB) upsert(ctx context.Context, rec types.MeasureRecord) error {
	if rec.QualifiedName == "" {
		return fmt.Errorf("record %s: empty qualified name", rec.Metric)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := surrealdb.Query[any](s.db, schema.UpsertMeasure, upsertVars(rec)); err != nil {
		return err
	}
	return nil
}

// upsertVars binds the parameters of schema.UpsertMeasure.
func upsertVars(rec types.MeasureRecord) map[string]interface{} {
	return map[string]interface{}{
		"tb":     schema.MeasuresTable,
		"name":   rec.QualifiedName,
		"metric": string(rec.Metric),
		"value":  rec.Value,
		"path":   rec.Path,
		"count":  rec.Handlers,
	}
}

func (s *SurrealDB) Close() error {
	return s.db.Close()
}
