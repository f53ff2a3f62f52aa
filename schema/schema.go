package schema

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// MeasuresTable holds one row per class and metric.
const MeasuresTable = "measures"

// UpsertMeasure writes one measure row. Record ids are [qualified_name, metric]
// so repeated writes for the same class replace rather than append.
const UpsertMeasure = `UPSERT type::thing($tb, [$name, $metric]) SET
	qualified_name = $name,
	metric = $metric,
	value = $value,
	path = $path,
	handlers = $count,
	updated_at = time::now();`

// InitializeSchema sets up the database schema and indexes for the measure store
func InitializeSchema(db *surrealdb.DB) error {
	schemas := []string{
		`DEFINE TABLE IF NOT EXISTS measures SCHEMAFULL;
		 DEFINE FIELD IF NOT EXISTS qualified_name ON measures TYPE string;
		 DEFINE FIELD IF NOT EXISTS metric ON measures TYPE string;
		 DEFINE FIELD IF NOT EXISTS value ON measures TYPE float;
		 DEFINE FIELD IF NOT EXISTS path ON measures TYPE string;
		 DEFINE FIELD IF NOT EXISTS handlers ON measures TYPE int;
		 DEFINE FIELD IF NOT EXISTS created_at ON measures TYPE datetime DEFAULT time::now();
		 DEFINE FIELD IF NOT EXISTS updated_at ON measures TYPE datetime;
		 DEFINE INDEX IF NOT EXISTS measure_class ON measures FIELDS qualified_name, metric UNIQUE;
		 DEFINE INDEX IF NOT EXISTS measure_metric ON measures FIELDS metric;`,
	}

	// Execute each schema definition
	for _, schema := range schemas {
		if _, err := surrealdb.Query[any](db, schema, map[string]interface{}{}); err != nil {
			return fmt.Errorf("schema initialization error: %w", err)
		}
	}

	return nil
}
