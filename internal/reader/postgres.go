package reader

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the pgx stdlib driver for client database exports.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresReader reads records from a table or query in a client's
// exported Postgres database.
type PostgresReader struct {
	DB *sql.DB
	// Query selects the raw records; column names become field names.
	Query     string
	Kind      string
	KindField string
	Source    string
}

// OpenPostgres opens a database handle using the pgx stdlib driver.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres reader: opening connection: %w", err)
	}
	return db, nil
}

// Read runs the query and converts every row into a raw record.
func (r *PostgresReader) Read(ctx context.Context) ([]RawRecord, error) {
	rows, err := r.DB.QueryContext(ctx, r.Query)
	if err != nil {
		return nil, fmt.Errorf("postgres reader: query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("postgres reader: reading columns: %w", err)
	}

	var records []RawRecord
	for rows.Next() {
		values := make([]any, len(cols))
		scan := make([]any, len(cols))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("postgres reader: scanning row: %w", err)
		}
		fields := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				fields[col] = string(b)
				continue
			}
			fields[col] = values[i]
		}
		records = append(records, RawRecord{
			Fields: fields,
			Kind:   kindOf(fields, r.KindField, r.Kind),
			Source: r.Source,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres reader: iterating rows: %w", err)
	}
	return records, nil
}
