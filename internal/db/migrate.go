package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// migrations run once each, in order, tracked in schema_version. Version 1
// is the base schema created by ensureSchema.
var migrations = []struct {
	version int
	stmts   []string
}{
	{
		// Early deployments wrote the sentinel 4 where no final score had
		// been computed yet. Normalize it to absent.
		version: 2,
		stmts: []string{
			`UPDATE candidates SET final_score = NULL WHERE final_score = 4`,
		},
	},
}

// Migrate applies pending migrations. Safe to call repeatedly: each version
// runs exactly once.
func Migrate(ctx context.Context, db *sql.DB) error {
	var current sql.NullInt64
	if err := db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("migrate: read version: %w", err)
	}
	applied := int64(1)
	if current.Valid {
		applied = current.Int64
	}
	for _, m := range migrations {
		if int64(m.version) <= applied {
			continue
		}
		for _, stmt := range m.stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migrate: v%d: %w", m.version, err)
			}
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO schema_version (version, applied_at) VALUES ($1,$2)`,
			m.version, time.Now().Unix()); err != nil {
			return fmt.Errorf("migrate: record v%d: %w", m.version, err)
		}
	}
	return nil
}
