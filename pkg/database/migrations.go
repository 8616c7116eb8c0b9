package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in its schema DSL. These must match the constraints in
// migrations/0001_init.up.sql.
//
// tasks_single_active is the backstop for the at-most-one-active-task
// invariant: the Task Engine checks inside its transaction, and this index
// closes the TOCTOU window between concurrent starts.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS tasks_single_active
		ON tasks ((true))
		WHERE actual_start IS NOT NULL AND NOT completed`)
	if err != nil {
		return fmt.Errorf("failed to create single-active task index: %w", err)
	}

	return nil
}
