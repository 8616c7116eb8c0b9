// Package database provides shared database test helpers.
package database

import (
	"testing"

	"github.com/dayplan/dayplan/pkg/database"
	"github.com/dayplan/dayplan/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL
// service container. In local dev: spins up a testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
