package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/pkg/database"
	"github.com/rowboat-dev/rowboat/test/util"
)

// SharedTestDB is one PostgreSQL schema reachable through several
// independent connection pools. Claim tests need this: FOR UPDATE SKIP
// LOCKED only proves non-duplication when the competing dispatchers
// hold separate connections to the same queue.
type SharedTestDB struct {
	schemaConnStr string
	baseConnStr   string
	schemaName    string
}

// NewSharedTestDB creates the schema, migrates it once, and schedules
// the schema drop for after every replica client has been cleaned up
// (t.Cleanup runs LIFO).
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	ctx := context.Background()

	baseConnStr := util.GetBaseConnectionString(t)
	schemaName := util.GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	require.NoError(t, admin.Close())

	s := &SharedTestDB{
		schemaConnStr: util.AddSearchPathToConnString(baseConnStr, schemaName),
		baseConnStr:   baseConnStr,
		schemaName:    schemaName,
	}

	// Migrate through a throwaway pool; replicas open their own.
	migrateDB, migrateClient := s.openPool(t)
	require.NoError(t, migrateClient.Schema.Create(ctx))
	_ = migrateClient.Close()
	_ = migrateDB.Close()

	t.Cleanup(func() {
		admin, err := stdsql.Open("pgx", s.baseConnStr)
		if err != nil {
			t.Logf("SharedTestDB: cannot reconnect to drop schema %s: %v", s.schemaName, err)
			return
		}
		defer func() { _ = admin.Close() }()
		if _, err := admin.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", s.schemaName)); err != nil {
			t.Logf("SharedTestDB: failed to drop schema %s: %v", s.schemaName, err)
		}
	})

	return s
}

// NewClient returns a *database.Client on a fresh connection pool, so
// each simulated replica can be shut down independently. Connections
// are released via t.Cleanup.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, entClient := s.openPool(t)
	client := database.NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})

	return client
}

// openPool opens a pool pinned to the shared schema via search_path.
func (s *SharedTestDB) openPool(t *testing.T) (*stdsql.DB, *ent.Client) {
	t.Helper()

	db, err := stdsql.Open("pgx", s.schemaConnStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	return db, ent.NewClient(ent.Driver(drv))
}
