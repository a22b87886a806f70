// Package tests holds helpers shared by tests that need real infrastructure.
package tests

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/ledgerbot/ledger-bot/internal/db/migrations"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestContainer is a migrated postgres instance shared by the tests of one package.
type TestContainer struct {
	container testcontainers.Container
	DB        *sql.DB
	Settings  db.Settings
	once      sync.Once
	refs      atomic.Int64
}

var shared TestContainer

// SetupTestContainer starts postgres on first use and terminates it after the
// last test that asked for it has finished. Skipped with -short.
func SetupTestContainer(t *testing.T) *TestContainer {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	shared.once.Do(func() {
		ctx := context.Background()
		var err error
		shared.container, err = postgres.Run(ctx,
			"postgres:15",
			postgres.WithDatabase("ledger"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			postgres.BasicWaitStrategies(),
		)
		require.NoError(t, err)

		host, err := shared.container.Host(ctx)
		require.NoError(t, err)
		port, err := shared.container.MappedPort(ctx, "5432")
		require.NoError(t, err)

		shared.Settings = db.Settings{
			Host:     host,
			Port:     port.Port(),
			User:     "postgres",
			Password: "postgres",
			Name:     "ledger",
			SSLMode:  "disable",
		}
		shared.DB, err = sql.Open("postgres", shared.Settings.BuildConnectionString(true))
		require.NoError(t, err)

		require.NoError(t, migrations.RunGoose(ctx, []string{"up"}, shared.Settings))
	})

	shared.refs.Add(1)
	t.Cleanup(func() {
		if shared.refs.Add(-1) != 0 {
			return
		}
		_ = shared.container.Terminate(context.Background())
		_ = shared.DB.Close()
		shared.once = sync.Once{}
	})
	return &shared
}

// TruncateLedger removes every ledger entry.
func (tc *TestContainer) TruncateLedger(t *testing.T) {
	t.Helper()
	_, err := tc.DB.Exec("TRUNCATE " + migrations.SchemaName + ".ledger_entries")
	require.NoError(t, err)
}
