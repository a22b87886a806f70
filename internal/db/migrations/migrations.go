package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/DIMO-Network/shared/pkg/db"
	_ "github.com/lib/pq" // postgres driver
	"github.com/pressly/goose/v3"
)

// SchemaName is the postgres schema holding the ledger tables.
const SchemaName = "ledger_bot"

//go:embed *.sql
var migrationFS embed.FS

// goose keeps its configuration in package globals.
var gooseMu sync.Mutex

// RunGoose runs a goose command against the ledger schema.
// gooseArgs holds the command followed by its arguments, e.g. []string{"up", "-v"}.
func RunGoose(ctx context.Context, gooseArgs []string, settings db.Settings) error {
	if len(gooseArgs) == 0 {
		return errors.New("goose command not provided")
	}

	conn, err := openWithSchema(ctx, settings)
	if err != nil {
		return err
	}
	defer conn.Close() //nolint:errcheck

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationFS)
	goose.ResetGlobalMigrations()
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	goose.SetTableName(SchemaName + ".migrations")

	if err := goose.RunContext(ctx, gooseArgs[0], conn, ".", gooseArgs[1:]...); err != nil {
		return fmt.Errorf("goose %s failed: %w", gooseArgs[0], err)
	}
	return nil
}

// openWithSchema connects to postgres and makes sure the ledger schema exists.
func openWithSchema(ctx context.Context, settings db.Settings) (*sql.DB, error) {
	conn, err := sql.Open("postgres", settings.BuildConnectionString(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS "+SchemaName); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create schema %s: %w", SchemaName, err)
	}
	return conn, nil
}
