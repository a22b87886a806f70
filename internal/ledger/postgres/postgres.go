// Package postgres stores the ledger in the ledger_bot.ledger_entries table.
package postgres

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/ledgerbot/ledger-bot/internal/db/migrations"
	"github.com/ledgerbot/ledger-bot/internal/ledger"
)

const insertEntry = `INSERT INTO ` + migrations.SchemaName + `.ledger_entries
	(id, entry_date, institution, amount, created_at)
	VALUES ($1, $2, $3, $4, $5)`

// Store appends ledger entries to postgres.
type Store struct {
	db boil.ContextExecutor
}

// New creates a Store over db.
func New(db boil.ContextExecutor) *Store {
	return &Store{db: db}
}

// Append inserts entry. Entries are keyed by their own id, so appending the
// same record twice through NewEntry adds two rows.
func (s *Store) Append(ctx context.Context, entry ledger.Entry) error {
	_, err := queries.Raw(insertEntry,
		entry.ID, entry.Date, entry.Institution, entry.Amount, entry.CreatedAt,
	).ExecContext(ctx, s.db)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to append ledger row",
			Err:         fmt.Errorf("failed to insert ledger entry %s: %w", entry.ID, err),
			Code:        http.StatusInternalServerError,
		}
	}
	return nil
}

// GetByID returns ledger.ErrNotSupported.
func (s *Store) GetByID(context.Context, string) (*ledger.Entry, error) {
	return nil, ledger.ErrNotSupported
}

// ListByDateRange returns ledger.ErrNotSupported.
func (s *Store) ListByDateRange(context.Context, time.Time, time.Time) ([]ledger.Entry, error) {
	return nil, ledger.ErrNotSupported
}

var _ ledger.Store = (*Store)(nil)
