package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerbot/ledger-bot/internal/record"
)

// ErrNotSupported is returned by store operations the ledger does not offer.
// The ledger is append-only; rows are read from the spreadsheet or database directly.
var ErrNotSupported = errors.New("operation not supported by the ledger")

// Entry is a committed ledger row.
type Entry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Institution string    `json:"institution"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewEntry creates an entry for rec with a fresh id.
func NewEntry(rec record.Record, now time.Time) Entry {
	return Entry{
		ID:          uuid.New().String(),
		Date:        rec.Date,
		Institution: rec.Institution,
		Amount:      rec.Amount,
		CreatedAt:   now.UTC(),
	}
}

// Row returns the entry as spreadsheet columns: date, institution, amount.
func (e Entry) Row() []any {
	return []any{e.Date, e.Institution, e.Amount}
}

// Store is an append-only ledger.
type Store interface {
	// Append adds one row. Appending the same entry twice adds two rows.
	Append(ctx context.Context, entry Entry) error
	// GetByID is not supported and returns ErrNotSupported.
	GetByID(ctx context.Context, id string) (*Entry, error)
	// ListByDateRange is not supported and returns ErrNotSupported.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Entry, error)
}
