//go:generate go tool mockgen -source=dispatch.go -destination=dispatch_mock_test.go -package=dispatch
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerbot/ledger-bot/internal/confirmation"
	"github.com/ledgerbot/ledger-bot/internal/ledger"
	"github.com/rs/zerolog"
)

// LedgerStore is the append side of the ledger.
type LedgerStore interface {
	Append(ctx context.Context, entry ledger.Entry) error
}

// EntryPublisher announces committed entries.
type EntryPublisher interface {
	PublishEntryCommitted(ctx context.Context, entry ledger.Entry) error
}

// Dispatcher acts on the outcome of a resolved confirmation.
type Dispatcher struct {
	store     LedgerStore
	publisher EntryPublisher
	now       func() time.Time
}

// New creates a Dispatcher. publisher may be nil to skip event publishing.
func New(store LedgerStore, publisher EntryPublisher) *Dispatcher {
	return &Dispatcher{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

// OnResolve commits or discards and returns the reply text, which echoes token.
// Commits are not deduplicated: resolving the same commit twice appends twice.
func (d *Dispatcher) OnResolve(ctx context.Context, outcome confirmation.Outcome, token string) (string, error) {
	switch outcome.Kind {
	case confirmation.KindCommit:
		entry := ledger.NewEntry(outcome.Record, d.now())
		if err := d.store.Append(ctx, entry); err != nil {
			return "", fmt.Errorf("failed to append ledger entry: %w", err)
		}
		zerolog.Ctx(ctx).Info().
			Str("entry_id", entry.ID).
			Str("institution", entry.Institution).
			Int64("amount", entry.Amount).
			Msg("Ledger entry committed")

		if d.publisher != nil {
			if err := d.publisher.PublishEntryCommitted(ctx, entry); err != nil {
				zerolog.Ctx(ctx).Error().Err(err).Str("entry_id", entry.ID).Msg("Failed to publish committed entry")
			}
		}
		return CommittedReply(token), nil
	case confirmation.KindDiscard:
		return DiscardedReply(token), nil
	default:
		return "", fmt.Errorf("unknown outcome kind %q", outcome.Kind)
	}
}

// CommittedReply is the text sent after a record was saved.
func CommittedReply(token string) string {
	return "Saved to the ledger. (" + token + ")"
}

// DiscardedReply is the text sent after the user declined.
func DiscardedReply(token string) string {
	return "Cancelled. Nothing was saved. (" + token + ")"
}
