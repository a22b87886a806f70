// Package sheets stores the ledger in a Google spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/ledgerbot/ledger-bot/internal/ledger"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInputOption = "USER_ENTERED"
	insertDataOption = "INSERT_ROWS"
)

// Store appends ledger rows to one sheet of a spreadsheet.
type Store struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	appendRange   string
}

// New creates a Store for the sheet named sheetName in spreadsheetID.
// opts are passed to the Sheets client, e.g. option.WithCredentialsFile.
func New(ctx context.Context, spreadsheetID, sheetName string, opts ...option.ClientOption) (*Store, error) {
	opts = append([]option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}, opts...)
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Store{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		appendRange:   sheetName + "!A:C",
	}, nil
}

// Append adds entry as a new row [date, institution, amount] after the last row of the sheet.
func (s *Store) Append(ctx context.Context, entry ledger.Entry) error {
	vr := &sheets.ValueRange{
		Values: [][]any{entry.Row()},
	}
	_, err := s.values.Append(s.spreadsheetID, s.appendRange, vr).
		ValueInputOption(valueInputOption).
		InsertDataOption(insertDataOption).
		Context(ctx).
		Do()
	if err != nil {
		code := http.StatusInternalServerError
		var gErr *googleapi.Error
		if errors.As(err, &gErr) && gErr.Code == http.StatusTooManyRequests {
			code = http.StatusServiceUnavailable
		}
		return richerrors.Error{
			ExternalMsg: "Failed to append ledger row",
			Err:         fmt.Errorf("failed to append row to spreadsheet %s: %w", s.spreadsheetID, err),
			Code:        code,
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
