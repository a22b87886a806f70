package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on minimal images

	"github.com/DIMO-Network/shared/pkg/db"
)

const (
	// LedgerBackendSheets appends entries to a Google spreadsheet.
	LedgerBackendSheets = "sheets"
	// LedgerBackendPostgres appends entries to a postgres table.
	LedgerBackendPostgres = "postgres"
	// LedgerBackendMemory keeps entries in process memory.
	LedgerBackendMemory = "memory"

	defaultLineAPIURL = "https://api.line.me"
	defaultTimezone   = "Asia/Tokyo"
	defaultSheetName  = "Sheet1"
	defaultRecordRule = "amount > 0"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	LineAPIURL             string `env:"LINE_API_URL"`
	LineChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineChannelSecret      string `env:"LINE_CHANNEL_SECRET"`
	VerifySignature        bool   `env:"VERIFY_SIGNATURE"`

	// TokenSigningKey authenticates the postback tokens attached to confirm buttons.
	TokenSigningKey string        `env:"TOKEN_SIGNING_KEY"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"`

	Timezone   string `env:"TIMEZONE"`
	RecordRule string `env:"RECORD_RULE"`

	LedgerBackend         string `env:"LEDGER_BACKEND"`
	SpreadsheetID         string `env:"SPREADSHEET_ID"`
	SheetName             string `env:"SHEET_NAME"`
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`

	KafkaBrokers      string `env:"KAFKA_BROKERS"`
	LedgerEventsTopic string `env:"LEDGER_EVENTS_TOPIC"`

	DB db.Settings `envPrefix:"DB_"`
}

// ApplyDefaults fills optional settings that were left empty.
func (s *Settings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "ledger-bot"
	}
	if s.LineAPIURL == "" {
		s.LineAPIURL = defaultLineAPIURL
	}
	if s.Timezone == "" {
		s.Timezone = defaultTimezone
	}
	if s.RecordRule == "" {
		s.RecordRule = defaultRecordRule
	}
	if s.LedgerBackend == "" {
		s.LedgerBackend = LedgerBackendSheets
	}
	if s.SheetName == "" {
		s.SheetName = defaultSheetName
	}
	if s.LedgerEventsTopic == "" {
		s.LedgerEventsTopic = "topic.ledger.entries"
	}
}

// Validate reports every required setting that is missing.
func (s *Settings) Validate() error {
	var errs []error
	if s.LineChannelAccessToken == "" {
		errs = append(errs, errors.New("LINE_CHANNEL_ACCESS_TOKEN is required"))
	}
	if s.TokenSigningKey == "" {
		errs = append(errs, errors.New("TOKEN_SIGNING_KEY is required"))
	}
	if s.TokenTTL < 0 {
		errs = append(errs, errors.New("TOKEN_TTL cannot be negative"))
	}
	if _, err := s.Location(); err != nil {
		errs = append(errs, err)
	}
	switch s.LedgerBackend {
	case LedgerBackendSheets:
		if s.SpreadsheetID == "" {
			errs = append(errs, errors.New("SPREADSHEET_ID is required for the sheets ledger"))
		}
	case LedgerBackendPostgres, LedgerBackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown LEDGER_BACKEND %q", s.LedgerBackend))
	}
	return errors.Join(errs...)
}

// Location returns the fixed timezone used to date ledger records.
func (s *Settings) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", s.Timezone, err)
	}
	return loc, nil
}
