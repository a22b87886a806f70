package record

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/width"
)

// DateLayout is the layout of Record.Date.
const DateLayout = "2006/01/02"

var (
	// ErrMalformedInput is returned when the text is not "<institution>\n<amount>".
	ErrMalformedInput = errors.New("malformed input")
	// ErrRuleRejected is returned when a parsed record does not satisfy the configured rule.
	ErrRuleRejected = errors.New("record rejected by rule")
)

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// Record is a payment parsed from a user's message.
type Record struct {
	// Date is the day the record was parsed, formatted with DateLayout.
	Date string
	// Institution is the hospital or clinic that was paid.
	Institution string
	// Amount is the paid amount in whole currency units.
	Amount int64
}

// Parser turns free text into a Record.
type Parser struct {
	location *time.Location
	now      func() time.Time
	rule     *Rule
}

// NewParser creates a parser that dates records in loc.
// rule may be nil, in which case every well-formed record is accepted.
func NewParser(loc *time.Location, rule *Rule) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{
		location: loc,
		now:      time.Now,
		rule:     rule,
	}
}

// Parse reads the institution from the first line and the amount from the second.
// Lines after the second are ignored. The record is always dated today.
func (p *Parser) Parse(raw string) (Record, error) {
	lines := lineBreak.Split(raw, -1)
	if len(lines) < 2 {
		return Record{}, fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedInput, len(lines))
	}

	institution := strings.TrimSpace(lines[0])
	if institution == "" {
		return Record{}, fmt.Errorf("%w: institution name is empty", ErrMalformedInput)
	}

	amount, err := parseAmount(lines[1])
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Date:        p.now().In(p.location).Format(DateLayout),
		Institution: institution,
		Amount:      amount,
	}

	if p.rule != nil {
		ok, err := p.rule.Evaluate(rec)
		if err != nil {
			return Record{}, err
		}
		if !ok {
			return Record{}, fmt.Errorf("%w: %s", ErrRuleRejected, p.rule)
		}
	}
	return rec, nil
}

// parseAmount accepts base-10 integers written with half or full width digits
// and optional "," group separators.
func parseAmount(line string) (int64, error) {
	s := strings.TrimSpace(width.Narrow.String(line))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: amount is empty", ErrMalformedInput)
	}
	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not an integer", ErrMalformedInput, line)
	}
	return amount, nil
}
