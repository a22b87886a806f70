// Package confirmation carries a pending ledger record through a LINE confirm
// template. The record lives inside the postback token of the "yes" button, so
// the webhook keeps no state between the prompt and the user's answer.
package confirmation

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ledgerbot/ledger-bot/internal/record"
)

const (
	// MaxTokenLength is the LINE limit for postback data.
	MaxTokenLength = 300
	// MaxPromptLength is the LINE limit for the text of a confirm template.
	MaxPromptLength = 240
)

var (
	// ErrUntrustedToken is returned for tokens that were not issued by this codec
	// for the resolving user, were altered, or have expired.
	ErrUntrustedToken = errors.New("untrusted confirmation token")
	// ErrTokenTooLarge is returned when a record does not fit in a postback token.
	ErrTokenTooLarge = errors.New("confirmation token too large")
)

// Kind tags the outcome carried by a token.
type Kind string

const (
	// KindCommit appends the embedded record to the ledger.
	KindCommit Kind = "c"
	// KindDiscard drops the pending record.
	KindDiscard Kind = "d"
)

// Outcome is the decision encoded in a resolved token.
type Outcome struct {
	Kind Kind
	// Record is set only for KindCommit.
	Record record.Record
}

// Commit returns the outcome that appends rec.
func Commit(rec record.Record) Outcome {
	return Outcome{Kind: KindCommit, Record: rec}
}

// Discard returns the outcome that drops the pending record.
func Discard() Outcome {
	return Outcome{Kind: KindDiscard}
}

// Confirmation is what the yes/no prompt needs.
type Confirmation struct {
	Prompt   string
	YesToken string
	NoToken  string
}

// claims keeps JSON keys short so tokens stay under MaxTokenLength.
type claims struct {
	Kind   Kind           `json:"k"`
	Record *recordPayload `json:"r,omitempty"`
	jwt.RegisteredClaims
}

type recordPayload struct {
	Date        string `json:"d"`
	Institution string `json:"n"`
	Amount      int64  `json:"a"`
}

// Codec signs and verifies confirmation tokens.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec creates a codec signing with key. Tokens expire after ttl; a zero
// ttl issues tokens that never expire.
func NewCodec(key []byte, ttl time.Duration) *Codec {
	return &Codec{
		key: key,
		ttl: ttl,
		now: time.Now,
	}
}

// Build renders the prompt for rec and issues the tokens for both buttons.
// Both tokens are bound to userID and only resolve for the same user.
func (c *Codec) Build(rec record.Record, userID string) (Confirmation, error) {
	yes, err := c.sign(userID, claims{
		Kind: KindCommit,
		Record: &recordPayload{
			Date:        rec.Date,
			Institution: rec.Institution,
			Amount:      rec.Amount,
		},
	})
	if err != nil {
		return Confirmation{}, err
	}
	no, err := c.sign(userID, claims{Kind: KindDiscard})
	if err != nil {
		return Confirmation{}, err
	}
	return Confirmation{
		Prompt:   Prompt(rec),
		YesToken: yes,
		NoToken:  no,
	}, nil
}

// Resolve verifies token for userID and returns the outcome it carries.
// Resolving is not one-shot: the same token yields the same outcome until it expires.
func (c *Codec) Resolve(token, userID string) (Outcome, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(token, &cl, func(*jwt.Token) (any, error) {
		return c.userKey(userID), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrUntrustedToken, err)
	}

	switch cl.Kind {
	case KindCommit:
		if cl.Record == nil {
			return Outcome{}, fmt.Errorf("%w: commit token without record", ErrUntrustedToken)
		}
		return Commit(record.Record{
			Date:        cl.Record.Date,
			Institution: cl.Record.Institution,
			Amount:      cl.Record.Amount,
		}), nil
	case KindDiscard:
		return Discard(), nil
	default:
		return Outcome{}, fmt.Errorf("%w: unknown kind %q", ErrUntrustedToken, cl.Kind)
	}
}

func (c *Codec) sign(userID string, cl claims) (string, error) {
	if c.ttl > 0 {
		cl.ExpiresAt = jwt.NewNumericDate(c.now().Add(c.ttl))
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.userKey(userID))
	if err != nil {
		return "", fmt.Errorf("failed to sign confirmation token: %w", err)
	}
	if len(token) > MaxTokenLength {
		return "", fmt.Errorf("%w: %d bytes", ErrTokenTooLarge, len(token))
	}
	return token, nil
}

// userKey derives a per-user signing key, so a token only verifies for the
// user it was issued to.
func (c *Codec) userKey(userID string) []byte {
	mac := hmac.New(sha256.New, c.key)
	_, _ = mac.Write([]byte(userID))
	return mac.Sum(nil)
}

// Prompt renders rec for the confirm template.
func Prompt(rec record.Record) string {
	prompt := fmt.Sprintf("Record this payment?\nDate: %s\nHospital: %s\nAmount: %d", rec.Date, rec.Institution, rec.Amount)
	if utf8.RuneCountInString(prompt) <= MaxPromptLength {
		return prompt
	}
	runes := []rune(prompt)
	return string(runes[:MaxPromptLength-1]) + "…"
}
