package webhook

import (
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerbot/ledger-bot/internal/clients/line"
)

// SignatureVerifier checks the signature LINE attaches to webhook requests.
type SignatureVerifier interface {
	Verify(body []byte, signature string) error
}

// SignatureMiddleware rejects requests whose signature does not verify.
// Verifiers that cannot verify at all answer 501.
func SignatureMiddleware(verifier SignatureVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := verifier.Verify(c.Body(), c.Get(line.SignatureHeader))
		if err == nil {
			return c.Next()
		}
		if errors.Is(err, line.ErrNotSupported) {
			return richerrors.Error{
				ExternalMsg: "Webhook signature verification is not supported",
				Err:         err,
				Code:        fiber.StatusNotImplemented,
			}
		}
		return richerrors.Error{
			ExternalMsg: "Invalid webhook signature",
			Err:         err,
			Code:        fiber.StatusUnauthorized,
		}
	}
}
