//go:generate go tool mockgen -source=webhook_controller.go -destination=webhook_controller_mock_test.go -package=webhook
package webhook

import (
	"context"
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerbot/ledger-bot/internal/clients/line"
	"github.com/ledgerbot/ledger-bot/internal/confirmation"
	"github.com/ledgerbot/ledger-bot/internal/record"
	"github.com/rs/zerolog"
)

// Texts sent back to the user.
const (
	UsageReply        = "Send the hospital name on the first line and the amount on the second line.\nExample:\nCity Hospital\n3200"
	RejectedReply     = "This payment cannot be recorded."
	TooLongReply      = "The hospital name is too long."
	UntrustedReply    = "This confirmation is invalid or has expired. Please send the payment again."
	ConfirmAltText    = "Confirm payment"
	ConfirmYesLabel   = "Yes"
	ConfirmNoLabel    = "No"
	confirmYesDisplay = "yes"
	confirmNoDisplay  = "no"
)

// Replier sends messages in reply to a webhook event.
type Replier interface {
	Reply(ctx context.Context, replyToken string, messages ...line.Message) error
}

// Dispatcher commits or discards a resolved confirmation.
type Dispatcher interface {
	OnResolve(ctx context.Context, outcome confirmation.Outcome, token string) (string, error)
}

// EventFilter drops webhook events that were already processed.
type EventFilter interface {
	Seen(eventID string) bool
	Mark(eventID string)
}

// WebhookController handles LINE webhook events.
type WebhookController struct {
	parser     *record.Parser
	codec      *confirmation.Codec
	dispatcher Dispatcher
	replier    Replier
	filter     EventFilter
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(parser *record.Parser, codec *confirmation.Codec, dispatcher Dispatcher, replier Replier, filter EventFilter) *WebhookController {
	return &WebhookController{
		parser:     parser,
		codec:      codec,
		dispatcher: dispatcher,
		replier:    replier,
		filter:     filter,
	}
}

// HandleWebhook godoc
// @Summary      Receive LINE webhook events
// @Description  Handles the first event of the request. A text message "<hospital>\n<amount>" is answered with a yes/no confirmation; pressing yes appends the payment to the ledger.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        request  body      line.WebhookRequest  true  "LINE webhook body"
// @Success      200      {object}  PostResponse         "Event handled"
// @Failure      400      "Invalid request payload"
// @Failure      500      "Internal server error"
// @Router       /webhook [post]
func (w *WebhookController) HandleWebhook(c *fiber.Ctx) error {
	var payload line.WebhookRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if len(payload.Events) == 0 {
		return c.JSON(postOK)
	}

	ctx := c.UserContext()
	event := payload.Events[0]
	logger := zerolog.Ctx(ctx).With().
		Str("event_type", event.Type).
		Str("webhook_event_id", event.WebhookEventID).
		Logger()
	ctx = logger.WithContext(ctx)

	if event.WebhookEventID != "" && w.filter.Seen(event.WebhookEventID) {
		logger.Debug().Bool("redelivery", event.DeliveryContext.IsRedelivery).Msg("Skipping already processed event")
		return c.JSON(postOK)
	}

	var err error
	switch event.Type {
	case line.EventTypeMessage:
		if event.Message != nil && event.Message.Type == line.MessageTypeText {
			err = w.handleText(ctx, event)
		}
	case line.EventTypePostback:
		if event.Postback != nil {
			err = w.handlePostback(ctx, event)
		}
	default:
		logger.Debug().Msg("Ignoring event")
	}
	if err != nil {
		return err
	}

	if event.WebhookEventID != "" {
		w.filter.Mark(event.WebhookEventID)
	}
	return c.JSON(postOK)
}

func (w *WebhookController) handleText(ctx context.Context, event line.Event) error {
	rec, err := w.parser.Parse(event.Message.Text)
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Msg("Could not parse payment")
		switch {
		case errors.Is(err, record.ErrMalformedInput):
			return w.replyText(ctx, event.ReplyToken, UsageReply)
		case errors.Is(err, record.ErrRuleRejected):
			return w.replyText(ctx, event.ReplyToken, RejectedReply)
		default:
			return err
		}
	}

	conf, err := w.codec.Build(rec, event.Source.ID())
	if err != nil {
		if errors.Is(err, confirmation.ErrTokenTooLarge) {
			return w.replyText(ctx, event.ReplyToken, TooLongReply)
		}
		return err
	}

	msg := line.NewConfirmMessage(ConfirmAltText, conf.Prompt,
		line.NewPostbackAction(ConfirmYesLabel, confirmYesDisplay, conf.YesToken),
		line.NewPostbackAction(ConfirmNoLabel, confirmNoDisplay, conf.NoToken),
	)
	return w.replier.Reply(ctx, event.ReplyToken, msg)
}

func (w *WebhookController) handlePostback(ctx context.Context, event line.Event) error {
	token := event.Postback.Data
	outcome, err := w.codec.Resolve(token, event.Source.ID())
	if err != nil {
		if errors.Is(err, confirmation.ErrUntrustedToken) {
			zerolog.Ctx(ctx).Warn().Err(err).Str("source", event.Source.ID()).Msg("Rejected confirmation token")
			return w.replyText(ctx, event.ReplyToken, UntrustedReply)
		}
		return err
	}

	text, err := w.dispatcher.OnResolve(ctx, outcome, token)
	if err != nil {
		return err
	}
	return w.replyText(ctx, event.ReplyToken, text)
}

func (w *WebhookController) replyText(ctx context.Context, replyToken, text string) error {
	return w.replier.Reply(ctx, replyToken, line.NewTextMessage(text))
}
