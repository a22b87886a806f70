package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/ledgerbot/ledger-bot/docs" // Import Swagger docs
	"github.com/ledgerbot/ledger-bot/internal/clients/line"
	"github.com/ledgerbot/ledger-bot/internal/config"
	"github.com/ledgerbot/ledger-bot/internal/confirmation"
	"github.com/ledgerbot/ledger-bot/internal/controllers/webhook"
	"github.com/ledgerbot/ledger-bot/internal/kafka"
	"github.com/ledgerbot/ledger-bot/internal/ledger"
	"github.com/ledgerbot/ledger-bot/internal/ledger/postgres"
	"github.com/ledgerbot/ledger-bot/internal/ledger/sheets"
	"github.com/ledgerbot/ledger-bot/internal/record"
	"github.com/ledgerbot/ledger-bot/internal/services/dispatch"
	"github.com/ledgerbot/ledger-bot/internal/services/ledgerevents"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// redeliveryWindow is how long processed webhook event ids are remembered.
const redeliveryWindow = 10 * time.Minute

// Dependencies are the collaborators of the webhook route.
type Dependencies struct {
	Parser     *record.Parser
	Codec      *confirmation.Codec
	Dispatcher webhook.Dispatcher
	Replier    webhook.Replier
	Filter     webhook.EventFilter
	// Verifier is nil unless signatures are checked.
	Verifier webhook.SignatureVerifier
}

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	loc, err := settings.Location()
	if err != nil {
		return nil, err
	}
	rule, err := record.NewRule(settings.RecordRule)
	if err != nil {
		return nil, fmt.Errorf("failed to compile record rule: %w", err)
	}

	store, err := createLedgerStore(ctx, settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger store: %w", err)
	}

	var entryPublisher dispatch.EntryPublisher
	if settings.KafkaBrokers != "" {
		publisher, err := startLedgerEventsPublisher(ctx, logger, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to start ledger events publisher: %w", err)
		}
		entryPublisher = publisher
	}

	lineClient, err := line.NewClient(settings.LineAPIURL, settings.LineChannelAccessToken, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE client: %w", err)
	}

	deps := Dependencies{
		Parser:     record.NewParser(loc, rule),
		Codec:      confirmation.NewCodec([]byte(settings.TokenSigningKey), settings.TokenTTL),
		Dispatcher: dispatch.New(store, entryPublisher),
		Replier:    lineClient,
		Filter:     webhook.NewRedeliveryFilter(redeliveryWindow),
	}
	if settings.VerifySignature {
		deps.Verifier = line.NewChannelSignatureVerifier(settings.LineChannelSecret)
	}

	return CreateFiberApp(logger, deps), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, deps Dependencies) *fiber.App {
	logger.Info().Msg("Starting Ledger Bot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Ledger Bot!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController(deps.Parser, deps.Codec, deps.Dispatcher, deps.Replier, deps.Filter)
	logger.Info().Msg("Registering routes...")

	handlers := []fiber.Handler{webhookController.HandleWebhook}
	if deps.Verifier != nil {
		handlers = append([]fiber.Handler{webhook.SignatureMiddleware(deps.Verifier)}, handlers...)
	}
	app.Post("/webhook", handlers...)

	return app
}

func createLedgerStore(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (ledger.Store, error) {
	switch settings.LedgerBackend {
	case config.LedgerBackendSheets:
		var opts []option.ClientOption
		if settings.GoogleCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(settings.GoogleCredentialsFile))
		}
		store, err := sheets.New(ctx, settings.SpreadsheetID, settings.SheetName, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.LedgerBackendPostgres:
		store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
		store.WaitForDB(logger)
		return postgres.New(store.DBS().Writer.DB), nil
	case config.LedgerBackendMemory:
		logger.Warn().Msg("Ledger entries are kept in memory and lost on restart")
		return ledger.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", settings.LedgerBackend)
	}
}

// startLedgerEventsPublisher connects to kafka and closes the publisher when ctx ends.
func startLedgerEventsPublisher(ctx context.Context, logger zerolog.Logger, settings *config.Settings) (*ledgerevents.Publisher, error) {
	clusterConfig := sarama.NewConfig()
	clusterConfig.Version = sarama.V2_8_1_0

	kafkaPublisher, err := kafka.NewPublisher(&kafka.Config{
		ClusterConfig:   clusterConfig,
		BrokerAddresses: strings.Split(settings.KafkaBrokers, ","),
	}, &logger)
	if err != nil {
		return nil, err
	}

	publisher := ledgerevents.NewPublisher(kafkaPublisher, settings.LedgerEventsTopic, settings.ServiceName)
	go func() {
		<-ctx.Done()
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close ledger events publisher")
		}
	}()

	logger.Info().Msgf("Ledger events publisher started on topic: %s", settings.LedgerEventsTopic)
	return publisher, nil
}
