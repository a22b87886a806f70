package ledgerevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DIMO-Network/cloudevent"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/ledgerbot/ledger-bot/internal/kafka"
	"github.com/ledgerbot/ledger-bot/internal/ledger"
)

const (
	// EntryCommittedType is the cloudevent type of a committed ledger entry.
	EntryCommittedType = "ledger.entry.committed"
	// EntryCommittedVersion is the data version of EntryCommitted.
	EntryCommittedVersion = "ledger.entry/v1.0"
)

// EntryCommitted is the data of an EntryCommittedType event.
type EntryCommitted struct {
	Entry ledger.Entry `json:"entry"`
}

// Publisher announces committed ledger entries on a message topic.
type Publisher struct {
	publisher message.Publisher
	topic     string
	source    string
}

// NewPublisher creates a Publisher that sends to topic. source identifies this
// service in the emitted cloudevents.
func NewPublisher(publisher message.Publisher, topic, source string) *Publisher {
	return &Publisher{
		publisher: publisher,
		topic:     topic,
		source:    source,
	}
}

// PublishEntryCommitted sends entry wrapped in a cloudevent.
func (p *Publisher) PublishEntryCommitted(ctx context.Context, entry ledger.Entry) error {
	event := cloudevent.CloudEvent[EntryCommitted]{
		CloudEventHeader: cloudevent.CloudEventHeader{
			ID:              uuid.New().String(),
			Source:          p.source,
			Subject:         entry.ID,
			Time:            time.Now().UTC(),
			DataContentType: "application/json",
			DataVersion:     EntryCommittedVersion,
			Type:            EntryCommittedType,
			SpecVersion:     "1.0",
		},
		Data: EntryCommitted{Entry: entry},
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("ce-type", EntryCommittedType)
	// Kafka partitions by entry id.
	msg.Metadata.Set(kafka.PartitionKeyMetadata, entry.ID)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish ledger event to %s: %w", p.topic, err)
	}
	return nil
}

// Close closes the underlying publisher.
func (p *Publisher) Close() error {
	return p.publisher.Close()
}
