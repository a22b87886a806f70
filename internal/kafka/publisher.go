package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
)

// PartitionKeyMetadata is the message metadata key used to pick a partition.
const PartitionKeyMetadata = "partition_key"

type Config struct {
	ClusterConfig   *sarama.Config
	BrokerAddresses []string
}

// NewPublisher creates a synchronous kafka publisher. Messages with the same
// PartitionKeyMetadata value land on the same partition.
func NewPublisher(cfg *Config, logger *zerolog.Logger) (*wm_kafka.Publisher, error) {
	saramaPublisherConfig := wm_kafka.DefaultSaramaSyncPublisherConfig()
	if cfg.ClusterConfig != nil {
		saramaPublisherConfig.Version = cfg.ClusterConfig.Version
	}

	publisher, err := wm_kafka.NewPublisher(
		wm_kafka.PublisherConfig{
			Brokers:               cfg.BrokerAddresses,
			Marshaler:             wm_kafka.NewWithPartitioningMarshaler(partitionKey),
			OverwriteSaramaConfig: saramaPublisherConfig,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	logger.Info().Strs("brokers", cfg.BrokerAddresses).Msg("Kafka publisher created")
	return publisher, nil
}

func partitionKey(_ string, msg *message.Message) (string, error) {
	return msg.Metadata.Get(PartitionKeyMetadata), nil
}
