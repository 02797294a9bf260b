package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

const (
	NotificationTopic         = "notifications"
	NotificationConsumerGroup = "bookshelf-notifications"
)

// EventNotification is the message published after a checkout transition and
// consumed into the notifications table.
type EventNotification struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    int       `json:"userId"`
	LibraryID int       `json:"libraryId"`
	Content   string    `json:"content"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is canceled. Consume sessions
// end on every rebalance, so the handler must be re-entrant.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) error {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
