package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	BookingTopic = "booking.created"

	NotifierConsumerGroup = "notifier"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// BookingCreatedMsg is published by the storefront once the booking
// transaction has committed. The notifier consumes it to send the
// confirmation email.
type BookingCreatedMsg struct {
	BookingID     string    `json:"bookingId"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	ProductName   string    `json:"productName"`
	RentalFrom    time.Time `json:"rentalFrom"`
	RentalTo      time.Time `json:"rentalTo"`
	TotalAmount   float64   `json:"totalAmount"`
	TransactionID string    `json:"transactionId"`
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

// Consume loops the consumer group over topic until ctx is canceled.
// A rebalance makes Consume return; the loop re-enters it.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string, log *zap.Logger) {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			log.Error("consumer.Consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
