package notifier

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/pkg/kafka"
)

type sender func(ctx context.Context, msg kafka.BookingCreatedMsg) error

type Consumer struct {
	send  sender
	log   *zap.Logger
	ready chan bool
}

func NewConsumer(send sender, log *zap.Logger) *Consumer {
	return &Consumer{
		send:  send,
		log:   log.Named("consumer"),
		ready: make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim delivers at least once: a malformed message is marked and
// skipped, a failed send ends the claim without marking anything further.
// Offset commits are high-watermark, so consuming past a failed message
// and marking a later one would silently drop it; stopping here makes the
// group re-enter the claim and redeliver from the last committed offset.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg kafka.BookingCreatedMsg
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("unmarshal booking message", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.send(context.Background(), msg); err != nil {
				consumer.log.Error("send confirmation", zap.String("bookingId", msg.BookingID), zap.Error(err))
				return err
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
