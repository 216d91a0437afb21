package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/config"
	"github.com/prency-hangers/rental-service/internal/notifier"
	"github.com/prency-hangers/rental-service/pkg/kafka"
	"github.com/prency-hangers/rental-service/pkg/logger"
)

// RunNotifier starts the email worker: it consumes booking events and
// sends confirmation mails until interrupted.
func RunNotifier(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "notifier")

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotifierConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}

	mailer := notifier.NewMailer(cfg.Mailer, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		kafka.Consume(ctx, consumer, notifier.NewConsumer(mailer.SendBookingConfirmation, log), kafka.BookingTopic, log)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	cancel()
	<-done
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
