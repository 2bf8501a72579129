package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-crm/internal/config"
	"go-crm/internal/events"
	"go-crm/internal/messaging/kafka/consumer"
	"go-crm/internal/organization"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const saleNotificationGroup = "go-crm-sale-notifications"

// RunConsumer emails organization owners for every recorded sale until
// SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier, err := newNotifier(ctx, cfg, logger)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.SaleRecordedTopic,
		GroupID:        saleNotificationGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	handler := consumer.NewSaleRecordedHandler(organization.NewRepository(gormDB), notifier, logger)
	consumer.ConsumeSaleRecorded(ctx, reader, handler)

	logger.Info("consumer shutting down")
	return nil
}
