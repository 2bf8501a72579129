package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-crm/internal/events"
	"go-crm/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// OwnerDirectory resolves who is told about a recorded sale.
type OwnerDirectory interface {
	FindOwnerEmails(ctx context.Context, organizationID string) ([]string, error)
	FindOrganizationName(ctx context.Context, organizationID string) (string, error)
}

var errUndecodable = errors.New("undecodable sale_recorded message")

type SaleRecordedHandler struct {
	owners   OwnerDirectory
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewSaleRecordedHandler(owners OwnerDirectory, notifier notification.Notifier, logger *zap.Logger) *SaleRecordedHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &SaleRecordedHandler{
		owners:   owners,
		notifier: notifier,
		logger:   logger.Named("kafka.consumer.sale_recorded"),
	}
}

// Handle emails every OWNER of the sale's organization. A returned error
// means the message must not be committed.
func (h *SaleRecordedHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	var event events.SaleRecordedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.OrganizationID == "" {
		h.logger.Error("decode sale_recorded event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return errUndecodable
	}

	emails, err := h.owners.FindOwnerEmails(ctx, event.OrganizationID)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		h.logger.Warn("sale recorded for organization without owners",
			zap.String("organization_id", event.OrganizationID),
			zap.String("sale_id", event.SaleID),
		)
		return nil
	}

	orgName, err := h.owners.FindOrganizationName(ctx, event.OrganizationID)
	if err != nil {
		return err
	}

	return h.notifier.SendSaleRecorded(ctx, notification.SaleRecorded{
		To:               emails,
		OrganizationName: orgName,
		SaleNumber:       event.SaleNumber,
		LeadName:         event.LeadName,
		ProductName:      event.ProductName,
		Quantity:         event.Quantity,
		TotalPrice:       event.TotalPrice,
	})
}

func ConsumeSaleRecorded(
	ctx context.Context,
	reader MessageReader,
	handler *SaleRecordedHandler,
) {
	log := handler.logger
	log.Info("sale recorded consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("sale recorded consumer stopped")
				return
			}
			log.Error("fetch sale recorded message failed", zap.Error(err))
			continue
		}

		if err := handler.Handle(ctx, msg); err != nil {
			if !errors.Is(err, errUndecodable) {
				log.Error("handle sale recorded message failed",
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit sale recorded message failed", zap.Error(err))
			continue
		}

		log.Info("sale recorded message processed", zap.Int64("offset", msg.Offset))
	}
}
