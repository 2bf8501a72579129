package sale

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"go-crm/internal/domain"
	"go-crm/internal/events"
	"go-crm/internal/messaging/kafka"
	saleerrors "go-crm/internal/sale/errors"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/contextutil"
	"go-crm/internal/shared/counter"
	"go-crm/internal/telemetry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, organizationID, userID string, req CreateSaleRequest) (SaleResponse, error)
	GetAll(ctx context.Context, organizationID string, filter SaleFilter) ([]SaleResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (SaleResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

// NewService wires the sale workflow. outbox may be nil, in which case no
// sale_recorded event is queued.
func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("sale.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sale.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func FormatSaleNumber(n int64) string {
	return fmt.Sprintf("SO-%06d", n)
}

// TotalPrice rounds to cents.
func TotalPrice(unitPrice float64, quantity int) float64 {
	return math.Round(unitPrice*float64(quantity)*100) / 100
}

func (s *service) Create(ctx context.Context, organizationID, userID string, req CreateSaleRequest) (SaleResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create sale requested",
		zap.String("organization_id", organizationID),
		zap.String("lead_id", req.LeadID),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return SaleResponse{}, apperror.ErrNoActiveOrganization
	}
	sellerID, err := uuid.Parse(userID)
	if err != nil {
		return SaleResponse{}, apperror.ErrUnauthorized
	}
	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidLeadID
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidProductID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create sale begin tx failed", zap.Error(err))
		return SaleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lead, err := qtx.FindLeadForUpdate(ctx, organizationID, req.LeadID)
	if err != nil {
		log.Warn("create sale lead lookup failed", zap.String("lead_id", req.LeadID), zap.Error(err))
		return SaleResponse{}, mapLookupError(err, saleerrors.ErrLeadNotFound)
	}
	product, err := qtx.FindProduct(ctx, organizationID, req.ProductID)
	if err != nil {
		log.Warn("create sale product lookup failed", zap.String("product_id", req.ProductID), zap.Error(err))
		return SaleResponse{}, mapLookupError(err, saleerrors.ErrProductNotFound)
	}

	if req.Quantity <= 0 {
		return SaleResponse{}, saleerrors.ErrInvalidQuantity
	}

	next, err := s.counter.WithTx(tx).GetNextValue(ctx, organizationID, counter.SaleNumber)
	if err != nil {
		log.Error("create sale generate number failed", zap.Error(err))
		return SaleResponse{}, err
	}

	sale := &Sale{
		ID:             uuid.New(),
		OrganizationID: orgID,
		SaleNumber:     FormatSaleNumber(next),
		LeadID:         leadID,
		ProductID:      productID,
		UserID:         sellerID,
		Quantity:       req.Quantity,
		UnitPrice:      product.UnitPrice,
		TotalPrice:     TotalPrice(product.UnitPrice, req.Quantity),
	}

	if err := qtx.Create(ctx, sale); err != nil {
		log.Error("create sale persist failed", zap.Error(err))
		return SaleResponse{}, mapRepositoryError(err)
	}

	if err := qtx.CloseLead(ctx, organizationID, req.LeadID); err != nil {
		log.Error("create sale close lead failed", zap.String("lead_id", req.LeadID), zap.Error(err))
		return SaleResponse{}, mapLookupError(err, saleerrors.ErrLeadNotFound)
	}
	lead.LeadStatus = string(domain.LeadStatusClosed)

	if s.outbox != nil {
		event := events.SaleRecordedEvent{
			EventType:      events.SaleRecordedEventType,
			RequestID:      rid,
			SaleID:         sale.ID.String(),
			SaleNumber:     sale.SaleNumber,
			OrganizationID: organizationID,
			LeadID:         req.LeadID,
			LeadName:       lead.Name,
			ProductID:      req.ProductID,
			ProductName:    product.Name,
			UserID:         userID,
			Quantity:       sale.Quantity,
			UnitPrice:      sale.UnitPrice,
			TotalPrice:     sale.TotalPrice,
			OccurredAt:     time.Now().UTC(),
		}
		outboxEvent, err := kafka.NewEvent(rid, "sale", sale.ID.String(), event.EventType, events.SaleRecordedTopic, event)
		if err != nil {
			log.Error("encode sale event failed", zap.Error(err))
			return SaleResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			log.Error("create sale outbox persist failed",
				zap.String("sale_id", sale.ID.String()),
				zap.Error(err),
			)
			return SaleResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create sale commit failed", zap.Error(err))
		return SaleResponse{}, err
	}

	telemetry.SalesRecordedTotal.Inc()
	telemetry.SalesRevenueTotal.Add(sale.TotalPrice)

	log.Info("create sale success",
		zap.String("sale_id", sale.ID.String()),
		zap.String("sale_number", sale.SaleNumber),
		zap.Float64("total_price", sale.TotalPrice),
	)

	sale.Lead = lead
	sale.Product = product
	return mapToResponse(*sale), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string, filter SaleFilter) ([]SaleResponse, error) {
	if filter.LeadID != "" {
		if _, err := uuid.Parse(filter.LeadID); err != nil {
			return nil, saleerrors.ErrInvalidLeadID
		}
	}
	if filter.ProductID != "" {
		if _, err := uuid.Parse(filter.ProductID); err != nil {
			return nil, saleerrors.ErrInvalidProductID
		}
	}

	sales, err := s.repo.FindAllByOrganization(ctx, organizationID, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list sales failed", zap.Error(err))
		return nil, err
	}

	resp := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		resp[i] = mapToResponse(sale)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (SaleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SaleResponse{}, saleerrors.ErrInvalidSaleID
	}

	sale, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return SaleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*sale), nil
}

// Delete removes the sale only. The lead stays CLOSED.
func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return saleerrors.ErrInvalidSaleID
	}

	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("delete sale success", zap.String("sale_id", id))
	return nil
}

func mapToResponse(sale Sale) SaleResponse {
	resp := SaleResponse{
		ID:             sale.ID.String(),
		OrganizationID: sale.OrganizationID.String(),
		SaleNumber:     sale.SaleNumber,
		LeadID:         sale.LeadID.String(),
		ProductID:      sale.ProductID.String(),
		UserID:         sale.UserID.String(),
		Quantity:       sale.Quantity,
		UnitPrice:      sale.UnitPrice,
		TotalPrice:     sale.TotalPrice,
		CreatedAt:      sale.CreatedAt,
	}
	if sale.Lead != nil {
		resp.LeadName = sale.Lead.Name
	}
	if sale.Product != nil {
		resp.ProductName = sale.Product.Name
	}
	return resp
}
