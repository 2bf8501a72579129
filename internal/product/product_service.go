package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"math"
	"strings"
	"time"

	producterrors "go-crm/internal/product/errors"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ProductOptionsKeyPrefix = "products:options:"
	productOptionsTTL       = 30 * time.Minute
)

func GetProductOptionsKey(organizationID string) string {
	return ProductOptionsKeyPrefix + organizationID
}

type Service interface {
	Create(ctx context.Context, organizationID string, req CreateProductRequest) (ProductResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]ProductResponse, error)
	GetOptions(ctx context.Context, organizationID string) ([]ProductOption, error)
	GetByID(ctx context.Context, organizationID, id string) (ProductResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("product.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *service) invalidate(ctx context.Context, organizationID string) {
	if s.rdb == nil {
		return
	}
	key := GetProductOptionsKey(organizationID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("product options cache invalidate failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateProductRequest) (ProductResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return ProductResponse{}, apperror.ErrNoActiveOrganization
	}

	p := &Product{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		UnitPrice:      roundPrice(req.UnitPrice),
		Description:    strings.TrimSpace(req.Description),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.Warn("create product persist failed", zap.Error(err))
		return ProductResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, organizationID)
	log.Info("create product success", zap.String("product_id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]ProductResponse, error) {
	products, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list products failed", zap.Error(err))
		return nil, err
	}

	resp := make([]ProductResponse, len(products))
	for i, p := range products {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

// GetOptions is cache-aside over Redis; concurrent misses for one organization share a single query.
func (s *service) GetOptions(ctx context.Context, organizationID string) ([]ProductOption, error) {
	cacheKey := GetProductOptionsKey(organizationID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []ProductOption
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		products, err := s.repo.FindAllByOrganization(ctx, organizationID)
		if err != nil {
			return nil, err
		}

		resp := make([]ProductOption, len(products))
		for i, p := range products {
			resp[i] = ProductOption{ID: p.ID.String(), Name: p.Name, UnitPrice: p.UnitPrice}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, productOptionsTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list product options failed", zap.Error(err))
		return nil, err
	}

	return v.([]ProductOption), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProductResponse{}, producterrors.ErrInvalidProductID
	}

	p, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return ProductResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateProductRequest) (ProductResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return ProductResponse{}, producterrors.ErrInvalidProductID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProductResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return ProductResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.UnitPrice != nil {
		p.UnitPrice = roundPrice(*req.UnitPrice)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}

	if err := qtx.Update(ctx, p); err != nil {
		log.Warn("update product failed", zap.String("product_id", id), zap.Error(err))
		return ProductResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProductResponse{}, err
	}

	s.invalidate(ctx, organizationID)
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return producterrors.ErrInvalidProductID
	}

	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("delete product failed", zap.String("product_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidate(ctx, organizationID)
	return nil
}

func mapToResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID.String(),
		OrganizationID: p.OrganizationID.String(),
		Name:           p.Name,
		UnitPrice:      p.UnitPrice,
		Description:    p.Description,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
