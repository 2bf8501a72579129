package sale

import (
	"context"
	"database/sql"

	"go-crm/internal/domain"
	"go-crm/internal/shared/database"
	"go-crm/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=sale_repo.go -destination=mock/sale_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindLeadForUpdate(ctx context.Context, organizationID, leadID string) (*SaleLead, error)
	FindProduct(ctx context.Context, organizationID, productID string) (*SaleProduct, error)
	Create(ctx context.Context, sale *Sale) error
	CloseLead(ctx context.Context, organizationID, leadID string) error
	FindAllByOrganization(ctx context.Context, organizationID string, filter SaleFilter) ([]Sale, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Sale, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: database.BindTx(r.db, tx)}
}

// FindLeadForUpdate locks the lead row so two sales on one lead serialize.
func (r *repository) FindLeadForUpdate(ctx context.Context, organizationID, leadID string) (*SaleLead, error) {
	var lead SaleLead
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(organizationID)).
		First(&lead, "id = ?", leadID).Error
	return &lead, err
}

func (r *repository) FindProduct(ctx context.Context, organizationID, productID string) (*SaleProduct, error) {
	var product SaleProduct
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&product, "id = ?", productID).Error
	return &product, err
}

func (r *repository) Create(ctx context.Context, sale *Sale) error {
	return r.db.WithContext(ctx).Omit("Lead", "Product").Create(sale).Error
}

func (r *repository) CloseLead(ctx context.Context, organizationID, leadID string) error {
	res := r.db.WithContext(ctx).
		Model(&SaleLead{}).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", leadID).
		Updates(map[string]any{
			"lead_status": string(domain.LeadStatusClosed),
			"updated_at":  gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string, filter SaleFilter) ([]Sale, error) {
	var sales []Sale
	query := r.db.WithContext(ctx).
		Preload("Lead").
		Preload("Product").
		Scopes(tenant.Scope(organizationID))
	if filter.LeadID != "" {
		query = query.Where("lead_id = ?", filter.LeadID)
	}
	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	err := query.Order("created_at DESC").Find(&sales).Error
	return sales, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Sale, error) {
	var sale Sale
	err := r.db.WithContext(ctx).
		Preload("Lead").
		Preload("Product").
		Scopes(tenant.Scope(organizationID)).
		First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Sale{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
