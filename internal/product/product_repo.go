package product

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/database"
	"go-crm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=product_repo.go -destination=mock/product_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, product *Product) error
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Product, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Product, error)
	Update(ctx context.Context, product *Product) error
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

func (r *repository) Create(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Product, error) {
	var products []Product
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&product, "id = ?", id).Error
	return &product, err
}

func (r *repository) Update(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
