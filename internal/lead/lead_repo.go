package lead

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/database"
	"go-crm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=lead_repo.go -destination=mock/lead_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lead *Lead) error
	FindAllByOrganization(ctx context.Context, organizationID, status string) ([]Lead, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Lead, error)
	Update(ctx context.Context, lead *Lead) error
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

func (r *repository) Create(ctx context.Context, lead *Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// FindAllByOrganization filters on lead_status when status is non-empty.
func (r *repository) FindAllByOrganization(ctx context.Context, organizationID, status string) ([]Lead, error) {
	var leads []Lead
	query := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID))
	if status != "" {
		query = query.Where("lead_status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Lead, error) {
	var lead Lead
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&lead, "id = ?", id).Error
	return &lead, err
}

func (r *repository) Update(ctx context.Context, lead *Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Lead{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
