package contact

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/database"
	"go-crm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=contact_repo.go -destination=mock/contact_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, contact *Contact) error
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Contact, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Contact, error)
	Update(ctx context.Context, contact *Contact) error
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

func (r *repository) Create(ctx context.Context, contact *Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Contact, error) {
	var contacts []Contact
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("created_at DESC").
		Find(&contacts).Error
	return contacts, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Contact, error) {
	var contact Contact
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&contact, "id = ?", id).Error
	return &contact, err
}

func (r *repository) Update(ctx context.Context, contact *Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
