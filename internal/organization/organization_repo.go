package organization

import (
	"context"
	"database/sql"

	"go-crm/internal/domain"
	"go-crm/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tenantTables are removed with their organization, children before parents.
var tenantTables = []string{"sales", "products", "leads", "contacts", "organization_counters"}

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, org *Organization) error
	AddMembership(ctx context.Context, membership *Membership) error
	FindRoleIDByName(ctx context.Context, name string) (uuid.UUID, error)
	ListByMember(ctx context.Context, userID string) ([]OrganizationWithRole, error)
	FindByID(ctx context.Context, id string) (*Organization, error)
	FindMemberRole(ctx context.Context, organizationID, userID string) (string, error)
	Update(ctx context.Context, org *Organization) error
	ListDepartmentIDs(ctx context.Context, organizationID string) ([]uuid.UUID, error)
	DeleteUserDepartments(ctx context.Context, departmentIDs []uuid.UUID) error
	DeleteDepartments(ctx context.Context, organizationID string) error
	DeleteTenantData(ctx context.Context, organizationID string) error
	DeleteMemberships(ctx context.Context, organizationID string) error
	Delete(ctx context.Context, organizationID string) error
	FindOwnerEmails(ctx context.Context, organizationID string) ([]string, error)
	FindOrganizationName(ctx context.Context, organizationID string) (string, error)
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

func (r *repository) Create(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *repository) AddMembership(ctx context.Context, membership *Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *repository) FindRoleIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var row struct{ ID uuid.UUID }
	err := r.db.WithContext(ctx).
		Table("roles").
		Select("id").
		Where("name = ?", name).
		Take(&row).Error
	return row.ID, err
}

func (r *repository) ListByMember(ctx context.Context, userID string) ([]OrganizationWithRole, error) {
	var rows []OrganizationWithRole
	err := r.db.WithContext(ctx).
		Table("organizations AS o").
		Select("o.*, r.name AS role_name").
		Joins("JOIN user_organization_roles uor ON uor.organization_id = o.id").
		Joins("JOIN roles r ON r.id = uor.role_id").
		Where("uor.user_id = ?", userID).
		Order("o.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	return &org, err
}

func (r *repository) FindMemberRole(ctx context.Context, organizationID, userID string) (string, error) {
	var row struct{ Name string }
	err := r.db.WithContext(ctx).
		Table("user_organization_roles uor").
		Select("r.name").
		Joins("JOIN roles r ON r.id = uor.role_id").
		Where("uor.organization_id = ? AND uor.user_id = ?", organizationID, userID).
		Take(&row).Error
	return row.Name, err
}

func (r *repository) Update(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *repository) ListDepartmentIDs(ctx context.Context, organizationID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("organization_id = ?", organizationID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) DeleteUserDepartments(ctx context.Context, departmentIDs []uuid.UUID) error {
	if len(departmentIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec("DELETE FROM user_departments WHERE department_id IN ?", departmentIDs).Error
}

func (r *repository) DeleteDepartments(ctx context.Context, organizationID string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM departments WHERE organization_id = ?", organizationID).Error
}

func (r *repository) DeleteTenantData(ctx context.Context, organizationID string) error {
	for _, table := range tenantTables {
		if err := r.db.WithContext(ctx).
			Exec("DELETE FROM "+table+" WHERE organization_id = ?", organizationID).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteMemberships(ctx context.Context, organizationID string) error {
	return r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Delete(&Membership{}).Error
}

func (r *repository) Delete(ctx context.Context, organizationID string) error {
	res := r.db.WithContext(ctx).Delete(&Organization{}, "id = ?", organizationID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindOwnerEmails lists the users holding the OWNER role in the organization.
func (r *repository) FindOwnerEmails(ctx context.Context, organizationID string) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Table("users u").
		Joins("JOIN user_organization_roles uor ON uor.user_id = u.id").
		Joins("JOIN roles r ON r.id = uor.role_id").
		Where("uor.organization_id = ? AND r.name = ?", organizationID, string(domain.RoleOwner)).
		Order("u.email ASC").
		Pluck("u.email", &emails).Error
	return emails, err
}

func (r *repository) FindOrganizationName(ctx context.Context, organizationID string) (string, error) {
	var org Organization
	err := r.db.WithContext(ctx).Select("name").First(&org, "id = ?", organizationID).Error
	return org.Name, err
}
