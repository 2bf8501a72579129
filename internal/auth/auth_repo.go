package auth

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Save(ctx context.Context, user *User) error
	ListMemberships(ctx context.Context, userID string) ([]MembershipRow, error)
	HasMembership(ctx context.Context, userID, organizationID string) (bool, error)
	AddMembership(ctx context.Context, membership *UserOrganizationRole) error
	FindRoleIDByName(ctx context.Context, name string) (uuid.UUID, error)
	FindDepartment(ctx context.Context, id string) (*DepartmentRef, error)
	AddToDepartment(ctx context.Context, membership *UserDepartment) error
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

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (r *repository) Save(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *repository) ListMemberships(ctx context.Context, userID string) ([]MembershipRow, error) {
	var rows []MembershipRow
	err := r.db.WithContext(ctx).
		Table("user_organization_roles uor").
		Select("uor.organization_id::text AS organization_id, o.name AS organization_name, roles.name AS role_name").
		Joins("JOIN organizations o ON o.id = uor.organization_id").
		Joins("JOIN roles ON roles.id = uor.role_id").
		Where("uor.user_id = ?", userID).
		Order("o.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) HasMembership(ctx context.Context, userID, organizationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserOrganizationRole{}).
		Where("user_id = ? AND organization_id = ?", userID, organizationID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) AddMembership(ctx context.Context, membership *UserOrganizationRole) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *repository) FindRoleIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var row struct {
		ID uuid.UUID
	}
	err := r.db.WithContext(ctx).
		Table("roles").
		Select("id").
		Where("name = ?", name).
		Take(&row).Error
	return row.ID, err
}

func (r *repository) FindDepartment(ctx context.Context, id string) (*DepartmentRef, error) {
	var ref DepartmentRef
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("id::text AS id, organization_id::text AS organization_id, name").
		Where("id = ?", id).
		Take(&ref).Error
	return &ref, err
}

// AddToDepartment is a no-op when the user is already in the department.
func (r *repository) AddToDepartment(ctx context.Context, membership *UserDepartment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "department_id"}},
			DoNothing: true,
		}).
		Create(membership).Error
}

func (r *repository) FindOrganizationName(ctx context.Context, organizationID string) (string, error) {
	var row struct {
		Name string
	}
	err := r.db.WithContext(ctx).
		Table("organizations").
		Select("name").
		Where("id = ?", organizationID).
		Take(&row).Error
	return row.Name, err
}
