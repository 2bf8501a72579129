package rbac

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	GetMemberRoles(organizationID string) ([]MemberRoleRow, error)
	ListRoles(ctx context.Context) ([]Role, error)
	EnsureRoles(ctx context.Context, roles []Role) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type MemberRoleRow struct {
	UserID   string
	RoleName string
}

func (r *repository) GetMemberRoles(organizationID string) ([]MemberRoleRow, error) {
	var result []MemberRoleRow

	err := r.db.
		Table("user_organization_roles").
		Select("user_organization_roles.user_id::text AS user_id, roles.name AS role_name").
		Joins("JOIN roles ON roles.id = user_organization_roles.role_id").
		Where("user_organization_roles.organization_id = ?", organizationID).
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(ctx context.Context) ([]Role, error) {
	var roles []Role
	err := r.db.WithContext(ctx).Order("created_at, name").Find(&roles).Error
	return roles, err
}

func (r *repository) EnsureRoles(ctx context.Context, roles []Role) error {
	if len(roles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&roles).Error
}
