package user

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const memberColumns = "u.id, u.name, u.email, u.user_type, u.is_verified, u.is_activated, r.name AS role_name, u.created_at"

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListMembers(ctx context.Context, organizationID string) ([]MemberRow, error)
	FindMember(ctx context.Context, organizationID, userID string) (*MemberRow, error)
	ListDepartments(ctx context.Context, organizationID string, userIDs []uuid.UUID) ([]DepartmentRow, error)
	FindRoleIDByName(ctx context.Context, name string) (uuid.UUID, error)
	UpdateMemberRole(ctx context.Context, organizationID, userID string, roleID uuid.UUID) error
	DeleteMemberships(ctx context.Context, userID string) error
	DeleteUserDepartments(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
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

func (r *repository) members(ctx context.Context, organizationID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users u").
		Select(memberColumns).
		Joins("JOIN user_organization_roles uor ON uor.user_id = u.id").
		Joins("JOIN roles r ON r.id = uor.role_id").
		Where("uor.organization_id = ?", organizationID)
}

func (r *repository) ListMembers(ctx context.Context, organizationID string) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.members(ctx, organizationID).Order("u.name ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) FindMember(ctx context.Context, organizationID, userID string) (*MemberRow, error) {
	var row MemberRow
	err := r.members(ctx, organizationID).Where("u.id = ?", userID).Take(&row).Error
	return &row, err
}

func (r *repository) ListDepartments(ctx context.Context, organizationID string, userIDs []uuid.UUID) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	if len(userIDs) == 0 {
		return rows, nil
	}
	err := r.db.WithContext(ctx).
		Table("user_departments ud").
		Select("ud.user_id, d.id AS department_id, d.name AS department_name").
		Joins("JOIN departments d ON d.id = ud.department_id").
		Where("d.organization_id = ? AND ud.user_id IN ?", organizationID, userIDs).
		Order("d.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindRoleIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var row struct{ ID uuid.UUID }
	err := r.db.WithContext(ctx).Table("roles").Select("id").Where("name = ?", name).Take(&row).Error
	return row.ID, err
}

func (r *repository) UpdateMemberRole(ctx context.Context, organizationID, userID string, roleID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Table("user_organization_roles").
		Where("organization_id = ? AND user_id = ?", organizationID, userID).
		Updates(map[string]any{"role_id": roleID, "updated_at": gorm.Expr("NOW()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteMemberships(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM user_organization_roles WHERE user_id = ?", userID).Error
}

func (r *repository) DeleteUserDepartments(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM user_departments WHERE user_id = ?", userID).Error
}

func (r *repository) DeleteUser(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Exec("DELETE FROM users WHERE id = ?", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
