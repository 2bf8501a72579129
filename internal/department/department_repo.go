package department

import (
	"context"
	"database/sql"

	"go-crm/internal/shared/database"
	"go-crm/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllByOrganization(ctx context.Context, organizationID string) ([]Department, error)
	FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Department, error)
	Update(ctx context.Context, dept *Department) error
	DeleteUserDepartments(ctx context.Context, departmentID string) error
	Delete(ctx context.Context, organizationID, id string) error
	ListMembers(ctx context.Context, organizationID, departmentID string) ([]MemberRow, error)
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByIDAndOrganization(ctx context.Context, organizationID, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", id).
		First(&dept).Error
	return &dept, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) DeleteUserDepartments(ctx context.Context, departmentID string) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM user_departments WHERE department_id = ?", departmentID).Error
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", id).
		Delete(&Department{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ListMembers(ctx context.Context, organizationID, departmentID string) ([]MemberRow, error) {
	var rows []MemberRow
	err := r.db.WithContext(ctx).
		Table("user_departments ud").
		Select("u.id AS user_id, u.name, u.email, u.user_type, COALESCE(r.name, '') AS role_name, ud.created_at AS joined_at").
		Joins("JOIN users u ON u.id = ud.user_id").
		Joins("LEFT JOIN user_organization_roles uor ON uor.user_id = u.id AND uor.organization_id = ?", organizationID).
		Joins("LEFT JOIN roles r ON r.id = uor.role_id").
		Where("ud.department_id = ?", departmentID).
		Order("u.name ASC").
		Scan(&rows).Error
	return rows, err
}
