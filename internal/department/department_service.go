package department

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	departmenterrors "go-crm/internal/department/errors"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DepartmentAllKeyPrefix = "departments:all:"
	departmentCacheTTL     = 30 * time.Minute
)

func GetDepartmentAllKey(organizationID string) string {
	return DepartmentAllKeyPrefix + organizationID
}

type Service interface {
	Create(ctx context.Context, organizationID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (DepartmentResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
	ListUsers(ctx context.Context, organizationID, id string) ([]DepartmentMemberResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) invalidate(ctx context.Context, organizationID string) {
	if s.rdb == nil {
		return
	}
	key := GetDepartmentAllKey(organizationID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("department cache invalidate failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateDepartmentRequest) (DepartmentResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return DepartmentResponse{}, apperror.ErrNoActiveOrganization
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept := &Department{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
	}

	if err := qtx.Create(ctx, dept); err != nil {
		log.Warn("create department failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidate(ctx, organizationID)
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]DepartmentResponse, error) {
	cacheKey := GetDepartmentAllKey(organizationID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []DepartmentResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		depts, err := s.repo.FindAllByOrganization(ctx, organizationID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(depts)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, departmentCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DepartmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	dept.Name = strings.TrimSpace(req.Name)
	dept.Description = strings.TrimSpace(req.Description)

	if err := qtx.Update(ctx, dept); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("update department failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return DepartmentResponse{}, err
	}

	s.invalidate(ctx, organizationID)
	return mapToResponse(*dept), nil
}

// Delete detaches every member before removing the department itself.
func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndOrganization(ctx, organizationID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.DeleteUserDepartments(ctx, id); err != nil {
		log.Error("delete department members failed", zap.String("department_id", id), zap.Error(err))
		return err
	}

	if err := qtx.Delete(ctx, organizationID, id); err != nil {
		log.Error("delete department failed", zap.String("department_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, organizationID)
	return nil
}

func (s *service) ListUsers(ctx context.Context, organizationID, id string) ([]DepartmentMemberResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, departmenterrors.ErrInvalidDepartmentID
	}

	if _, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id); err != nil {
		return nil, mapRepositoryError(err)
	}

	rows, err := s.repo.ListMembers(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	out := make([]DepartmentMemberResponse, len(rows))
	for i, r := range rows {
		out[i] = DepartmentMemberResponse{
			UserID:   r.UserID.String(),
			Name:     r.Name,
			Email:    r.Email,
			UserType: r.UserType,
			Role:     r.RoleName,
			JoinedAt: r.JoinedAt,
		}
	}
	return out, nil
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:             dept.ID.String(),
		OrganizationID: dept.OrganizationID.String(),
		Name:           dept.Name,
		Description:    dept.Description,
		CreatedAt:      dept.CreatedAt,
		UpdatedAt:      dept.UpdatedAt,
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
