package user

import (
	"context"
	"database/sql"
	"errors"

	"go-crm/internal/domain"
	"go-crm/internal/shared/contextutil"
	usererrors "go-crm/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetAll(ctx context.Context, organizationID string) ([]UserResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (UserResponse, error)
	ChangeRole(ctx context.Context, organizationID, callerID, id string, req ChangeRoleRequest) (UserResponse, error)
	Delete(ctx context.Context, organizationID, callerID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	rows, err := s.repo.ListMembers(ctx, organizationID)
	if err != nil {
		log.Error("list members failed", zap.Error(err))
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	depts, err := s.repo.ListDepartments(ctx, organizationID, ids)
	if err != nil {
		log.Error("list member departments failed", zap.Error(err))
		return nil, err
	}

	byUser := groupDepartments(depts)
	resp := make([]UserResponse, len(rows))
	for i, r := range rows {
		resp[i] = mapToResponse(r, byUser[r.ID])
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (UserResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	row, err := s.repo.FindMember(ctx, organizationID, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	depts, err := s.repo.ListDepartments(ctx, organizationID, []uuid.UUID{uid})
	if err != nil {
		return UserResponse{}, err
	}

	return mapToResponse(*row, groupDepartments(depts)[uid]), nil
}

func (s *service) ChangeRole(ctx context.Context, organizationID, callerID, id string, req ChangeRoleRequest) (UserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	role, ok := domain.ParseRoleName(req.Role)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if role == domain.RoleOwner {
		return UserResponse{}, usererrors.ErrOwnerRoleNotAssignable
	}
	if id == callerID {
		return UserResponse{}, usererrors.ErrCannotChangeOwnRole
	}

	row, err := s.repo.FindMember(ctx, organizationID, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	if row.RoleName == string(domain.RoleOwner) {
		return UserResponse{}, usererrors.ErrCannotModifyOwner
	}

	roleID, err := s.repo.FindRoleIDByName(ctx, string(role))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrInvalidRole
		}
		return UserResponse{}, err
	}

	if err := s.repo.UpdateMemberRole(ctx, organizationID, id, roleID); err != nil {
		log.Error("change member role failed", zap.String("target_user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	log.Info("member role changed",
		zap.String("target_user_id", id),
		zap.String("from", row.RoleName),
		zap.String("to", string(role)),
	)

	row.RoleName = string(role)
	return mapToResponse(*row, nil), nil
}

// Delete removes the account everywhere, not only from the caller's organization.
func (s *service) Delete(ctx context.Context, organizationID, callerID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	if id == callerID {
		return usererrors.ErrCannotDeleteSelf
	}

	row, err := s.repo.FindMember(ctx, organizationID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if row.RoleName == string(domain.RoleOwner) {
		return usererrors.ErrCannotModifyOwner
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete user begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteMemberships(ctx, id); err != nil {
		log.Error("delete user memberships failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteUserDepartments(ctx, id); err != nil {
		log.Error("delete user departments failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteUser(ctx, id); err != nil {
		log.Error("delete user failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete user commit failed", zap.Error(err))
		return err
	}

	log.Info("user deleted", zap.String("target_user_id", id))
	return nil
}

func groupDepartments(rows []DepartmentRow) map[uuid.UUID][]DepartmentRef {
	out := make(map[uuid.UUID][]DepartmentRef)
	for _, d := range rows {
		out[d.UserID] = append(out[d.UserID], DepartmentRef{ID: d.DepartmentID.String(), Name: d.DepartmentName})
	}
	return out
}

func mapToResponse(r MemberRow, depts []DepartmentRef) UserResponse {
	if depts == nil {
		depts = []DepartmentRef{}
	}
	return UserResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Email:       r.Email,
		UserType:    r.UserType,
		IsVerified:  r.IsVerified,
		IsActivated: r.IsActivated,
		Role:        r.RoleName,
		Departments: depts,
		CreatedAt:   r.CreatedAt,
	}
}
