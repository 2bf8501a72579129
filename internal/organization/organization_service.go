package organization

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-crm/internal/domain"
	organizationerrors "go-crm/internal/organization/errors"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateOrganizationRequest) (*OrganizationResponse, error)
	ListMine(ctx context.Context, userID string) ([]OrganizationResponse, error)
	GetByID(ctx context.Context, userID, id string) (*OrganizationResponse, error)
	Update(ctx context.Context, id string, req UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateOrganizationRequest) (*OrganizationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create organization begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	org := &Organization{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		City:    strings.TrimSpace(req.City),
		Country: strings.TrimSpace(req.Country),
		Website: strings.TrimSpace(req.Website),
		OwnerID: ownerUUID,
	}
	if err := qtx.Create(ctx, org); err != nil {
		log.Warn("create organization persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	roleID, err := qtx.FindRoleIDByName(ctx, string(domain.RoleOwner))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organizationerrors.ErrOwnerRoleMissing
		}
		log.Error("create organization lookup owner role failed", zap.Error(err))
		return nil, err
	}

	if err := qtx.AddMembership(ctx, &Membership{
		ID:             uuid.New(),
		UserID:         ownerUUID,
		OrganizationID: org.ID,
		RoleID:         roleID,
	}); err != nil {
		log.Error("create organization add owner membership failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("create organization commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("organization created", zap.String("organization_id", org.ID.String()))
	resp := mapToResponse(org, string(domain.RoleOwner))
	return &resp, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]OrganizationResponse, error) {
	rows, err := s.repo.ListByMember(ctx, userID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list organizations failed", zap.Error(err))
		return nil, err
	}

	out := make([]OrganizationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, mapToResponse(&rows[i].Organization, rows[i].RoleName))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (*OrganizationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, organizationerrors.ErrInvalidOrganizationID
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	role, err := s.repo.FindMemberRole(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organizationerrors.ErrNotOrganizationMember
		}
		return nil, err
	}

	resp := mapToResponse(org, role)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return nil, organizationerrors.ErrInvalidOrganizationID
	}

	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if req.Name != nil {
		org.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		org.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		org.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		org.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		org.City = strings.TrimSpace(*req.City)
	}
	if req.Country != nil {
		org.Country = strings.TrimSpace(*req.Country)
	}
	if req.Website != nil {
		org.Website = strings.TrimSpace(*req.Website)
	}

	if err := s.repo.Update(ctx, org); err != nil {
		log.Warn("update organization failed", zap.String("organization_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := mapToResponse(org, "")
	return &resp, nil
}

// Delete removes the organization and everything scoped to it in one transaction.
func (s *service) Delete(ctx context.Context, userID, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return organizationerrors.ErrInvalidOrganizationID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	role, err := s.repo.FindMemberRole(ctx, id, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if role != string(domain.RoleOwner) {
		return organizationerrors.ErrNotOrganizationOwner
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("delete organization begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	departmentIDs, err := qtx.ListDepartmentIDs(ctx, id)
	if err != nil {
		log.Error("delete organization list departments failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteUserDepartments(ctx, departmentIDs); err != nil {
		log.Error("delete organization user departments failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteDepartments(ctx, id); err != nil {
		log.Error("delete organization departments failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteTenantData(ctx, id); err != nil {
		log.Error("delete organization tenant data failed", zap.Error(err))
		return err
	}
	if err := qtx.DeleteMemberships(ctx, id); err != nil {
		log.Error("delete organization memberships failed", zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("delete organization commit failed", zap.Error(err))
		return err
	}

	log.Info("organization deleted",
		zap.String("organization_id", id),
		zap.Int("departments", len(departmentIDs)),
	)
	return nil
}

func mapToResponse(org *Organization, role string) OrganizationResponse {
	return OrganizationResponse{
		ID:        org.ID.String(),
		Name:      org.Name,
		Email:     org.Email,
		Phone:     org.Phone,
		Address:   org.Address,
		City:      org.City,
		Country:   org.Country,
		Website:   org.Website,
		OwnerID:   org.OwnerID.String(),
		Role:      role,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
