package lead

import (
	"context"
	"database/sql"
	"strings"

	"go-crm/internal/domain"
	leaderrors "go-crm/internal/lead/errors"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, organizationID, userID string, req CreateLeadRequest) (LeadResponse, error)
	GetAll(ctx context.Context, organizationID, status string) ([]LeadResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (LeadResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateLeadRequest) (LeadResponse, error)
	UpdateStatus(ctx context.Context, organizationID, id string, req UpdateLeadStatusRequest) (LeadResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("lead.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lead.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// assignableStatus returns the normalized status a client may set. Empty means LEAD.
func assignableStatus(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return string(domain.LeadStatusLead), nil
	}
	st, ok := domain.ParseLeadStatus(raw)
	if !ok || !st.Assignable() {
		return "", leaderrors.ErrInvalidLeadStatus
	}
	return string(st), nil
}

func (s *service) Create(ctx context.Context, organizationID, userID string, req CreateLeadRequest) (LeadResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return LeadResponse{}, apperror.ErrNoActiveOrganization
	}
	creator, err := uuid.Parse(userID)
	if err != nil {
		return LeadResponse{}, apperror.ErrUnauthorized
	}

	status, err := assignableStatus(req.LeadStatus)
	if err != nil {
		return LeadResponse{}, err
	}

	l := &Lead{
		ID:             uuid.New(),
		OrganizationID: orgID,
		CreatedBy:      creator,
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		Company:        strings.TrimSpace(req.Company),
		Source:         strings.TrimSpace(req.Source),
		Notes:          req.Notes,
		LeadStatus:     status,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		log.Warn("create lead persist failed", zap.Error(err))
		return LeadResponse{}, mapRepositoryError(err)
	}

	log.Info("create lead success",
		zap.String("lead_id", l.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, organizationID, status string) ([]LeadResponse, error) {
	filter := ""
	if strings.TrimSpace(status) != "" {
		st, ok := domain.ParseLeadStatus(status)
		if !ok {
			return nil, leaderrors.ErrInvalidLeadStatus
		}
		filter = string(st)
	}

	leads, err := s.repo.FindAllByOrganization(ctx, organizationID, filter)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list leads failed", zap.Error(err))
		return nil, err
	}

	resp := make([]LeadResponse, len(leads))
	for i, l := range leads {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (LeadResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeadResponse{}, leaderrors.ErrInvalidLeadID
	}

	l, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return LeadResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateLeadRequest) (LeadResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return LeadResponse{}, leaderrors.ErrInvalidLeadID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update lead begin tx failed", zap.Error(err))
		return LeadResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return LeadResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		l.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		l.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		l.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Company != nil {
		l.Company = strings.TrimSpace(*req.Company)
	}
	if req.Source != nil {
		l.Source = strings.TrimSpace(*req.Source)
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}

	if err := qtx.Update(ctx, l); err != nil {
		log.Warn("update lead failed", zap.String("lead_id", id), zap.Error(err))
		return LeadResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update lead commit failed", zap.Error(err))
		return LeadResponse{}, err
	}

	return mapToResponse(*l), nil
}

func (s *service) UpdateStatus(ctx context.Context, organizationID, id string, req UpdateLeadStatusRequest) (LeadResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return LeadResponse{}, leaderrors.ErrInvalidLeadID
	}

	target, ok := domain.ParseLeadStatus(req.Status)
	if !ok || !target.Assignable() {
		log.Warn("update lead status rejected", zap.String("lead_id", id), zap.String("status", req.Status))
		return LeadResponse{}, leaderrors.ErrInvalidLeadStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update lead status begin tx failed", zap.Error(err))
		return LeadResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return LeadResponse{}, mapRepositoryError(err)
	}
	if domain.LeadStatus(l.LeadStatus) == domain.LeadStatusClosed {
		return LeadResponse{}, leaderrors.ErrLeadClosed
	}

	from := l.LeadStatus
	l.LeadStatus = string(target)
	if err := qtx.Update(ctx, l); err != nil {
		log.Error("update lead status persist failed", zap.Error(err))
		return LeadResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update lead status commit failed", zap.Error(err))
		return LeadResponse{}, err
	}

	log.Info("update lead status success",
		zap.String("lead_id", id),
		zap.String("from", from),
		zap.String("to", l.LeadStatus),
	)
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaderrors.ErrInvalidLeadID
	}

	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("delete lead failed", zap.String("lead_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(l Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID.String(),
		OrganizationID: l.OrganizationID.String(),
		CreatedBy:      l.CreatedBy.String(),
		Name:           l.Name,
		Email:          l.Email,
		Phone:          l.Phone,
		Company:        l.Company,
		Source:         l.Source,
		Notes:          l.Notes,
		LeadStatus:     l.LeadStatus,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
