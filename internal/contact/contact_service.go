package contact

import (
	"context"
	"database/sql"
	"strings"

	contacterrors "go-crm/internal/contact/errors"
	"go-crm/internal/domain"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, organizationID, userID string, req CreateContactRequest) (ContactResponse, error)
	GetAll(ctx context.Context, organizationID string) ([]ContactResponse, error)
	GetByID(ctx context.Context, organizationID, id string) (ContactResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateContactRequest) (ContactResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("contact.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contact.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func contactStatus(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return string(domain.LeadStatusLead), nil
	}
	st, ok := domain.ParseLeadStatus(raw)
	if !ok || !st.Assignable() {
		return "", contacterrors.ErrInvalidContactStatus
	}
	return string(st), nil
}

func (s *service) Create(ctx context.Context, organizationID, userID string, req CreateContactRequest) (ContactResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return ContactResponse{}, apperror.ErrNoActiveOrganization
	}
	creator, err := uuid.Parse(userID)
	if err != nil {
		return ContactResponse{}, apperror.ErrUnauthorized
	}

	status, err := contactStatus(req.LeadStatus)
	if err != nil {
		return ContactResponse{}, err
	}

	c := &Contact{
		ID:             uuid.New(),
		OrganizationID: orgID,
		CreatedBy:      creator,
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		Company:        strings.TrimSpace(req.Company),
		Notes:          req.Notes,
		LeadStatus:     status,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		log.Warn("create contact persist failed", zap.Error(err))
		return ContactResponse{}, mapRepositoryError(err)
	}

	log.Info("create contact success", zap.String("contact_id", c.ID.String()))
	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, organizationID string) ([]ContactResponse, error) {
	contacts, err := s.repo.FindAllByOrganization(ctx, organizationID)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list contacts failed", zap.Error(err))
		return nil, err
	}

	resp := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		resp[i] = mapToResponse(c)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, organizationID, id string) (ContactResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}

	c, err := s.repo.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return ContactResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateContactRequest) (ContactResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return ContactResponse{}, contacterrors.ErrInvalidContactID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ContactResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByIDAndOrganization(ctx, organizationID, id)
	if err != nil {
		return ContactResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		c.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Company != nil {
		c.Company = strings.TrimSpace(*req.Company)
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.LeadStatus != nil {
		status, err := contactStatus(*req.LeadStatus)
		if err != nil {
			return ContactResponse{}, err
		}
		c.LeadStatus = status
	}

	if err := qtx.Update(ctx, c); err != nil {
		log.Warn("update contact failed", zap.String("contact_id", id), zap.Error(err))
		return ContactResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ContactResponse{}, err
	}

	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return contacterrors.ErrInvalidContactID
	}

	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		return mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("delete contact success", zap.String("contact_id", id))
	return nil
}

func mapToResponse(c Contact) ContactResponse {
	return ContactResponse{
		ID:             c.ID.String(),
		OrganizationID: c.OrganizationID.String(),
		CreatedBy:      c.CreatedBy.String(),
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Company:        c.Company,
		Notes:          c.Notes,
		LeadStatus:     c.LeadStatus,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
