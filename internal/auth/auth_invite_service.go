package auth

import (
	"context"
	"strings"
	"time"

	autherrors "go-crm/internal/auth/errors"
	"go-crm/internal/domain"
	"go-crm/internal/events"
	"go-crm/internal/messaging/kafka"
	"go-crm/internal/notification"
	"go-crm/internal/security"
	"go-crm/internal/shared/contextutil"
	"go-crm/internal/telemetry"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// inviteRole resolves the membership role for an invite. OWNER is never granted.
func inviteRole(userType domain.UserType, requested string) (domain.RoleName, error) {
	if strings.TrimSpace(requested) == "" {
		return domain.DefaultRoleFor(userType), nil
	}
	role, ok := domain.ParseRoleName(requested)
	if !ok || role == domain.RoleOwner {
		return "", autherrors.ErrInvalidRole
	}
	return role, nil
}

func (s *service) InviteUser(
	ctx context.Context,
	inviterID, organizationID string,
	req InviteUserRequest,
) (resp InviteUserResponse, err error) {
	defer func() { telemetry.RecordAuthEvent("invite", err) }()

	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	email := normalizeEmail(req.Email)

	log.Debug("invite user requested",
		zap.String("request_id", rid),
		zap.String("organization_id", organizationID),
		zap.String("department_id", req.DepartmentID),
		zap.String("user_type", req.UserType),
	)

	userType, ok := domain.ParseUserType(req.UserType)
	if !ok || userType == domain.UserTypeOwner {
		return InviteUserResponse{}, autherrors.ErrInvalidUserType
	}

	role, err := inviteRole(userType, req.Role)
	if err != nil {
		return InviteUserResponse{}, err
	}

	dept, err := s.repo.FindDepartment(ctx, req.DepartmentID)
	if err != nil {
		if isNotFound(err) {
			return InviteUserResponse{}, autherrors.ErrDepartmentNotFound
		}
		log.Error("invite user load department failed", zap.Error(err))
		return InviteUserResponse{}, err
	}
	if dept.OrganizationID != organizationID {
		log.Warn("invite user department belongs to another organization",
			zap.String("organization_id", organizationID),
			zap.String("department_id", req.DepartmentID),
		)
		return InviteUserResponse{}, autherrors.ErrDepartmentOrgMismatch
	}

	orgName, err := s.repo.FindOrganizationName(ctx, organizationID)
	if err != nil {
		if isNotFound(err) {
			return InviteUserResponse{}, autherrors.ErrOrganizationNotFound
		}
		return InviteUserResponse{}, err
	}

	roleID, err := s.repo.FindRoleIDByName(ctx, string(role))
	if err != nil {
		log.Error("invite user resolve role failed", zap.String("role", string(role)), zap.Error(err))
		return InviteUserResponse{}, err
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return s.inviteExistingUser(ctx, existing, organizationID, orgName, dept, role, roleID)
	case isNotFound(err):
		return s.inviteNewUser(ctx, inviterID, organizationID, orgName, dept, userType, role, roleID, req)
	default:
		log.Error("invite user lookup email failed", zap.Error(err))
		return InviteUserResponse{}, err
	}
}

func (s *service) inviteExistingUser(
	ctx context.Context,
	user *User,
	organizationID, orgName string,
	dept *DepartmentRef,
	role domain.RoleName,
	roleID uuid.UUID,
) (InviteUserResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("invite existing user begin tx failed", zap.Error(err))
		return InviteUserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.AddToDepartment(ctx, &UserDepartment{
		ID:           uuid.New(),
		UserID:       user.ID,
		DepartmentID: uuid.MustParse(dept.ID),
	}); err != nil {
		log.Error("invite existing user add department failed", zap.Error(err))
		return InviteUserResponse{}, err
	}

	member, err := qtx.HasMembership(ctx, user.ID.String(), organizationID)
	if err != nil {
		return InviteUserResponse{}, err
	}
	if !member {
		if err := qtx.AddMembership(ctx, &UserOrganizationRole{
			ID:             uuid.New(),
			UserID:         user.ID,
			OrganizationID: uuid.MustParse(organizationID),
			RoleID:         roleID,
		}); err != nil {
			log.Error("invite existing user add membership failed", zap.Error(err))
			return InviteUserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("invite existing user commit failed", zap.Error(err))
		return InviteUserResponse{}, err
	}

	if err := s.notifier.SendInviteExistingUser(ctx, user.Email, user.Name, orgName); err != nil {
		log.Error("invite existing user send email failed", zap.Error(err))
		return InviteUserResponse{}, notification.ErrEmailDeliveryFailed.WithCause(err)
	}

	log.Info("existing user invited",
		zap.String("user_id", user.ID.String()),
		zap.String("organization_id", organizationID),
		zap.Bool("new_membership", !member),
	)
	return InviteUserResponse{
		UserID:         user.ID.String(),
		Email:          user.Email,
		OrganizationID: organizationID,
		DepartmentID:   dept.ID,
		Role:           string(role),
		ExistingUser:   true,
	}, nil
}

func (s *service) inviteNewUser(
	ctx context.Context,
	inviterID, organizationID, orgName string,
	dept *DepartmentRef,
	userType domain.UserType,
	role domain.RoleName,
	roleID uuid.UUID,
	req InviteUserRequest,
) (InviteUserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	password, err := security.GeneratePassword(security.GeneratedPasswordLength)
	if err != nil {
		log.Error("invite new user generate password failed", zap.Error(err))
		return InviteUserResponse{}, err
	}
	hashed, err := security.HashPassword(password)
	if err != nil {
		return InviteUserResponse{}, err
	}

	user := &User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Email:          normalizeEmail(req.Email),
		Password:       hashed,
		UserType:       string(userType),
		IsVerified:     true,
		IsActivated:    true,
		RequestedRoles: []string{},
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("invite new user begin tx failed", zap.Error(err))
		return InviteUserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, user); err != nil {
		log.Error("invite new user persist failed", zap.Error(err))
		return InviteUserResponse{}, mapRepositoryError(err)
	}

	if err := qtx.AddToDepartment(ctx, &UserDepartment{
		ID:           uuid.New(),
		UserID:       user.ID,
		DepartmentID: uuid.MustParse(dept.ID),
	}); err != nil {
		log.Error("invite new user add department failed", zap.Error(err))
		return InviteUserResponse{}, err
	}

	if err := qtx.AddMembership(ctx, &UserOrganizationRole{
		ID:             uuid.New(),
		UserID:         user.ID,
		OrganizationID: uuid.MustParse(organizationID),
		RoleID:         roleID,
	}); err != nil {
		log.Error("invite new user add membership failed", zap.Error(err))
		return InviteUserResponse{}, err
	}

	if s.outbox != nil {
		event := events.UserInvitedEvent{
			EventType:      events.UserInvitedEventType,
			RequestID:      rid,
			UserID:         user.ID.String(),
			InvitedBy:      inviterID,
			OrganizationID: organizationID,
			DepartmentID:   dept.ID,
			UserType:       string(userType),
			Role:           string(role),
			OccurredAt:     time.Now().UTC(),
		}
		outboxEvent, err := kafka.NewEvent(rid, "user", user.ID.String(), event.EventType, events.UserInvitedTopic, event)
		if err != nil {
			log.Error("encode user event failed", zap.Error(err))
			return InviteUserResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			log.Error("invite new user outbox persist failed", zap.Error(err))
			return InviteUserResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("invite new user commit failed", zap.Error(err))
		return InviteUserResponse{}, err
	}

	if err := s.notifier.SendInviteNewUser(ctx, notification.InviteNewUser{
		To:               user.Email,
		Name:             user.Name,
		OrganizationName: orgName,
		Password:         password,
	}); err != nil {
		log.Error("invite new user send email failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return InviteUserResponse{}, notification.ErrEmailDeliveryFailed.WithCause(err)
	}

	log.Info("new user invited",
		zap.String("request_id", rid),
		zap.String("user_id", user.ID.String()),
		zap.String("organization_id", organizationID),
	)
	return InviteUserResponse{
		UserID:         user.ID.String(),
		Email:          user.Email,
		OrganizationID: organizationID,
		DepartmentID:   dept.ID,
		Role:           string(role),
	}, nil
}
