package auth

import (
	"context"
	"database/sql"
	"strings"
	"time"

	autherrors "go-crm/internal/auth/errors"
	"go-crm/internal/domain"
	"go-crm/internal/messaging/kafka"
	"go-crm/internal/notification"
	"go-crm/internal/security"
	"go-crm/internal/shared/contextutil"
	"go-crm/internal/telemetry"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultAccessTokenTTL = 24 * time.Hour

type Service interface {
	Signup(ctx context.Context, userType domain.UserType, req SignupRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Verify(ctx context.Context, token string) error
	Reverify(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, callerID, userID string, req ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, userID, token string, req ResetPasswordRequest) error
	InviteUser(ctx context.Context, inviterID, organizationID string, req InviteUserRequest) (InviteUserResponse, error)
	SelectOrganization(ctx context.Context, userID, organizationID string) (LoginResponse, error)
	Me(ctx context.Context, userID, activeOrganizationID string) (MeResponse, error)
}

type Config struct {
	AccessTokenTTL time.Duration
}

type service struct {
	db       *sql.DB
	repo     Repository
	tokens   security.TokenService
	notifier notification.Notifier
	outbox   kafka.OutboxRepository
	cfg      Config
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	tokens security.TokenService,
	notifier notification.Notifier,
	outbox kafka.OutboxRepository,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = DefaultAccessTokenTTL
	}
	return &service{
		db:       db,
		repo:     repo,
		tokens:   tokens,
		notifier: notifier,
		outbox:   outbox,
		cfg:      cfg,
		logger:   l,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Signup(ctx context.Context, userType domain.UserType, req SignupRequest) (resp UserResponse, err error) {
	defer func() { telemetry.RecordAuthEvent("signup", err) }()

	log := contextutil.GetLogger(ctx, s.logger)
	email := normalizeEmail(req.Email)
	log.Debug("signup requested", zap.String("user_type", string(userType)))

	if !userType.Valid() {
		return UserResponse{}, autherrors.ErrInvalidUserType
	}

	requested := []string{}
	if userType == domain.UserTypeUser {
		for _, raw := range req.Roles {
			role, ok := domain.ParseRoleName(raw)
			if !ok || !role.SelfServiceRole() {
				return UserResponse{}, autherrors.ErrInvalidRole
			}
			requested = append(requested, string(role))
		}
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return UserResponse{}, autherrors.ErrDuplicateEmail
	} else if !isNotFound(err) {
		log.Error("signup lookup email failed", zap.Error(err))
		return UserResponse{}, err
	}

	if err := security.CheckPasswordStrength(req.Password, email, req.Name); err != nil {
		return UserResponse{}, err
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		log.Error("signup hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	user := &User{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Password:       hashed,
		UserType:       string(userType),
		RequestedRoles: requested,
	}

	token, err := s.issueOneTimeToken(user, security.PurposeVerify)
	if err != nil {
		return UserResponse{}, err
	}
	user.VerificationToken = &token

	if err := s.repo.Create(ctx, user); err != nil {
		log.Error("signup persist user failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := s.notifier.SendVerification(ctx, user.Email, user.Name, token); err != nil {
		log.Error("signup send verification failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return UserResponse{}, notification.ErrEmailDeliveryFailed.WithCause(err)
	}

	log.Info("signup success",
		zap.String("user_id", user.ID.String()),
		zap.String("user_type", user.UserType),
	)
	return mapUserResponse(*user), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (resp LoginResponse, err error) {
	defer func() { telemetry.RecordAuthEvent("login", err) }()

	log := contextutil.GetLogger(ctx, s.logger)

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if isNotFound(err) {
			return LoginResponse{}, autherrors.ErrUserNotFound
		}
		log.Error("login lookup failed", zap.Error(err))
		return LoginResponse{}, err
	}

	if !user.IsVerified {
		return LoginResponse{}, autherrors.ErrNotVerified
	}

	if !security.ComparePassword(user.Password, req.Password) {
		log.Warn("login invalid credentials", zap.String("user_id", user.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	memberships, err := s.repo.ListMemberships(ctx, user.ID.String())
	if err != nil {
		log.Error("login load memberships failed", zap.Error(err))
		return LoginResponse{}, err
	}

	activeOrg := ""
	if len(memberships) == 1 {
		activeOrg = memberships[0].OrganizationID
	}

	resp, err = s.issueAccessToken(user, memberships, activeOrg)
	if err != nil {
		return LoginResponse{}, err
	}

	log.Info("login success",
		zap.String("user_id", user.ID.String()),
		zap.Int("memberships", len(memberships)),
	)
	return resp, nil
}

func (s *service) Verify(ctx context.Context, token string) (err error) {
	defer func() { telemetry.RecordAuthEvent("verify", err) }()

	log := contextutil.GetLogger(ctx, s.logger)

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return err
	}
	if claims.Purpose != security.PurposeVerify {
		return security.ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID())
	if err != nil {
		if isNotFound(err) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	// a consumed or superseded token no longer matches the stored value
	if tokenValue(user.VerificationToken) != token {
		return security.ErrInvalidToken
	}

	if err := s.tokens.CheckAge(claims, security.OneTimeTokenMaxAge); err != nil {
		return err
	}

	user.IsVerified = true
	user.IsActivated = true
	user.VerificationToken = nil

	if err := s.repo.Save(ctx, user); err != nil {
		log.Error("verify persist user failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	log.Info("email verified", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *service) Reverify(ctx context.Context, email string) (err error) {
	defer func() { telemetry.RecordAuthEvent("reverify", err) }()

	log := contextutil.GetLogger(ctx, s.logger)

	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return mapRepositoryError(err)
	}
	if user.IsVerified {
		return autherrors.ErrAlreadyVerified
	}

	token, err := s.issueOneTimeToken(user, security.PurposeVerify)
	if err != nil {
		return err
	}
	user.VerificationToken = &token

	if err := s.repo.Save(ctx, user); err != nil {
		log.Error("reverify persist token failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.notifier.SendVerification(ctx, user.Email, user.Name, token); err != nil {
		log.Error("reverify send verification failed", zap.Error(err))
		return notification.ErrEmailDeliveryFailed.WithCause(err)
	}

	log.Info("verification resent", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *service) SelectOrganization(ctx context.Context, userID, organizationID string) (LoginResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return LoginResponse{}, mapRepositoryError(err)
	}

	memberships, err := s.repo.ListMemberships(ctx, userID)
	if err != nil {
		log.Error("select organization load memberships failed", zap.Error(err))
		return LoginResponse{}, err
	}

	member := false
	for _, m := range memberships {
		if m.OrganizationID == organizationID {
			member = true
			break
		}
	}
	if !member {
		return LoginResponse{}, autherrors.ErrNotOrganizationMember
	}

	resp, err := s.issueAccessToken(user, memberships, organizationID)
	if err != nil {
		return LoginResponse{}, err
	}

	log.Info("organization selected",
		zap.String("user_id", userID),
		zap.String("organization_id", organizationID),
	)
	return resp, nil
}

func (s *service) Me(ctx context.Context, userID, activeOrganizationID string) (MeResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return MeResponse{}, mapRepositoryError(err)
	}

	memberships, err := s.repo.ListMemberships(ctx, userID)
	if err != nil {
		return MeResponse{}, err
	}

	return MeResponse{
		User:           mapUserResponse(*user),
		OrganizationID: activeOrganizationID,
		Organizations:  mapMemberships(memberships),
	}, nil
}

func (s *service) issueOneTimeToken(user *User, purpose security.Purpose) (string, error) {
	token, err := s.tokens.Issue(security.Claims{
		Email:            user.Email,
		Purpose:          purpose,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
	}, security.OneTimeTokenMaxAge)
	if err != nil {
		s.logger.Error("issue one-time token failed", zap.String("purpose", string(purpose)), zap.Error(err))
		return "", autherrors.ErrTokenGenerationFailed
	}
	return token, nil
}

func (s *service) issueAccessToken(user *User, memberships []MembershipRow, activeOrg string) (LoginResponse, error) {
	orgs := make([]domain.Membership, 0, len(memberships))
	roleSet := map[string]bool{}
	roles := []string{}
	for _, m := range memberships {
		orgs = append(orgs, domain.Membership{
			OrganizationID: m.OrganizationID,
			Role:           domain.RoleName(m.RoleName),
		})
		if activeOrg != "" && m.OrganizationID != activeOrg {
			continue
		}
		if !roleSet[m.RoleName] {
			roleSet[m.RoleName] = true
			roles = append(roles, m.RoleName)
		}
	}

	token, err := s.tokens.Issue(security.Claims{
		Email:            user.Email,
		Name:             user.Name,
		UserType:         domain.UserType(user.UserType),
		Purpose:          security.PurposeAccess,
		Roles:            roles,
		Organizations:    orgs,
		OrganizationID:   activeOrg,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID.String()},
	}, s.cfg.AccessTokenTTL)
	if err != nil {
		s.logger.Error("issue access token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		AccessToken:    token,
		TokenType:      "Bearer",
		ExpiresIn:      int64(s.cfg.AccessTokenTTL.Seconds()),
		OrganizationID: activeOrg,
		User:           mapUserResponse(*user),
		Organizations:  mapMemberships(memberships),
	}, nil
}

func mapUserResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		UserType:       u.UserType,
		IsVerified:     u.IsVerified,
		IsActivated:    u.IsActivated,
		RequestedRoles: u.RequestedRoles,
	}
}

func mapMemberships(rows []MembershipRow) []MembershipResponse {
	out := make([]MembershipResponse, len(rows))
	for i, r := range rows {
		out[i] = MembershipResponse{
			OrganizationID:   r.OrganizationID,
			OrganizationName: r.OrganizationName,
			Role:             r.RoleName,
		}
	}
	return out
}
