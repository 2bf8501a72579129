package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go-crm/internal/auth"
	autherrors "go-crm/internal/auth/errors"
	authMock "go-crm/internal/auth/mock"
	"go-crm/internal/domain"
	"go-crm/internal/events"
	"go-crm/internal/messaging/kafka"
	kafkaMock "go-crm/internal/messaging/kafka/mock"
	"go-crm/internal/notification"
	notificationMock "go-crm/internal/notification/mock"
	"go-crm/internal/security"
	"go-crm/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const strongPassword = "Gr33n-Falcon!Rides"

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  auth.Service
	repo     *authMock.MockRepository
	notifier *notificationMock.MockNotifier
	outbox   *kafkaMock.MockOutboxRepository
	tokens   security.TokenService
	now      time.Time
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tokens := security.NewTokenService("test-secret", security.WithClock(func() time.Time { return now }))

	repo := authMock.NewMockRepository(ctrl)
	notifier := notificationMock.NewMockNotifier(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := auth.NewService(db, repo, tokens, notifier, outbox, auth.Config{AccessTokenTTL: time.Hour})

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		notifier: notifier,
		outbox:   outbox,
		tokens:   tokens,
		now:      now,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func issue(t *testing.T, tokens security.TokenService, userID string, purpose security.Purpose, createdAt int64) string {
	t.Helper()
	token, err := tokens.Issue(security.Claims{
		Email:            "jane@acme.test",
		Purpose:          purpose,
		CreatedAt:        createdAt,
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
	}, time.Hour)
	require.NoError(t, err)
	return token
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := security.HashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success - user created unverified with verification token", func(t *testing.T) {
		deps := setupServiceTest(t)
		var stored *auth.User

		deps.repo.EXPECT().FindByEmail(ctx, "jane@acme.test").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.False(t, u.IsVerified)
				assert.NotEqual(t, strongPassword, u.Password)
				assert.True(t, security.ComparePassword(u.Password, strongPassword))
				assert.Equal(t, []string{"SALES"}, u.RequestedRoles)
				require.NotNil(t, u.VerificationToken)
				stored = u
				return nil
			})
		deps.notifier.EXPECT().SendVerification(ctx, "jane@acme.test", "Jane", gomock.Any()).
			DoAndReturn(func(ctx context.Context, to, name, token string) error {
				assert.Equal(t, *stored.VerificationToken, token)
				return nil
			})

		resp, err := deps.service.Signup(ctx, domain.UserTypeUser, auth.SignupRequest{
			Name:     "Jane",
			Email:    " Jane@Acme.test ",
			Password: strongPassword,
			Roles:    []string{"SALES"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "jane@acme.test", resp.Email)
		assert.Equal(t, "USER", resp.UserType)
		assert.False(t, resp.IsVerified)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, "jane@acme.test").Return(&auth.User{ID: uuid.New()}, nil)

		_, err := deps.service.Signup(ctx, domain.UserTypeOwner, auth.SignupRequest{Name: "Jane", Email: "jane@acme.test", Password: strongPassword})

		assert.ErrorIs(t, err, autherrors.ErrDuplicateEmail)
	})

	t.Run("weak password stops before persistence", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, "jane@acme.test").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Signup(ctx, domain.UserTypeAdmin, auth.SignupRequest{Name: "Jane", Email: "jane@acme.test", Password: "password"})

		assert.ErrorIs(t, err, security.ErrWeakPassword)
	})

	t.Run("owner role is not self service", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Signup(ctx, domain.UserTypeUser, auth.SignupRequest{
			Name: "Jane", Email: "jane@acme.test", Password: strongPassword, Roles: []string{"OWNER"},
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})

	t.Run("email failure after commit is a 500", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, "jane@acme.test").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.notifier.EXPECT().SendVerification(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("ses down"))

		_, err := deps.service.Signup(ctx, domain.UserTypeOwner, auth.SignupRequest{Name: "Jane", Email: "jane@acme.test", Password: strongPassword})

		assert.ErrorIs(t, err, notification.ErrEmailDeliveryFailed)
		assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
	})
}

func TestAuthService_SignupThenVerify(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	var stored *auth.User
	var mailed string

	deps.repo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, gorm.ErrRecordNotFound)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *auth.User) error {
			stored = u
			return nil
		})
	deps.notifier.EXPECT().SendVerification(ctx, "alice@x.com", "Alice", gomock.Any()).
		DoAndReturn(func(ctx context.Context, to, name, token string) error {
			mailed = token
			return nil
		})

	resp, err := deps.service.Signup(ctx, domain.UserTypeUser, auth.SignupRequest{
		Name:     "Alice",
		Email:    "alice@x.com",
		Password: "Str0ng!Pass",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsVerified)
	require.NotNil(t, stored)
	assert.True(t, security.ComparePassword(stored.Password, "Str0ng!Pass"))

	deps.repo.EXPECT().FindByID(ctx, stored.ID.String()).Return(stored, nil)
	deps.repo.EXPECT().Save(ctx, stored).
		DoAndReturn(func(ctx context.Context, u *auth.User) error {
			assert.True(t, u.IsVerified)
			assert.True(t, u.IsActivated)
			assert.Nil(t, u.VerificationToken)
			return nil
		})

	assert.NoError(t, deps.service.Verify(ctx, mailed))
}

func TestAuthService_PasswordOverBcryptLimit(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	long := strings.Repeat("Aa1!", 20)

	deps.repo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.Signup(ctx, domain.UserTypeOwner, auth.SignupRequest{Name: "Alice", Email: "alice@x.com", Password: long})

	assert.ErrorIs(t, err, security.ErrWeakPassword)
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orgA := uuid.New().String()
	orgB := uuid.New().String()

	verifiedUser := func(t *testing.T) *auth.User {
		return &auth.User{
			ID:          userID,
			Name:        "Jane",
			Email:       "jane@acme.test",
			Password:    hashed(t, strongPassword),
			UserType:    "ADMIN",
			IsVerified:  true,
			IsActivated: true,
		}
	}

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, "nobody@acme.test").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: "nobody@acme.test", Password: strongPassword})

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("unverified regardless of password", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := verifiedUser(t)
		u.IsVerified = false
		deps.repo.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "wrong"})

		assert.ErrorIs(t, err, autherrors.ErrNotVerified)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := verifiedUser(t)
		deps.repo.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{Email: u.Email, Password: "wrong"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("single membership is preselected", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := verifiedUser(t)
		deps.repo.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		deps.repo.EXPECT().ListMemberships(ctx, userID.String()).Return([]auth.MembershipRow{
			{OrganizationID: orgA, OrganizationName: "Acme", RoleName: "ADMIN"},
		}, nil)

		resp, err := deps.service.Login(ctx, auth.LoginRequest{Email: u.Email, Password: strongPassword})

		require.NoError(t, err)
		assert.Equal(t, orgA, resp.OrganizationID)
		assert.Equal(t, "Bearer", resp.TokenType)

		claims, err := deps.tokens.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, security.PurposeAccess, claims.Purpose)
		assert.Equal(t, orgA, claims.OrganizationID)
		assert.Equal(t, userID.String(), claims.UserID())
		assert.Equal(t, []string{"ADMIN"}, claims.Roles)
	})

	t.Run("several memberships leave selection empty", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := verifiedUser(t)
		deps.repo.EXPECT().FindByEmail(ctx, u.Email).Return(u, nil)
		deps.repo.EXPECT().ListMemberships(ctx, userID.String()).Return([]auth.MembershipRow{
			{OrganizationID: orgA, RoleName: "ADMIN"},
			{OrganizationID: orgB, RoleName: "SALES"},
		}, nil)

		resp, err := deps.service.Login(ctx, auth.LoginRequest{Email: u.Email, Password: strongPassword})

		require.NoError(t, err)
		assert.Empty(t, resp.OrganizationID)
		assert.Len(t, resp.Organizations, 2)
	})
}

func TestAuthService_Verify(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success clears the token", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := issue(t, deps.tokens, userID.String(), security.PurposeVerify, 0)
		u := &auth.User{ID: userID, VerificationToken: &token}

		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(u, nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, saved *auth.User) error {
				assert.True(t, saved.IsVerified)
				assert.True(t, saved.IsActivated)
				assert.Nil(t, saved.VerificationToken)
				return nil
			})

		assert.NoError(t, deps.service.Verify(ctx, token))
	})

	t.Run("consumed token is invalid", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := issue(t, deps.tokens, userID.String(), security.PurposeVerify, 0)

		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(&auth.User{ID: userID}, nil)

		assert.ErrorIs(t, deps.service.Verify(ctx, token), security.ErrInvalidToken)
	})

	t.Run("older than an hour by created_at", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := issue(t, deps.tokens, userID.String(), security.PurposeVerify, deps.now.Add(-2*time.Hour).UnixMilli())

		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(&auth.User{ID: userID, VerificationToken: &token}, nil)

		assert.ErrorIs(t, deps.service.Verify(ctx, token), security.ErrTokenExpired)
	})

	t.Run("reset token cannot verify", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := issue(t, deps.tokens, userID.String(), security.PurposeReset, 0)

		assert.ErrorIs(t, deps.service.Verify(ctx, token), security.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.ErrorIs(t, deps.service.Verify(ctx, "not-a-token"), security.ErrInvalidToken)
	})
}

func TestAuthService_Reverify(t *testing.T) {
	ctx := context.Background()

	t.Run("already verified", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, "jane@acme.test").Return(&auth.User{ID: uuid.New(), IsVerified: true}, nil)

		assert.ErrorIs(t, deps.service.Reverify(ctx, "jane@acme.test"), autherrors.ErrAlreadyVerified)
	})

	t.Run("overwrites the stored token and resends", func(t *testing.T) {
		deps := setupServiceTest(t)
		old := "old-token"
		u := &auth.User{ID: uuid.New(), Name: "Jane", Email: "jane@acme.test", VerificationToken: &old}

		deps.repo.EXPECT().FindByEmail(ctx, "jane@acme.test").Return(u, nil)
		deps.repo.EXPECT().Save(ctx, u).Return(nil)
		deps.notifier.EXPECT().SendVerification(ctx, "jane@acme.test", "Jane", gomock.Any()).
			DoAndReturn(func(ctx context.Context, to, name, token string) error {
				assert.NotEqual(t, old, token)
				assert.Equal(t, token, *u.VerificationToken)
				return nil
			})

		assert.NoError(t, deps.service.Reverify(ctx, "jane@acme.test"))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("only for self", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.ChangePassword(ctx, uuid.NewString(), userID.String(), auth.ChangePasswordRequest{OldPassword: "x", NewPassword: strongPassword})

		assert.ErrorIs(t, err, autherrors.ErrForbidden)
	})

	t.Run("wrong old password", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(&auth.User{ID: userID, Password: hashed(t, strongPassword)}, nil)

		err := deps.service.ChangePassword(ctx, userID.String(), userID.String(), auth.ChangePasswordRequest{OldPassword: "nope", NewPassword: "Another-Str0ng!Pass"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		next := "Another-Str0ng!Pass"
		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(&auth.User{ID: userID, Email: "jane@acme.test", Password: hashed(t, strongPassword)}, nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.True(t, security.ComparePassword(u.Password, next))
				return nil
			})

		err := deps.service.ChangePassword(ctx, userID.String(), userID.String(), auth.ChangePasswordRequest{OldPassword: strongPassword, NewPassword: next})

		assert.NoError(t, err)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success clears the reset token", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := issue(t, deps.tokens, userID.String(), security.PurposeReset, 0)
		u := &auth.User{ID: userID, Email: "jane@acme.test", ForgotPasswordToken: &token}

		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(u, nil)
		deps.repo.EXPECT().Save(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, saved *auth.User) error {
				assert.Nil(t, saved.ForgotPasswordToken)
				assert.True(t, security.ComparePassword(saved.Password, strongPassword))
				return nil
			})

		assert.NoError(t, deps.service.ResetPassword(ctx, userID.String(), token, auth.ResetPasswordRequest{Password: strongPassword}))
	})

	t.Run("token for another user", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := issue(t, deps.tokens, uuid.NewString(), security.PurposeReset, 0)

		err := deps.service.ResetPassword(ctx, userID.String(), token, auth.ResetPasswordRequest{Password: strongPassword})

		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("superseded token", func(t *testing.T) {
		deps := setupServiceTest(t)
		token := issue(t, deps.tokens, userID.String(), security.PurposeReset, 0)
		newer := "newer-token"
		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(&auth.User{ID: userID, ForgotPasswordToken: &newer}, nil)

		err := deps.service.ResetPassword(ctx, userID.String(), token, auth.ResetPasswordRequest{Password: strongPassword})

		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and emails a reset token", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := &auth.User{ID: uuid.New(), Name: "Jane", Email: "jane@acme.test"}

		deps.repo.EXPECT().FindByEmail(ctx, "jane@acme.test").Return(u, nil)
		deps.repo.EXPECT().Save(ctx, u).Return(nil)
		deps.notifier.EXPECT().SendPasswordReset(ctx, "jane@acme.test", "Jane", u.ID.String(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, to, name, userID, token string) error {
				claims, err := deps.tokens.Verify(token)
				require.NoError(t, err)
				assert.Equal(t, security.PurposeReset, claims.Purpose)
				assert.Equal(t, token, *u.ForgotPasswordToken)
				return nil
			})

		assert.NoError(t, deps.service.ForgotPassword(ctx, "jane@acme.test"))
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmail(ctx, "nobody@acme.test").Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.ForgotPassword(ctx, "nobody@acme.test"), autherrors.ErrUserNotFound)
	})
}

func TestAuthService_InviteUser(t *testing.T) {
	ctx := context.Background()
	inviterID := uuid.NewString()
	orgID := uuid.NewString()
	deptID := uuid.NewString()
	roleID := uuid.New()

	baseReq := auth.InviteUserRequest{
		Name:         "Sam",
		Email:        "sam@acme.test",
		UserType:     "USER",
		DepartmentID: deptID,
	}

	expectLookups := func(deps *serviceDeps, role string) {
		deps.repo.EXPECT().FindDepartment(ctx, deptID).Return(&auth.DepartmentRef{ID: deptID, OrganizationID: orgID}, nil)
		deps.repo.EXPECT().FindOrganizationName(ctx, orgID).Return("Acme", nil)
		deps.repo.EXPECT().FindRoleIDByName(ctx, role).Return(roleID, nil)
	}

	t.Run("owner is not invitable", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := baseReq
		req.UserType = "OWNER"

		_, err := deps.service.InviteUser(ctx, inviterID, orgID, req)

		assert.ErrorIs(t, err, autherrors.ErrInvalidUserType)
	})

	t.Run("department not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindDepartment(ctx, deptID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.InviteUser(ctx, inviterID, orgID, baseReq)

		assert.ErrorIs(t, err, autherrors.ErrDepartmentNotFound)
	})

	t.Run("department of another organization writes nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindDepartment(ctx, deptID).Return(&auth.DepartmentRef{ID: deptID, OrganizationID: uuid.NewString()}, nil)

		_, err := deps.service.InviteUser(ctx, inviterID, orgID, baseReq)

		assert.ErrorIs(t, err, autherrors.ErrDepartmentOrgMismatch)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("new user gets one email with a generated password", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectLookups(deps, "SALES")
		deps.repo.EXPECT().FindByEmail(ctx, "sam@acme.test").Return(nil, gorm.ErrRecordNotFound)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		var created *auth.User
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u *auth.User) error {
				assert.True(t, u.IsVerified)
				assert.True(t, u.IsActivated)
				assert.Equal(t, "USER", u.UserType)
				created = u
				return nil
			})
		deps.repo.EXPECT().AddToDepartment(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().AddMembership(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, m *auth.UserOrganizationRole) error {
				assert.Equal(t, roleID, m.RoleID)
				assert.Equal(t, orgID, m.OrganizationID.String())
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.UserInvitedTopic, e.Topic)
				assert.Equal(t, events.UserInvitedEventType, e.EventType)
				assert.NotContains(t, string(e.Payload), "password")
				return nil
			})
		deps.notifier.EXPECT().SendInviteNewUser(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, invite notification.InviteNewUser) error {
				assert.Len(t, invite.Password, security.GeneratedPasswordLength)
				assert.True(t, security.ComparePassword(created.Password, invite.Password))
				assert.Equal(t, "Acme", invite.OrganizationName)
				return nil
			}).Times(1)

		resp, err := deps.service.InviteUser(ctx, inviterID, orgID, baseReq)

		require.NoError(t, err)
		assert.False(t, resp.ExistingUser)
		assert.Equal(t, "SALES", resp.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("existing user joins department and organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := baseReq
		req.UserType = "ADMIN"
		existing := &auth.User{ID: uuid.New(), Name: "Sam", Email: "sam@acme.test"}

		expectLookups(deps, "ADMIN")
		deps.repo.EXPECT().FindByEmail(ctx, "sam@acme.test").Return(existing, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().AddToDepartment(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().HasMembership(ctx, existing.ID.String(), orgID).Return(false, nil)
		deps.repo.EXPECT().AddMembership(ctx, gomock.Any()).Return(nil)
		deps.notifier.EXPECT().SendInviteExistingUser(ctx, "sam@acme.test", "Sam", "Acme").Return(nil)

		resp, err := deps.service.InviteUser(ctx, inviterID, orgID, req)

		require.NoError(t, err)
		assert.True(t, resp.ExistingUser)
		assert.Equal(t, existing.ID.String(), resp.UserID)
	})

	t.Run("existing member keeps current membership", func(t *testing.T) {
		deps := setupServiceTest(t)
		existing := &auth.User{ID: uuid.New(), Name: "Sam", Email: "sam@acme.test"}

		expectLookups(deps, "SALES")
		deps.repo.EXPECT().FindByEmail(ctx, "sam@acme.test").Return(existing, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().AddToDepartment(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().HasMembership(ctx, existing.ID.String(), orgID).Return(true, nil)
		deps.notifier.EXPECT().SendInviteExistingUser(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.InviteUser(ctx, inviterID, orgID, baseReq)

		assert.NoError(t, err)
	})

	t.Run("membership failure rolls back and sends nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectLookups(deps, "SALES")
		deps.repo.EXPECT().FindByEmail(ctx, "sam@acme.test").Return(nil, gorm.ErrRecordNotFound)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().AddToDepartment(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().AddMembership(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.InviteUser(ctx, inviterID, orgID, baseReq)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("owner role cannot be granted", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := baseReq
		req.Role = "OWNER"

		_, err := deps.service.InviteUser(ctx, inviterID, orgID, req)

		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})
}

func TestAuthService_SelectOrganization(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orgID := uuid.NewString()

	t.Run("non member", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(&auth.User{ID: userID}, nil)
		deps.repo.EXPECT().ListMemberships(ctx, userID.String()).Return(nil, nil)

		_, err := deps.service.SelectOrganization(ctx, userID.String(), orgID)

		assert.ErrorIs(t, err, autherrors.ErrNotOrganizationMember)
	})

	t.Run("reissues the token for the organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, userID.String()).Return(&auth.User{ID: userID, UserType: "USER"}, nil)
		deps.repo.EXPECT().ListMemberships(ctx, userID.String()).Return([]auth.MembershipRow{
			{OrganizationID: uuid.NewString(), RoleName: "ADMIN"},
			{OrganizationID: orgID, RoleName: "MARKETING"},
		}, nil)

		resp, err := deps.service.SelectOrganization(ctx, userID.String(), orgID)

		require.NoError(t, err)
		claims, err := deps.tokens.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, orgID, claims.OrganizationID)
		assert.Equal(t, []string{"MARKETING"}, claims.Roles)
		assert.True(t, claims.HasOrganization(orgID))
	})
}
