package user_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-crm/internal/user"
	usererrors "go-crm/internal/user/errors"
	userMock "go-crm/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service user.Service
	repo    *userMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := userMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: user.NewService(db, repo),
		repo:    repo,
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

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.NewString()
	alice, bob := uuid.New(), uuid.New()
	deptID := uuid.New()

	deps := setupServiceTest(t)
	deps.repo.EXPECT().ListMembers(ctx, orgID).Return([]user.MemberRow{
		{ID: alice, Name: "Alice", RoleName: "ADMIN"},
		{ID: bob, Name: "Bob", RoleName: "SALES"},
	}, nil)
	deps.repo.EXPECT().ListDepartments(ctx, orgID, []uuid.UUID{alice, bob}).Return([]user.DepartmentRow{
		{UserID: bob, DepartmentID: deptID, DepartmentName: "Field Sales"},
	}, nil)

	resp, err := deps.service.GetAll(ctx, orgID)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Empty(t, resp[0].Departments)
	assert.NotNil(t, resp[0].Departments)
	require.Len(t, resp[1].Departments, 1)
	assert.Equal(t, "Field Sales", resp[1].Departments[0].Name)
	assert.Equal(t, "SALES", resp[1].Role)
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.NewString()
	target := uuid.New()

	t.Run("member", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).
			Return(&user.MemberRow{ID: target, Name: "Sam", RoleName: "MARKETING"}, nil)
		deps.repo.EXPECT().ListDepartments(ctx, orgID, []uuid.UUID{target}).Return(nil, nil)

		resp, err := deps.service.GetByID(ctx, orgID, target.String())

		require.NoError(t, err)
		assert.Equal(t, "MARKETING", resp.Role)
	})

	t.Run("outside organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, orgID, target.String())

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_ChangeRole(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.NewString()
	callerID := uuid.NewString()
	target := uuid.New()
	roleID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).
			Return(&user.MemberRow{ID: target, RoleName: "SALES"}, nil)
		deps.repo.EXPECT().FindRoleIDByName(ctx, "MARKETING").Return(roleID, nil)
		deps.repo.EXPECT().UpdateMemberRole(ctx, orgID, target.String(), roleID).Return(nil)

		resp, err := deps.service.ChangeRole(ctx, orgID, callerID, target.String(), user.ChangeRoleRequest{Role: "marketing"})

		require.NoError(t, err)
		assert.Equal(t, "MARKETING", resp.Role)
	})

	t.Run("owner role is never assignable", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ChangeRole(ctx, orgID, callerID, target.String(), user.ChangeRoleRequest{Role: "OWNER"})

		assert.ErrorIs(t, err, usererrors.ErrOwnerRoleNotAssignable)
	})

	t.Run("unknown role", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ChangeRole(ctx, orgID, callerID, target.String(), user.ChangeRoleRequest{Role: "JANITOR"})

		assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
	})

	t.Run("own role", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.ChangeRole(ctx, orgID, target.String(), target.String(), user.ChangeRoleRequest{Role: "SALES"})

		assert.ErrorIs(t, err, usererrors.ErrCannotChangeOwnRole)
	})

	t.Run("owner cannot be demoted", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).
			Return(&user.MemberRow{ID: target, RoleName: "OWNER"}, nil)

		_, err := deps.service.ChangeRole(ctx, orgID, callerID, target.String(), user.ChangeRoleRequest{Role: "SALES"})

		assert.ErrorIs(t, err, usererrors.ErrCannotModifyOwner)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.NewString()
	callerID := uuid.NewString()
	target := uuid.New()

	t.Run("memberships, departments and user in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).
			Return(&user.MemberRow{ID: target, RoleName: "SALES"}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		gomock.InOrder(
			deps.repo.EXPECT().DeleteMemberships(ctx, target.String()).Return(nil),
			deps.repo.EXPECT().DeleteUserDepartments(ctx, target.String()).Return(nil),
			deps.repo.EXPECT().DeleteUser(ctx, target.String()).Return(nil),
		)

		err := deps.service.Delete(ctx, orgID, callerID, target.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("self delete", func(t *testing.T) {
		deps := setupServiceTest(t)

		err := deps.service.Delete(ctx, orgID, target.String(), target.String())

		assert.ErrorIs(t, err, usererrors.ErrCannotDeleteSelf)
	})

	t.Run("other organization's user", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, orgID, callerID, target.String())

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("owner cannot be removed", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).
			Return(&user.MemberRow{ID: target, RoleName: "OWNER"}, nil)

		err := deps.service.Delete(ctx, orgID, callerID, target.String())

		assert.ErrorIs(t, err, usererrors.ErrCannotModifyOwner)
	})

	t.Run("failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindMember(ctx, orgID, target.String()).
			Return(&user.MemberRow{ID: target, RoleName: "SALES"}, nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteMemberships(ctx, target.String()).Return(nil)
		deps.repo.EXPECT().DeleteUserDepartments(ctx, target.String()).Return(errors.New("db error"))

		err := deps.service.Delete(ctx, orgID, callerID, target.String())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
