package organization_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-crm/internal/organization"
	organizationerrors "go-crm/internal/organization/errors"
	orgMock "go-crm/internal/organization/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service organization.Service
	repo    *orgMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := orgMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: organization.NewService(db, repo),
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

func TestOrganizationService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	roleID := uuid.New()

	t.Run("success - org and owner membership in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		var created *organization.Organization
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, o *organization.Organization) error {
				assert.Equal(t, "Acme", o.Name)
				assert.Equal(t, "hq@acme.test", o.Email)
				assert.Equal(t, ownerID, o.OwnerID)
				created = o
				return nil
			})
		deps.repo.EXPECT().FindRoleIDByName(ctx, "OWNER").Return(roleID, nil)
		deps.repo.EXPECT().AddMembership(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, m *organization.Membership) error {
				assert.Equal(t, ownerID, m.UserID)
				assert.Equal(t, created.ID, m.OrganizationID)
				assert.Equal(t, roleID, m.RoleID)
				return nil
			})

		resp, err := deps.service.Create(ctx, ownerID.String(), organization.CreateOrganizationRequest{
			Name:  " Acme ",
			Email: "HQ@acme.test",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme", resp.Name)
		assert.Equal(t, "OWNER", resp.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_organizations_name"})

		resp, err := deps.service.Create(ctx, ownerID.String(), organization.CreateOrganizationRequest{Name: "Acme"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, organizationerrors.ErrOrganizationAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("membership failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().FindRoleIDByName(ctx, "OWNER").Return(roleID, nil)
		deps.repo.EXPECT().AddMembership(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := deps.service.Create(ctx, ownerID.String(), organization.CreateOrganizationRequest{Name: "Acme"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("role catalog missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().FindRoleIDByName(ctx, "OWNER").Return(uuid.Nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, ownerID.String(), organization.CreateOrganizationRequest{Name: "Acme"})

		assert.ErrorIs(t, err, organizationerrors.ErrOwnerRoleMissing)
	})
}

func TestOrganizationService_ListMine(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	userID := uuid.NewString()

	deps.repo.EXPECT().ListByMember(ctx, userID).Return([]organization.OrganizationWithRole{
		{Organization: organization.Organization{ID: uuid.New(), Name: "Acme"}, RoleName: "OWNER"},
		{Organization: organization.Organization{ID: uuid.New(), Name: "Globex"}, RoleName: "SALES"},
	}, nil)

	resp, err := deps.service.ListMine(ctx, userID)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "OWNER", resp[0].Role)
	assert.Equal(t, "Globex", resp[1].Name)
	assert.Equal(t, "SALES", resp[1].Role)
}

func TestOrganizationService_GetByID(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userID := uuid.NewString()

	t.Run("member sees organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID, Name: "Acme"}, nil)
		deps.repo.EXPECT().FindMemberRole(ctx, orgID.String(), userID).Return("ADMIN", nil)

		resp, err := deps.service.GetByID(ctx, userID, orgID.String())

		require.NoError(t, err)
		assert.Equal(t, "ADMIN", resp.Role)
	})

	t.Run("non member is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID}, nil)
		deps.repo.EXPECT().FindMemberRole(ctx, orgID.String(), userID).Return("", gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, userID, orgID.String())

		assert.ErrorIs(t, err, organizationerrors.ErrNotOrganizationMember)
	})

	t.Run("unknown organization", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, userID, orgID.String())

		assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, userID, "not-a-uuid")

		assert.ErrorIs(t, err, organizationerrors.ErrInvalidOrganizationID)
	})
}

func TestOrganizationService_Update(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("only provided fields change", func(t *testing.T) {
		deps := setupServiceTest(t)
		name := "Acme Global"
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).
			Return(&organization.Organization{ID: orgID, Name: "Acme", City: "Jakarta"}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, o *organization.Organization) error {
				assert.Equal(t, "Acme Global", o.Name)
				assert.Equal(t, "Jakarta", o.City)
				return nil
			})

		resp, err := deps.service.Update(ctx, orgID.String(), organization.UpdateOrganizationRequest{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, "Acme Global", resp.Name)
	})

	t.Run("rename onto an existing name", func(t *testing.T) {
		deps := setupServiceTest(t)
		name := "Globex"
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID}, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_organizations_name"})

		_, err := deps.service.Update(ctx, orgID.String(), organization.UpdateOrganizationRequest{Name: &name})

		assert.ErrorIs(t, err, organizationerrors.ErrOrganizationAlreadyExists)
	})
}

func TestOrganizationService_Delete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	userID := uuid.NewString()

	t.Run("owner cascades in one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		deptIDs := []uuid.UUID{uuid.New(), uuid.New()}

		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID}, nil)
		deps.repo.EXPECT().FindMemberRole(ctx, orgID.String(), userID).Return("OWNER", nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		gomock.InOrder(
			deps.repo.EXPECT().ListDepartmentIDs(ctx, orgID.String()).Return(deptIDs, nil),
			deps.repo.EXPECT().DeleteUserDepartments(ctx, deptIDs).Return(nil),
			deps.repo.EXPECT().DeleteDepartments(ctx, orgID.String()).Return(nil),
			deps.repo.EXPECT().DeleteTenantData(ctx, orgID.String()).Return(nil),
			deps.repo.EXPECT().DeleteMemberships(ctx, orgID.String()).Return(nil),
			deps.repo.EXPECT().Delete(ctx, orgID.String()).Return(nil),
		)

		err := deps.service.Delete(ctx, userID, orgID.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("admin role cannot delete", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID}, nil)
		deps.repo.EXPECT().FindMemberRole(ctx, orgID.String(), userID).Return("ADMIN", nil)

		err := deps.service.Delete(ctx, userID, orgID.String())

		assert.ErrorIs(t, err, organizationerrors.ErrNotOrganizationOwner)
	})

	t.Run("non member cannot delete", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID}, nil)
		deps.repo.EXPECT().FindMemberRole(ctx, orgID.String(), userID).Return("", gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, userID, orgID.String())

		assert.ErrorIs(t, err, organizationerrors.ErrNotOrganizationOwner)
	})

	t.Run("failure midway rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID}, nil)
		deps.repo.EXPECT().FindMemberRole(ctx, orgID.String(), userID).Return("OWNER", nil)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ListDepartmentIDs(ctx, orgID.String()).Return(nil, nil)
		deps.repo.EXPECT().DeleteUserDepartments(ctx, gomock.Nil()).Return(nil)
		deps.repo.EXPECT().DeleteDepartments(ctx, orgID.String()).Return(errors.New("fk violation"))

		err := deps.service.Delete(ctx, userID, orgID.String())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
