package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"medical-office-api/internal/delivery/dto"
	"medical-office-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	usecase AccountUsecase
	mock    sqlmock.Sqlmock
	redis   *miniredis.Miniredis
	users   *fakeUserRepo
	admins  *fakeAdminRepo
	audit   *fakeAuditService
}

func newAccountFixture(t *testing.T, admins ...entity.Admin) *accountFixture {
	t.Helper()
	db, mock := newTxDB(t)
	tokenStore, mr := newTestTokenStore(t)
	f := &accountFixture{
		mock:   mock,
		redis:  mr,
		users:  newFakeUserRepo(),
		admins: newFakeAdminRepo(admins...),
		audit:  &fakeAuditService{},
	}
	f.usecase = NewAccountUsecase(db, newTestLogger(), f.users, f.admins, f.audit, tokenStore)
	return f
}

func admins(n int) []entity.Admin {
	out := make([]entity.Admin, n)
	for i := range out {
		out[i] = entity.Admin{ID: i + 1, Email: fmt.Sprintf("admin%d@clinic.fr", i+1)}
	}
	return out
}

func TestCreateAdmin_UnderLimit(t *testing.T) {
	f := newAccountFixture(t, admins(2)...)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	admin, err := f.usecase.CreateAdmin(context.Background(), &dto.CreateAdminRequest{Email: "third@clinic.fr", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, "third@clinic.fr", admin.Email)
	assert.Len(t, f.admins.rows, entity.MaxAdmins)
	assert.Equal(t, 1, f.admins.locks)
	assert.Equal(t, []string{entity.AuditActionAdminCreate}, f.audit.actions())
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestCreateAdmin_LimitReached(t *testing.T) {
	f := newAccountFixture(t, admins(entity.MaxAdmins)...)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.usecase.CreateAdmin(context.Background(), &dto.CreateAdminRequest{Email: "fourth@clinic.fr", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAdminLimitReached)
	assert.Len(t, f.admins.rows, entity.MaxAdmins)
	assert.Empty(t, f.audit.entries)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestPromoteUser(t *testing.T) {
	f := newAccountFixture(t, admins(1)...)
	f.users.rows[5] = entity.User{ID: 5, Email: "doc@clinic.fr", Password: "$2a$hash", IsApproved: true}
	f.redis.Set("access_token:user:5:abc", "valid")
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	admin, err := f.usecase.PromoteUser(context.Background(), &dto.PromoteUserRequest{UserID: 5})
	require.NoError(t, err)

	assert.Equal(t, "doc@clinic.fr", admin.Email)
	assert.Equal(t, "$2a$hash", f.admins.rows[admin.ID].Password)
	assert.NotContains(t, f.users.rows, 5)
	assert.False(t, f.redis.Exists("access_token:user:5:abc"))
	assert.Equal(t, []string{entity.AuditActionAdminPromote}, f.audit.actions())
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestPromoteUser_Rejections(t *testing.T) {
	t.Run("unapproved", func(t *testing.T) {
		f := newAccountFixture(t, admins(1)...)
		f.users.rows[5] = entity.User{ID: 5, Email: "doc@clinic.fr"}
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.usecase.PromoteUser(context.Background(), &dto.PromoteUserRequest{UserID: 5})
		assert.ErrorIs(t, err, ErrUserNotApproved)
		assert.Contains(t, f.users.rows, 5)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newAccountFixture(t, admins(1)...)
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.usecase.PromoteUser(context.Background(), &dto.PromoteUserRequest{UserID: 5})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("limit reached", func(t *testing.T) {
		f := newAccountFixture(t, admins(entity.MaxAdmins)...)
		f.users.rows[5] = entity.User{ID: 5, Email: "doc@clinic.fr", IsApproved: true}
		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err := f.usecase.PromoteUser(context.Background(), &dto.PromoteUserRequest{UserID: 5})
		assert.ErrorIs(t, err, ErrAdminLimitReached)
		assert.Contains(t, f.users.rows, 5)
	})
}

func TestDeleteAdmin_KeepsLastAdmin(t *testing.T) {
	f := newAccountFixture(t, admins(1)...)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	err := f.usecase.DeleteAdmin(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.Len(t, f.admins.rows, 1)
}

func TestDeleteAdmin_RevokesTokens(t *testing.T) {
	f := newAccountFixture(t, admins(2)...)
	f.redis.Set("refresh_token:admin:2:xyz", "valid")
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.usecase.DeleteAdmin(context.Background(), 2))
	assert.NotContains(t, f.admins.rows, 2)
	assert.False(t, f.redis.Exists("refresh_token:admin:2:xyz"))
}

func TestUpdateAdmin_NotFound(t *testing.T) {
	f := newAccountFixture(t, admins(1)...)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.usecase.UpdateAdmin(context.Background(), 9, &dto.UpdateAdminRequest{Email: "x@clinic.fr"})
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestApproveUser(t *testing.T) {
	f := newAccountFixture(t)
	f.users.rows[4] = entity.User{ID: 4, Email: "nurse@clinic.fr"}
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.usecase.ApproveUser(context.Background(), 4))
	assert.True(t, f.users.rows[4].IsApproved)

	pending, err := f.usecase.GetPendingUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	assert.ErrorIs(t, f.usecase.ApproveUser(context.Background(), 99), ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	f := newAccountFixture(t)
	f.users.rows[4] = entity.User{ID: 4, Email: "nurse@clinic.fr", IsApproved: true}
	f.redis.Set("access_token:user:4:t1", "valid")
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	require.NoError(t, f.usecase.DeleteUser(context.Background(), 4))
	assert.Empty(t, f.users.rows)
	assert.False(t, f.redis.Exists("access_token:user:4:t1"))
}

func TestSeedAdmin(t *testing.T) {
	f := newAccountFixture(t)

	created, err := f.usecase.SeedAdmin(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, created)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	created, err = f.usecase.SeedAdmin(context.Background(), "root@clinic.fr", "rootpw")
	require.NoError(t, err)
	assert.True(t, created)

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	created, err = f.usecase.SeedAdmin(context.Background(), "root@clinic.fr", "rootpw")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, f.admins.rows, 1)
	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func TestCreateAdmin_BeginFailure(t *testing.T) {
	f := newAccountFixture(t, admins(1)...)
	f.mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := f.usecase.CreateAdmin(context.Background(), &dto.CreateAdminRequest{Email: "second@clinic.fr", Password: "secret1"})
	require.Error(t, err)
	assert.Zero(t, f.admins.locks)
	assert.Empty(t, f.audit.actions())
	assert.NoError(t, f.mock.ExpectationsWereMet())
}
