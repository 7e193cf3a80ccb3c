package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/auth"
	"fakturo/internal/infrastructure/storage/sqlite"
	"fakturo/internal/infrastructure/storage/sqlite/auth_repo"
)

func newService(t *testing.T) (*auth.Service, auth.UserRepository) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	txm := sqlite.NewTxManager(db)
	users := auth_repo.NewUserRepo(txm)
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig("test-secret"))

	return auth.NewService(users, txm, jwtService), users
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "marko", "correct-horse", "Marko", false)
	require.NoError(t, err)

	session, err := svc.Login(ctx, auth.Credentials{Username: "marko", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	identity, err := svc.ValidateToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "marko", identity.Username)
	assert.Equal(t, session.User.ID.String(), identity.UserID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, users := newService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "marko", "correct-horse", "Marko", false)
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, auth.Credentials{Username: "marko", Password: "wrong"})
	_, unknownUser := svc.Login(ctx, auth.Credentials{Username: "nobody", Password: "whatever"})

	user.Active = false
	require.NoError(t, users.Update(ctx, user))
	_, inactive := svc.Login(ctx, auth.Credentials{Username: "marko", Password: "correct-horse"})

	for _, err := range []error{wrongPassword, unknownUser, inactive} {
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "invalid credentials", appErr.Message)
	}
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateUser(context.Background(), "marko", "short", "Marko", false)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "marko", "correct-horse", "Marko", false)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "marko", "other-password", "Other Marko", false)
	assert.True(t, apperror.IsDuplicateKey(err))
}

func TestEnsureAdmin(t *testing.T) {
	svc, users := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "bootstrap-pw"))

	admin, err := users.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	// second call is a no-op once any user exists
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "different-pw"))
	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.Login(ctx, auth.Credentials{Username: "admin", Password: "bootstrap-pw"})
	assert.NoError(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "marko", "correct-horse", "Marko", false)
	require.NoError(t, err)

	other := auth.NewJWTService(auth.DefaultJWTConfig("other-secret"))
	token, _, err := other.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
