package controllers

import (
	"context"
	"testing"
	"time"

	"gachi/gachi/config"
	"gachi/gachi/sources/psql/dao"
	"gachi/gachi/sources/psql/models"
	"gachi/gachi/types"
	"gachi/gachi/utils/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuth(t *testing.T) (*AuthController, *dao.UserDAO) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	userDAO := dao.NewUserDAO(db)
	cfg := config.Config{
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		AdminEmails: []string{"admin@example.com"},
	}
	return NewAuthController(userDAO, cfg), userDAO
}

func TestRegisterAndLogin(t *testing.T) {
	ctrl, _ := setupAuth(t)
	ctx := context.Background()

	res, err := ctrl.Register(ctx, types.RegisterRequest{ID: "kim", Email: "kim@example.com", Password: "pw1234"})
	require.NoError(t, err)
	assert.False(t, res.IsAdmin)

	login, err := ctrl.Login(ctx, types.LoginRequest{Email: "kim@example.com", Password: "pw1234"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", login.TokenType)

	email, err := security.ParseAccessToken(login.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "kim@example.com", email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctrl, _ := setupAuth(t)
	ctx := context.Background()

	_, err := ctrl.Register(ctx, types.RegisterRequest{ID: "kim", Email: "kim@example.com", Password: "pw"})
	require.NoError(t, err)

	_, err = ctrl.Register(ctx, types.RegisterRequest{ID: "kim2", Email: "kim@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterAdminAllowlist(t *testing.T) {
	ctrl, _ := setupAuth(t)

	res, err := ctrl.Register(context.Background(), types.RegisterRequest{ID: "adm", Email: "admin@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, res.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl, _ := setupAuth(t)
	ctx := context.Background()

	_, err := ctrl.Register(ctx, types.RegisterRequest{ID: "kim", Email: "kim@example.com", Password: "pw1234"})
	require.NoError(t, err)

	_, err = ctrl.Login(ctx, types.LoginRequest{Email: "kim@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = ctrl.Login(ctx, types.LoginRequest{Email: "nobody@example.com", Password: "pw1234"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	ctrl, _ := setupAuth(t)
	ctx := context.Background()

	_, err := ctrl.Register(ctx, types.RegisterRequest{ID: "kim", Email: "kim@example.com", Password: "old-pw"})
	require.NoError(t, err)

	err = ctrl.ChangePassword(ctx, "kim@example.com", types.PasswordChangeRequest{CurrentPassword: "bad", NewPassword: "new-pw"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = ctrl.ChangePassword(ctx, "kim@example.com", types.PasswordChangeRequest{CurrentPassword: "old-pw", NewPassword: "new-pw"})
	require.NoError(t, err)

	_, err = ctrl.Login(ctx, types.LoginRequest{Email: "kim@example.com", Password: "new-pw"})
	assert.NoError(t, err)
}
