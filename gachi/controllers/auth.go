package controllers

import (
	"context"

	"gachi/gachi/config"
	"gachi/gachi/sources/psql/dao"
	"gachi/gachi/sources/psql/models"
	"gachi/gachi/types"
	"gachi/gachi/utils/security"
)

type AuthController struct {
	userDAO *dao.UserDAO
	cfg     config.Config
}

func NewAuthController(userDAO *dao.UserDAO, cfg config.Config) *AuthController {
	return &AuthController{
		userDAO: userDAO,
		cfg:     cfg,
	}
}

type RegisterResult struct {
	UserID  int  `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
}

func (c *AuthController) Register(ctx context.Context, req types.RegisterRequest) (*RegisterResult, error) {
	existing, err := c.userDAO.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		IDName:   req.ID,
		Email:    req.Email,
		Password: hashed,
		IsAdmin:  c.cfg.IsAdminEmail(req.Email),
		Plan:     "free",
	}
	if err := c.userDAO.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	return &RegisterResult{UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	IsAdmin     bool   `json:"is_admin"`
}

func (c *AuthController) Login(ctx context.Context, req types.LoginRequest) (*LoginResult, error) {
	user, err := c.userDAO.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !security.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := security.CreateAccessToken(user.Email, c.cfg.JWTSecret, c.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.ID,
		IsAdmin:     user.IsAdmin,
	}, nil
}

func (c *AuthController) ChangePassword(ctx context.Context, email string, req types.PasswordChangeRequest) error {
	user, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !security.VerifyPassword(req.CurrentPassword, user.Password) {
		return ErrWrongPassword
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return c.userDAO.UpdateUser(ctx, user)
}
