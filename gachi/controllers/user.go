package controllers

import (
	"context"

	"gachi/gachi/sources/psql/dao"
	"gachi/gachi/sources/psql/models"
	"gachi/gachi/types"
)

type UserController struct {
	userDAO    *dao.UserDAO
	settingDAO *dao.SettingDAO
}

func NewUserController(userDAO *dao.UserDAO, settingDAO *dao.SettingDAO) *UserController {
	return &UserController{userDAO: userDAO, settingDAO: settingDAO}
}

func (c *UserController) GetMe(ctx context.Context, email string) (*models.User, error) {
	user, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (c *UserController) DeleteMe(ctx context.Context, email string) error {
	user, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return c.userDAO.DeleteUser(ctx, user.ID)
}

func (c *UserController) GetSettings(ctx context.Context, email string) (*models.Setting, error) {
	user, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return c.settingDAO.GetOrCreate(ctx, user.ID)
}

func (c *UserController) UpdateSettings(ctx context.Context, email string, req types.UpdateSettingRequest) (*models.Setting, error) {
	setting, err := c.GetSettings(ctx, email)
	if err != nil {
		return nil, err
	}
	if req.MicEnabled != nil {
		setting.MicEnabled = *req.MicEnabled
	}
	if req.FontSize != nil {
		setting.FontSize = *req.FontSize
	}
	if err := c.settingDAO.UpdateSetting(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}
