package controllers

import (
	"context"

	"gachi/gachi/sources/psql/dao"
	"gachi/gachi/sources/psql/models"
	"gachi/gachi/types"
)

type AdminController struct {
	userDAO         *dao.UserDAO
	subscriptionDAO *dao.SubscriptionDAO
}

func NewAdminController(userDAO *dao.UserDAO, subscriptionDAO *dao.SubscriptionDAO) *AdminController {
	return &AdminController{userDAO: userDAO, subscriptionDAO: subscriptionDAO}
}

func (c *AdminController) requireAdmin(ctx context.Context, email string) (*models.User, error) {
	admin, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrUserNotFound
	}
	if !admin.IsAdmin {
		return nil, ErrForbidden
	}
	return admin, nil
}

func (c *AdminController) ListUsers(ctx context.Context, adminEmail string) ([]models.User, error) {
	if _, err := c.requireAdmin(ctx, adminEmail); err != nil {
		return nil, err
	}
	return c.userDAO.GetAllUsers(ctx)
}

// UpdatePlan changes a user's plan and opens a fresh subscription period.
func (c *AdminController) UpdatePlan(ctx context.Context, adminEmail string, req types.UpdatePlanRequest) (*models.User, error) {
	if _, err := c.requireAdmin(ctx, adminEmail); err != nil {
		return nil, err
	}

	user, err := c.userDAO.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Plan = req.Plan
	if err := c.userDAO.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	if _, err := c.subscriptionDAO.UpsertPlan(ctx, user.ID, req.Plan); err != nil {
		return nil, err
	}
	return user, nil
}
