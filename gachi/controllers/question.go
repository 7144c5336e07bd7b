package controllers

import (
	"context"
	"time"

	"gachi/gachi/services/moderation"
	"gachi/gachi/sources/psql/dao"
	"gachi/gachi/sources/psql/models"
	"gachi/gachi/types"
)

type QuestionController struct {
	userDAO     *dao.UserDAO
	questionDAO *dao.QuestionDAO
}

func NewQuestionController(userDAO *dao.UserDAO, questionDAO *dao.QuestionDAO) *QuestionController {
	return &QuestionController{userDAO: userDAO, questionDAO: questionDAO}
}

func (c *QuestionController) resolveUser(ctx context.Context, email string) (*models.User, error) {
	user, err := c.userDAO.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (c *QuestionController) History(ctx context.Context, email string) ([]models.Question, error) {
	user, err := c.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return c.questionDAO.AllByUser(ctx, user.ID)
}

// Save stores an exchange directly, outside the ask pipeline. The risk flag
// is still computed from the question text at write time.
func (c *QuestionController) Save(ctx context.Context, email string, req types.SaveQuestionRequest) (*models.Question, error) {
	user, err := c.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if !req.ShouldSave() {
		return nil, nil
	}
	return c.questionDAO.CreateQuestion(ctx, user.ID, req.Question, req.Answer,
		moderation.UnsafeInput(req.Question), time.Now().UTC())
}

func (c *QuestionController) DeleteAll(ctx context.Context, email string) (int64, error) {
	user, err := c.resolveUser(ctx, email)
	if err != nil {
		return 0, err
	}
	return c.questionDAO.DeleteByUser(ctx, user.ID)
}

// CountToday counts exchanges since UTC midnight.
func (c *QuestionController) CountToday(ctx context.Context, email string) (int64, error) {
	user, err := c.resolveUser(ctx, email)
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return c.questionDAO.CountSince(ctx, user.ID, midnight)
}
