package dao

import (
	"context"
	"time"

	"gachi/gachi/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionDAO struct {
	DB *gorm.DB
}

func NewQuestionDAO(db *gorm.DB) *QuestionDAO {
	return &QuestionDAO{DB: db}
}

// RecentByUser returns up to limit exchanges, most recent first.
func (dao *QuestionDAO) RecentByUser(ctx context.Context, userID, limit int) ([]models.Question, error) {
	var questions []models.Question
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (dao *QuestionDAO) AllByUser(ctx context.Context, userID int) ([]models.Question, error) {
	var questions []models.Question
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (dao *QuestionDAO) CreateQuestion(ctx context.Context, userID int, question, answer string, isRisky bool, at time.Time) (*models.Question, error) {
	q := models.Question{
		ID:        uuid.New(),
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		Timestamp: at,
		IsRisky:   isRisky,
	}
	if err := dao.DB.WithContext(ctx).Create(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// DeleteByUser removes the user's whole history and reports how many rows went.
func (dao *QuestionDAO) DeleteByUser(ctx context.Context, userID int) (int64, error) {
	res := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Question{})
	return res.RowsAffected, res.Error
}

// CountSince counts the user's exchanges created at or after the given instant.
func (dao *QuestionDAO) CountSince(ctx context.Context, userID int, since time.Time) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.Question{}).
		Where("user_id = ? AND timestamp >= ?", userID, since).
		Count(&count).Error
	return count, err
}
