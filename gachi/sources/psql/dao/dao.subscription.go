package dao

import (
	"context"
	"errors"
	"time"

	"gachi/gachi/sources/psql/models"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	DB *gorm.DB
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{DB: db}
}

// UpsertPlan records the user's current plan, starting a fresh period.
func (dao *SubscriptionDAO) UpsertPlan(ctx context.Context, userID int, planType string) (*models.Subscription, error) {
	var sub models.Subscription
	err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = models.Subscription{
			UserID:    userID,
			PlanType:  planType,
			StartDate: time.Now().UTC(),
		}
		if err := dao.DB.WithContext(ctx).Create(&sub).Error; err != nil {
			return nil, err
		}
		return &sub, nil
	}
	if err != nil {
		return nil, err
	}
	sub.PlanType = planType
	sub.StartDate = time.Now().UTC()
	sub.EndDate = nil
	if err := dao.DB.WithContext(ctx).Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
