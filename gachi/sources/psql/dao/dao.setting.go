package dao

import (
	"context"
	"errors"

	"gachi/gachi/sources/psql/models"

	"gorm.io/gorm"
)

type SettingDAO struct {
	DB *gorm.DB
}

func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{DB: db}
}

// GetOrCreate returns the user's settings row, creating the defaults on first use.
func (dao *SettingDAO) GetOrCreate(ctx context.Context, userID int) (*models.Setting, error) {
	var setting models.Setting
	err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{UserID: userID, MicEnabled: true, FontSize: "medium"}
		if err := dao.DB.WithContext(ctx).Create(&setting).Error; err != nil {
			return nil, err
		}
		return &setting, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (dao *SettingDAO) UpdateSetting(ctx context.Context, setting *models.Setting) error {
	return dao.DB.WithContext(ctx).Save(setting).Error
}
