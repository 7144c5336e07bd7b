package models

import "time"

type User struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	IDName    string    `json:"id_name" gorm:"type:varchar(255);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null;default:false"`
	Plan      string    `json:"plan" gorm:"type:varchar(50);not null;default:'free'"`
}
