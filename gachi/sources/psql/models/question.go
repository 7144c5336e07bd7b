package models

import (
	"time"

	"github.com/google/uuid"
)

// Question is one persisted question/answer exchange. Rows are immutable
// once created; the only mutation path is the owner's bulk delete.
type Question struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    int       `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Question  string    `json:"question" gorm:"type:text;not null"`
	Answer    string    `json:"answer" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	IsRisky   bool      `json:"is_risky" gorm:"not null;default:false"`
}
