package models

import "time"

type Subscription struct {
	ID        int        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int        `json:"user_id" gorm:"not null;uniqueIndex"`
	User      User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	PlanType  string     `json:"plan_type" gorm:"type:varchar(50);not null;default:'basic'"`
	StartDate time.Time  `json:"start_date" gorm:"not null;default:CURRENT_TIMESTAMP"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}
