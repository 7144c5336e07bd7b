package models

type Setting struct {
	ID         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int    `json:"user_id" gorm:"not null;uniqueIndex"`
	User       User   `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	MicEnabled bool   `json:"mic_enabled" gorm:"not null;default:true"`
	FontSize   string `json:"font_size" gorm:"type:varchar(20);not null;default:'medium'"`
}
