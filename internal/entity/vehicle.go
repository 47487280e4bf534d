package entity

import (
	"time"
)

// Vehicle 車両エンティティ
type Vehicle struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Name        string    `json:"name" gorm:"size:128;not null"`
	PlateNumber string    `json:"plate_number" gorm:"size:32"`
	DailyRate   int64     `json:"daily_rate" gorm:"not null;default:0"`
	Status      string    `json:"status" gorm:"size:16;not null;default:active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
