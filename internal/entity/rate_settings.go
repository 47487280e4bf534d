package entity

import (
	"time"
)

// RateSettings 単価設定エンティティ。未登録でも正常（新規環境）でデフォルト単価を使う
type RateSettings struct {
	ID                  string    `json:"id" gorm:"primaryKey;size:32"`
	LaborDailyRate      int64     `json:"labor_daily_rate" gorm:"not null"`
	StandardWorkMinutes int       `json:"standard_work_minutes" gorm:"not null"`
	UpdatedBy           string    `json:"updated_by" gorm:"size:32"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (RateSettings) TableName() string {
	return "rate_settings"
}
