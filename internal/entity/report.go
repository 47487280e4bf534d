package entity

import (
	"time"
)

// DailyReport 日報エンティティ。積込時間は日報単位で記録し、配下の作業記録が共有する
type DailyReport struct {
	ID                    string    `json:"id" gorm:"primaryKey;size:32"`
	WorkDate              time.Time `json:"work_date" gorm:"type:date;not null;index"`
	MorningLoadingMinutes int       `json:"morning_loading_minutes" gorm:"not null;default:0"`
	EveningLoadingMinutes int       `json:"evening_loading_minutes" gorm:"not null;default:0"`
	Weather               string    `json:"weather" gorm:"size:32"`
	Note                  string    `json:"note" gorm:"type:text"`
	CreatedBy             string    `json:"created_by" gorm:"size:32"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	// 関連
	WorkRecords []WorkRecord `json:"work_records,omitempty" gorm:"foreignKey:ReportID"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}

// WorkRecord 作業記録エンティティ。段取り×日の実働1行
type WorkRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	ReportID     string    `json:"report_id" gorm:"size:32;not null;index"`
	AssignmentID string    `json:"assignment_id" gorm:"size:32;not null;index"`
	WorkMinutes  int       `json:"work_minutes" gorm:"not null;default:0"`
	Note         string    `json:"note" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 関連
	Report     *DailyReport `json:"report,omitempty" gorm:"foreignKey:ReportID"`
	Assignment *Assignment  `json:"assignment,omitempty" gorm:"foreignKey:AssignmentID"`
}

func (WorkRecord) TableName() string {
	return "work_records"
}
