package entity

import (
	"time"
)

// Quotation 見積エンティティ。案件に紐付かない見積も存在する
type Quotation struct {
	ID           string     `json:"id" gorm:"primaryKey;size:32"`
	ProjectID    *string    `json:"project_id" gorm:"size:32;index"`
	CustomerName string     `json:"customer_name" gorm:"size:128"`
	Title        string     `json:"title" gorm:"size:256;not null"`
	Total        int64      `json:"total" gorm:"not null;default:0"`
	Status       string     `json:"status" gorm:"size:16;not null;default:draft"`
	IssueDate    *time.Time `json:"issue_date" gorm:"type:date"`
	ValidUntil   *time.Time `json:"valid_until" gorm:"type:date"`
	Note         string     `json:"note" gorm:"type:text"`
	CreatedBy    string     `json:"created_by" gorm:"size:32"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Quotation) TableName() string {
	return "quotations"
}

// QuotationStatus 見積状態
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusAccepted = "accepted"
	QuotationStatusDeclined = "declined"
)
