package entity

import (
	"time"
)

// BillingRecord 請求エンティティ。案件の売上はこの合計で認識する
type BillingRecord struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	ProjectID   string     `json:"project_id" gorm:"size:32;not null;index"`
	QuotationID *string    `json:"quotation_id" gorm:"size:32"`
	Title       string     `json:"title" gorm:"size:256"`
	Total       int64      `json:"total" gorm:"not null;default:0"`
	Status      string     `json:"status" gorm:"size:16;not null;default:unpaid"`
	BillingDate *time.Time `json:"billing_date" gorm:"type:date"`
	DueDate     *time.Time `json:"due_date" gorm:"type:date"`
	PaidAt      *time.Time `json:"paid_at"`
	CreatedBy   string     `json:"created_by" gorm:"size:32"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (BillingRecord) TableName() string {
	return "billing_records"
}

// BillingStatus 請求状態
const (
	BillingStatusUnpaid = "unpaid"
	BillingStatusPaid   = "paid"
)
