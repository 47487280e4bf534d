package entity

import (
	"time"
)

// Attachment 日報添付ファイル。実体はMinIOに置く
type Attachment struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	ReportID    string    `json:"report_id" gorm:"size:32;not null;index"`
	FileName    string    `json:"file_name" gorm:"size:256;not null"`
	ObjectKey   string    `json:"object_key" gorm:"size:512;not null"`
	Size        int64     `json:"size" gorm:"not null;default:0"`
	ContentType string    `json:"content_type" gorm:"size:128"`
	UploadedBy  string    `json:"uploaded_by" gorm:"size:32"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
