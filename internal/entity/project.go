package entity

import (
	"time"
)

// Project 案件エンティティ
type Project struct {
	ID                string     `json:"id" gorm:"primaryKey;size:32"`
	Title             string     `json:"title" gorm:"size:256;not null"`
	CustomerName      string     `json:"customer_name" gorm:"size:128"`
	Status            string     `json:"status" gorm:"size:32;not null;default:active;index"`
	MaterialCost      int64      `json:"material_cost" gorm:"not null;default:0"`
	SubcontractorCost int64      `json:"subcontractor_cost" gorm:"not null;default:0"`
	OtherExpenses     int64      `json:"other_expenses" gorm:"not null;default:0"`
	StartDate         *time.Time `json:"start_date" gorm:"type:date"`
	EndDate           *time.Time `json:"end_date" gorm:"type:date"`
	Note              string     `json:"note" gorm:"type:text"`
	CreatedBy         string     `json:"created_by" gorm:"size:32"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// 一覧取得時にサブクエリで埋める。DBカラムではない
	AssignmentCount int64 `json:"assignment_count" gorm:"->;-:migration"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectStatus 案件状態
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
)

// ProjectStatusAll 状態フィルタの全件センチネル
const ProjectStatusAll = "all"
