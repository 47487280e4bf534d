package entity

import (
	"time"
)

// Assignment 段取りエンティティ。案件に車両と作業員を割り当てる
type Assignment struct {
	ID          string     `json:"id" gorm:"primaryKey;size:32"`
	ProjectID   string     `json:"project_id" gorm:"size:32;not null;index"`
	WorkDate    *time.Time `json:"work_date" gorm:"type:date;index"`
	MemberCount *int       `json:"member_count"`
	Workers     StringList `json:"workers" gorm:"type:jsonb"`
	VehicleIDs  StringList `json:"vehicle_ids" gorm:"type:jsonb"`
	Note        string     `json:"note" gorm:"type:text"`
	CreatedBy   string     `json:"created_by" gorm:"size:32"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Assignment) TableName() string {
	return "assignments"
}
