package entity

import (
	"time"
)

// User ユーザーエンティティ
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:32"`
	Email        string    `json:"email" gorm:"size:128;not null;uniqueIndex"`
	Name         string    `json:"name" gorm:"size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	Role         string    `json:"role" gorm:"size:16;not null;default:member"`
	Status       string    `json:"status" gorm:"size:16;not null;default:active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserRole ユーザー権限
const (
	UserRoleAdmin  = "admin"
	UserRoleMember = "member"
)
