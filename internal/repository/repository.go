package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories リポジトリ集合
type Repositories struct {
	Project      *ProjectRepository
	Quotation    *QuotationRepository
	Billing      *BillingRepository
	Report       *ReportRepository
	Assignment   *AssignmentRepository
	Vehicle      *VehicleRepository
	RateSettings *RateSettingsRepository
	Attachment   *AttachmentRepository
	User         *UserRepository
}

// NewRepositories リポジトリ集合を作成
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Project:      NewProjectRepository(db),
		Quotation:    NewQuotationRepository(db),
		Billing:      NewBillingRepository(db),
		Report:       NewReportRepository(db),
		Assignment:   NewAssignmentRepository(db),
		Vehicle:      NewVehicleRepository(db),
		RateSettings: NewRateSettingsRepository(db),
		Attachment:   NewAttachmentRepository(db),
		User:         NewUserRepository(db),
	}
}
