package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
)

// BillingService 請求サービス
type BillingService struct {
	billingRepo *repository.BillingRepository
	projectRepo *repository.ProjectRepository
}

// NewBillingService 請求サービスを作成
func NewBillingService(billingRepo *repository.BillingRepository, projectRepo *repository.ProjectRepository) *BillingService {
	return &BillingService{billingRepo: billingRepo, projectRepo: projectRepo}
}

// CreateBillingRequest 請求作成リクエスト
type CreateBillingRequest struct {
	ProjectID   string     `json:"project_id" binding:"required"`
	QuotationID *string    `json:"quotation_id"`
	Title       string     `json:"title"`
	Total       int64      `json:"total"`
	BillingDate *time.Time `json:"billing_date"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateBillingRequest 請求更新リクエスト
type UpdateBillingRequest struct {
	Title       string     `json:"title"`
	Total       *int64     `json:"total"`
	BillingDate *time.Time `json:"billing_date"`
	DueDate     *time.Time `json:"due_date"`
}

// ListBillings 請求一覧
func (s *BillingService) ListBillings(ctx context.Context, projectID, status string) ([]entity.BillingRecord, error) {
	return s.billingRepo.List(ctx, projectID, status)
}

// GetBilling 請求詳細
func (s *BillingService) GetBilling(ctx context.Context, id string) (*entity.BillingRecord, error) {
	record, err := s.billingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find billing record: %w", err)
	}
	return record, nil
}

// CreateBilling 請求を作成。案件の存在を確認する
func (s *BillingService) CreateBilling(ctx context.Context, userID string, req *CreateBillingRequest) (*entity.BillingRecord, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("project not found: %w", err)
	}

	now := time.Now()
	record := &entity.BillingRecord{
		ID:          uuid.New().String()[:32],
		ProjectID:   req.ProjectID,
		QuotationID: req.QuotationID,
		Title:       req.Title,
		Total:       req.Total,
		Status:      entity.BillingStatusUnpaid,
		BillingDate: req.BillingDate,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.billingRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create billing record: %w", err)
	}
	return record, nil
}

// UpdateBilling 請求を更新
func (s *BillingService) UpdateBilling(ctx context.Context, id string, req *UpdateBillingRequest) (*entity.BillingRecord, error) {
	record, err := s.billingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find billing record: %w", err)
	}

	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Total != nil {
		record.Total = *req.Total
	}
	if req.BillingDate != nil {
		record.BillingDate = req.BillingDate
	}
	if req.DueDate != nil {
		record.DueDate = req.DueDate
	}
	record.UpdatedAt = time.Now()

	if err := s.billingRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("update billing record: %w", err)
	}
	return record, nil
}

// MarkBillingPaid 入金済みにする
func (s *BillingService) MarkBillingPaid(ctx context.Context, id string) (*entity.BillingRecord, error) {
	record, err := s.billingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find billing record: %w", err)
	}

	now := time.Now()
	record.Status = entity.BillingStatusPaid
	record.PaidAt = &now
	record.UpdatedAt = now

	if err := s.billingRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("update billing record: %w", err)
	}
	return record, nil
}

// DeleteBilling 請求を削除
func (s *BillingService) DeleteBilling(ctx context.Context, id string) error {
	return s.billingRepo.Delete(ctx, id)
}
