package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
)

// QuotationService 見積サービス
type QuotationService struct {
	quotationRepo *repository.QuotationRepository
	projectRepo   *repository.ProjectRepository
}

// NewQuotationService 見積サービスを作成
func NewQuotationService(quotationRepo *repository.QuotationRepository, projectRepo *repository.ProjectRepository) *QuotationService {
	return &QuotationService{quotationRepo: quotationRepo, projectRepo: projectRepo}
}

// CreateQuotationRequest 見積作成リクエスト
type CreateQuotationRequest struct {
	ProjectID    *string    `json:"project_id"`
	CustomerName string     `json:"customer_name"`
	Title        string     `json:"title" binding:"required"`
	Total        int64      `json:"total"`
	Status       string     `json:"status"`
	IssueDate    *time.Time `json:"issue_date"`
	ValidUntil   *time.Time `json:"valid_until"`
	Note         string     `json:"note"`
}

// UpdateQuotationRequest 見積更新リクエスト
type UpdateQuotationRequest struct {
	ProjectID    *string    `json:"project_id"`
	CustomerName string     `json:"customer_name"`
	Title        string     `json:"title"`
	Total        *int64     `json:"total"`
	Status       string     `json:"status"`
	IssueDate    *time.Time `json:"issue_date"`
	ValidUntil   *time.Time `json:"valid_until"`
	Note         string     `json:"note"`
}

// ListQuotations 見積一覧
func (s *QuotationService) ListQuotations(ctx context.Context, projectID string) ([]entity.Quotation, error) {
	return s.quotationRepo.List(ctx, projectID)
}

// GetQuotation 見積詳細
func (s *QuotationService) GetQuotation(ctx context.Context, id string) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find quotation: %w", err)
	}
	return quotation, nil
}

// CreateQuotation 見積を作成。案件IDが指定されていれば存在を確認する
func (s *QuotationService) CreateQuotation(ctx context.Context, userID string, req *CreateQuotationRequest) (*entity.Quotation, error) {
	if req.ProjectID != nil && *req.ProjectID != "" {
		if _, err := s.projectRepo.FindByID(ctx, *req.ProjectID); err != nil {
			return nil, fmt.Errorf("project not found: %w", err)
		}
	}

	status := req.Status
	if status == "" {
		status = entity.QuotationStatusDraft
	}

	now := time.Now()
	quotation := &entity.Quotation{
		ID:           uuid.New().String()[:32],
		ProjectID:    req.ProjectID,
		CustomerName: req.CustomerName,
		Title:        req.Title,
		Total:        req.Total,
		Status:       status,
		IssueDate:    req.IssueDate,
		ValidUntil:   req.ValidUntil,
		Note:         req.Note,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, fmt.Errorf("create quotation: %w", err)
	}
	return quotation, nil
}

// UpdateQuotation 見積を更新
func (s *QuotationService) UpdateQuotation(ctx context.Context, id string, req *UpdateQuotationRequest) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find quotation: %w", err)
	}

	if req.ProjectID != nil {
		quotation.ProjectID = req.ProjectID
	}
	if req.CustomerName != "" {
		quotation.CustomerName = req.CustomerName
	}
	if req.Title != "" {
		quotation.Title = req.Title
	}
	if req.Total != nil {
		quotation.Total = *req.Total
	}
	if req.Status != "" {
		quotation.Status = req.Status
	}
	if req.IssueDate != nil {
		quotation.IssueDate = req.IssueDate
	}
	if req.ValidUntil != nil {
		quotation.ValidUntil = req.ValidUntil
	}
	if req.Note != "" {
		quotation.Note = req.Note
	}
	quotation.UpdatedAt = time.Now()

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, fmt.Errorf("update quotation: %w", err)
	}
	return quotation, nil
}

// DeleteQuotation 見積を削除
func (s *QuotationService) DeleteQuotation(ctx context.Context, id string) error {
	return s.quotationRepo.Delete(ctx, id)
}
