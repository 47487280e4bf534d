package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
)

// ProjectService 案件サービス
type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

// NewProjectService 案件サービスを作成
func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProjectRequest 案件作成リクエスト
type CreateProjectRequest struct {
	Title             string     `json:"title" binding:"required"`
	CustomerName      string     `json:"customer_name"`
	Status            string     `json:"status"`
	MaterialCost      int64      `json:"material_cost"`
	SubcontractorCost int64      `json:"subcontractor_cost"`
	OtherExpenses     int64      `json:"other_expenses"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Note              string     `json:"note"`
}

// UpdateProjectRequest 案件更新リクエスト
type UpdateProjectRequest struct {
	Title             string     `json:"title"`
	CustomerName      string     `json:"customer_name"`
	MaterialCost      *int64     `json:"material_cost"`
	SubcontractorCost *int64     `json:"subcontractor_cost"`
	OtherExpenses     *int64     `json:"other_expenses"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Note              string     `json:"note"`
}

// ListProjects 案件一覧を取得。status="all"で全件、keywordでタイトル・顧客名検索
func (s *ProjectService) ListProjects(ctx context.Context, status, keyword string) ([]entity.Project, error) {
	if keyword != "" {
		return s.projectRepo.Search(ctx, status, keyword)
	}
	return s.projectRepo.ListWithAssignmentCount(ctx, status)
}

// GetProject 案件詳細を取得
func (s *ProjectService) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	project, err := s.projectRepo.FindByIDWithAssignmentCount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

// CreateProject 案件を作成
func (s *ProjectService) CreateProject(ctx context.Context, userID string, req *CreateProjectRequest) (*entity.Project, error) {
	status := req.Status
	if status == "" {
		status = entity.ProjectStatusActive
	}

	now := time.Now()
	project := &entity.Project{
		ID:                uuid.New().String()[:32],
		Title:             req.Title,
		CustomerName:      req.CustomerName,
		Status:            status,
		MaterialCost:      req.MaterialCost,
		SubcontractorCost: req.SubcontractorCost,
		OtherExpenses:     req.OtherExpenses,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Note:              req.Note,
		CreatedBy:         userID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// UpdateProject 案件を更新
func (s *ProjectService) UpdateProject(ctx context.Context, id string, req *UpdateProjectRequest) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.CustomerName != "" {
		project.CustomerName = req.CustomerName
	}
	if req.MaterialCost != nil {
		project.MaterialCost = *req.MaterialCost
	}
	if req.SubcontractorCost != nil {
		project.SubcontractorCost = *req.SubcontractorCost
	}
	if req.OtherExpenses != nil {
		project.OtherExpenses = *req.OtherExpenses
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Note != "" {
		project.Note = req.Note
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// UpdateProjectStatus 案件状態を更新
func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id string, status string) (*entity.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}

	project.Status = status
	if status == entity.ProjectStatusCompleted && project.EndDate == nil {
		now := time.Now()
		project.EndDate = &now
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// DeleteProject 案件を削除
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}
