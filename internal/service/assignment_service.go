package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
)

// AssignmentService 段取りサービス
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	projectRepo    *repository.ProjectRepository
	vehicleRepo    *repository.VehicleRepository
}

// NewAssignmentService 段取りサービスを作成
func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	projectRepo *repository.ProjectRepository,
	vehicleRepo *repository.VehicleRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		projectRepo:    projectRepo,
		vehicleRepo:    vehicleRepo,
	}
}

// CreateAssignmentRequest 段取り作成リクエスト
type CreateAssignmentRequest struct {
	ProjectID   string     `json:"project_id" binding:"required"`
	WorkDate    *time.Time `json:"work_date"`
	MemberCount *int       `json:"member_count"`
	Workers     []string   `json:"workers"`
	VehicleIDs  []string   `json:"vehicle_ids"`
	Note        string     `json:"note"`
}

// UpdateAssignmentRequest 段取り更新リクエスト
type UpdateAssignmentRequest struct {
	WorkDate    *time.Time `json:"work_date"`
	MemberCount *int       `json:"member_count"`
	Workers     []string   `json:"workers"`
	VehicleIDs  []string   `json:"vehicle_ids"`
	Note        string     `json:"note"`
}

// ListAssignments 段取り一覧
func (s *AssignmentService) ListAssignments(ctx context.Context, projectID string, workDate *time.Time) ([]entity.Assignment, error) {
	return s.assignmentRepo.List(ctx, projectID, workDate)
}

// GetAssignment 段取り詳細
func (s *AssignmentService) GetAssignment(ctx context.Context, id string) (*entity.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return assignment, nil
}

// CreateAssignment 段取りを作成。案件と車両の存在を確認する
func (s *AssignmentService) CreateAssignment(ctx context.Context, userID string, req *CreateAssignmentRequest) (*entity.Assignment, error) {
	if _, err := s.projectRepo.FindByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("project not found: %w", err)
	}
	for _, vehicleID := range req.VehicleIDs {
		if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
			return nil, fmt.Errorf("vehicle not found: %w", err)
		}
	}

	now := time.Now()
	assignment := &entity.Assignment{
		ID:          uuid.New().String()[:32],
		ProjectID:   req.ProjectID,
		WorkDate:    req.WorkDate,
		MemberCount: req.MemberCount,
		Workers:     req.Workers,
		VehicleIDs:  req.VehicleIDs,
		Note:        req.Note,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return assignment, nil
}

// UpdateAssignment 段取りを更新
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id string, req *UpdateAssignmentRequest) (*entity.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find assignment: %w", err)
	}

	if req.WorkDate != nil {
		assignment.WorkDate = req.WorkDate
	}
	if req.MemberCount != nil {
		assignment.MemberCount = req.MemberCount
	}
	if req.Workers != nil {
		assignment.Workers = req.Workers
	}
	if req.VehicleIDs != nil {
		for _, vehicleID := range req.VehicleIDs {
			if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
				return nil, fmt.Errorf("vehicle not found: %w", err)
			}
		}
		assignment.VehicleIDs = req.VehicleIDs
	}
	if req.Note != "" {
		assignment.Note = req.Note
	}
	assignment.UpdatedAt = time.Now()

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	return assignment, nil
}

// DeleteAssignment 段取りを削除
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id string) error {
	return s.assignmentRepo.Delete(ctx, id)
}
