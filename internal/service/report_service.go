package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
)

// ReportService 日報サービス
type ReportService struct {
	reportRepo     *repository.ReportRepository
	assignmentRepo *repository.AssignmentRepository
}

// NewReportService 日報サービスを作成
func NewReportService(reportRepo *repository.ReportRepository, assignmentRepo *repository.AssignmentRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo, assignmentRepo: assignmentRepo}
}

// WorkRecordInput 作業記録の入力
type WorkRecordInput struct {
	AssignmentID string `json:"assignment_id" binding:"required"`
	WorkMinutes  int    `json:"work_minutes"`
	Note         string `json:"note"`
}

// CreateReportRequest 日報作成リクエスト
type CreateReportRequest struct {
	WorkDate              time.Time         `json:"work_date" binding:"required"`
	MorningLoadingMinutes int               `json:"morning_loading_minutes"`
	EveningLoadingMinutes int               `json:"evening_loading_minutes"`
	Weather               string            `json:"weather"`
	Note                  string            `json:"note"`
	WorkRecords           []WorkRecordInput `json:"work_records"`
}

// UpdateReportRequest 日報更新リクエスト
type UpdateReportRequest struct {
	MorningLoadingMinutes *int   `json:"morning_loading_minutes"`
	EveningLoadingMinutes *int   `json:"evening_loading_minutes"`
	Weather               string `json:"weather"`
	Note                  string `json:"note"`
}

// ListReports 期間指定で日報一覧を取得。省略時は直近30日
func (s *ReportService) ListReports(ctx context.Context, from, to *time.Time) ([]entity.DailyReport, error) {
	end := time.Now()
	if to != nil {
		end = *to
	}
	start := end.AddDate(0, 0, -30)
	if from != nil {
		start = *from
	}
	return s.reportRepo.ListByDateRange(ctx, start, end)
}

// GetReport 作業記録付きで日報を取得
func (s *ReportService) GetReport(ctx context.Context, id string) (*entity.DailyReport, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}
	return report, nil
}

// CreateReport 日報を作成し、作業記録も併せて登録する。段取りの存在を確認する
func (s *ReportService) CreateReport(ctx context.Context, userID string, req *CreateReportRequest) (*entity.DailyReport, error) {
	for _, input := range req.WorkRecords {
		if _, err := s.assignmentRepo.FindByID(ctx, input.AssignmentID); err != nil {
			return nil, fmt.Errorf("assignment not found: %w", err)
		}
	}

	now := time.Now()
	report := &entity.DailyReport{
		ID:                    uuid.New().String()[:32],
		WorkDate:              req.WorkDate,
		MorningLoadingMinutes: req.MorningLoadingMinutes,
		EveningLoadingMinutes: req.EveningLoadingMinutes,
		Weather:               req.Weather,
		Note:                  req.Note,
		CreatedBy:             userID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	for _, input := range req.WorkRecords {
		record := &entity.WorkRecord{
			ID:           uuid.New().String()[:32],
			ReportID:     report.ID,
			AssignmentID: input.AssignmentID,
			WorkMinutes:  input.WorkMinutes,
			Note:         input.Note,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.reportRepo.CreateWorkRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("create work record: %w", err)
		}
	}

	return s.reportRepo.FindByID(ctx, report.ID)
}

// UpdateReport 日報を更新
func (s *ReportService) UpdateReport(ctx context.Context, id string, req *UpdateReportRequest) (*entity.DailyReport, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}

	if req.MorningLoadingMinutes != nil {
		report.MorningLoadingMinutes = *req.MorningLoadingMinutes
	}
	if req.EveningLoadingMinutes != nil {
		report.EveningLoadingMinutes = *req.EveningLoadingMinutes
	}
	if req.Weather != "" {
		report.Weather = req.Weather
	}
	if req.Note != "" {
		report.Note = req.Note
	}
	report.UpdatedAt = time.Now()

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}
	return report, nil
}

// DeleteReport 日報を削除する。配下の作業記録も消える
func (s *ReportService) DeleteReport(ctx context.Context, id string) error {
	return s.reportRepo.Delete(ctx, id)
}

// AddWorkRecord 既存日報に作業記録を追加する
func (s *ReportService) AddWorkRecord(ctx context.Context, reportID string, input *WorkRecordInput) (*entity.WorkRecord, error) {
	if _, err := s.reportRepo.FindByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("find report: %w", err)
	}
	if _, err := s.assignmentRepo.FindByID(ctx, input.AssignmentID); err != nil {
		return nil, fmt.Errorf("assignment not found: %w", err)
	}

	now := time.Now()
	record := &entity.WorkRecord{
		ID:           uuid.New().String()[:32],
		ReportID:     reportID,
		AssignmentID: input.AssignmentID,
		WorkMinutes:  input.WorkMinutes,
		Note:         input.Note,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.reportRepo.CreateWorkRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("create work record: %w", err)
	}
	return record, nil
}

// RemoveWorkRecord 作業記録を削除する
func (s *ReportService) RemoveWorkRecord(ctx context.Context, recordID string) error {
	return s.reportRepo.DeleteWorkRecord(ctx, recordID)
}
