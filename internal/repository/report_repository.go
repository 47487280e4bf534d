package repository

import (
	"context"
	"errors"
	"time"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// ReportRepository 日報・作業記録リポジトリ
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository 日報リポジトリを作成
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// FindWorkRecordsByProjectIDs 案件ID集合に属する作業記録を、親日報と親段取りを
// 付けた状態で一括取得する。段取り経由で案件に紐付くためJOINで絞り込む
func (r *ReportRepository) FindWorkRecordsByProjectIDs(ctx context.Context, projectIDs []string) ([]entity.WorkRecord, error) {
	if len(projectIDs) == 0 {
		return []entity.WorkRecord{}, nil
	}
	var records []entity.WorkRecord
	err := r.db.WithContext(ctx).
		Joins("JOIN assignments ON assignments.id = work_records.assignment_id").
		Where("assignments.project_id IN ?", projectIDs).
		Preload("Report").
		Preload("Assignment").
		Find(&records).Error
	return records, err
}

// ListByDateRange 期間で日報一覧を取得
func (r *ReportRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entity.DailyReport, error) {
	var reports []entity.DailyReport
	err := r.db.WithContext(ctx).
		Where("work_date >= ? AND work_date <= ?", from, to).
		Order("work_date DESC").
		Find(&reports).Error
	return reports, err
}

// FindByID 作業記録付きで日報を取得
func (r *ReportRepository) FindByID(ctx context.Context, id string) (*entity.DailyReport, error) {
	var report entity.DailyReport
	err := r.db.WithContext(ctx).
		Preload("WorkRecords").
		Preload("WorkRecords.Assignment").
		Where("id = ?", id).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// Create 日報を作成
func (r *ReportRepository) Create(ctx context.Context, report *entity.DailyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// Update 日報を更新
func (r *ReportRepository) Update(ctx context.Context, report *entity.DailyReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// Delete 日報を削除（作業記録も併せて消す）
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).Delete(&entity.WorkRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.DailyReport{}).Error
	})
}

// CreateWorkRecord 作業記録を追加
func (r *ReportRepository) CreateWorkRecord(ctx context.Context, record *entity.WorkRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// DeleteWorkRecord 作業記録を削除
func (r *ReportRepository) DeleteWorkRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.WorkRecord{}).Error
}
