package repository

import (
	"context"
	"errors"
	"time"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// AssignmentRepository 段取りリポジトリ
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository 段取りリポジトリを作成
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// FindByProjectIDs 案件ID集合に紐付く段取りを一括取得。空集合は空スライスを返す
func (r *AssignmentRepository) FindByProjectIDs(ctx context.Context, projectIDs []string) ([]entity.Assignment, error) {
	if len(projectIDs) == 0 {
		return []entity.Assignment{}, nil
	}
	var assignments []entity.Assignment
	err := r.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Find(&assignments).Error
	return assignments, err
}

// List 段取り一覧。案件ID・作業日で絞り込める
func (r *AssignmentRepository) List(ctx context.Context, projectID string, workDate *time.Time) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	query := r.db.WithContext(ctx).Model(&entity.Assignment{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if workDate != nil {
		query = query.Where("work_date = ?", workDate)
	}
	err := query.Order("work_date DESC, created_at DESC").Find(&assignments).Error
	return assignments, err
}

// FindByID IDで段取りを取得
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*entity.Assignment, error) {
	var assignment entity.Assignment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// Create 段取りを作成
func (r *AssignmentRepository) Create(ctx context.Context, assignment *entity.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

// Update 段取りを更新
func (r *AssignmentRepository) Update(ctx context.Context, assignment *entity.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

// Delete 段取りを削除
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Assignment{}).Error
}
