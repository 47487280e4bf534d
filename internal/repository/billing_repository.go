package repository

import (
	"context"
	"errors"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// BillingRepository 請求リポジトリ
type BillingRepository struct {
	db *gorm.DB
}

// NewBillingRepository 請求リポジトリを作成
func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

// FindByProjectIDs 案件ID集合に紐付く請求を一括取得。空集合は空スライスを返す
func (r *BillingRepository) FindByProjectIDs(ctx context.Context, projectIDs []string) ([]entity.BillingRecord, error) {
	if len(projectIDs) == 0 {
		return []entity.BillingRecord{}, nil
	}
	var records []entity.BillingRecord
	err := r.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Find(&records).Error
	return records, err
}

// List 請求一覧。project_id・statusで絞り込める
func (r *BillingRepository) List(ctx context.Context, projectID, status string) ([]entity.BillingRecord, error) {
	var records []entity.BillingRecord
	query := r.db.WithContext(ctx).Model(&entity.BillingRecord{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&records).Error
	return records, err
}

// FindByID IDで請求を取得
func (r *BillingRepository) FindByID(ctx context.Context, id string) (*entity.BillingRecord, error) {
	var record entity.BillingRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Create 請求を作成
func (r *BillingRepository) Create(ctx context.Context, record *entity.BillingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update 請求を更新
func (r *BillingRepository) Update(ctx context.Context, record *entity.BillingRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete 請求を削除
func (r *BillingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.BillingRecord{}).Error
}
