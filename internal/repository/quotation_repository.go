package repository

import (
	"context"
	"errors"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// QuotationRepository 見積リポジトリ
type QuotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository 見積リポジトリを作成
func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// FindByProjectIDs 案件ID集合に紐付く見積を一括取得。空集合は空スライスを返す
func (r *QuotationRepository) FindByProjectIDs(ctx context.Context, projectIDs []string) ([]entity.Quotation, error) {
	if len(projectIDs) == 0 {
		return []entity.Quotation{}, nil
	}
	var quotations []entity.Quotation
	err := r.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Find(&quotations).Error
	return quotations, err
}

// List 見積一覧。project_id指定があれば絞り込む
func (r *QuotationRepository) List(ctx context.Context, projectID string) ([]entity.Quotation, error) {
	var quotations []entity.Quotation
	query := r.db.WithContext(ctx).Model(&entity.Quotation{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	err := query.Order("created_at DESC").Find(&quotations).Error
	return quotations, err
}

// FindByID IDで見積を取得
func (r *QuotationRepository) FindByID(ctx context.Context, id string) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&quotation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quotation, nil
}

// Create 見積を作成
func (r *QuotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

// Update 見積を更新
func (r *QuotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Save(quotation).Error
}

// Delete 見積を削除
func (r *QuotationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Quotation{}).Error
}
