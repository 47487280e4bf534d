package repository

import (
	"context"
	"errors"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// RateSettingsRepository 単価設定リポジトリ
type RateSettingsRepository struct {
	db *gorm.DB
}

// NewRateSettingsRepository 単価設定リポジトリを作成
func NewRateSettingsRepository(db *gorm.DB) *RateSettingsRepository {
	return &RateSettingsRepository{db: db}
}

// Get 有効な単価設定を取得する。未登録なら (nil, nil) — エラーではない
func (r *RateSettingsRepository) Get(ctx context.Context) (*entity.RateSettings, error) {
	var settings entity.RateSettings
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert 単価設定を保存する。既存があれば上書き
func (r *RateSettingsRepository) Upsert(ctx context.Context, settings *entity.RateSettings) error {
	existing, err := r.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(settings).Error
	}
	return r.db.WithContext(ctx).Create(settings).Error
}
