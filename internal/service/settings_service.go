package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
)

// SettingsService 単価設定サービス
type SettingsService struct {
	settingsRepo *repository.RateSettingsRepository
}

// NewSettingsService 単価設定サービスを作成
func NewSettingsService(settingsRepo *repository.RateSettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// UpdateRateSettingsRequest 単価設定の更新リクエスト
type UpdateRateSettingsRequest struct {
	LaborDailyRate      int64 `json:"labor_daily_rate" binding:"required,gt=0"`
	StandardWorkMinutes int   `json:"standard_work_minutes" binding:"required,gt=0"`
}

// GetRateSettings 単価設定を取得する。未登録なら業務デフォルトを埋めて返す
func (s *SettingsService) GetRateSettings(ctx context.Context) (*entity.RateSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rate settings: %w", err)
	}
	if settings == nil {
		return &entity.RateSettings{
			LaborDailyRate:      DefaultLaborDailyRate,
			StandardWorkMinutes: DefaultStandardWorkMinutes,
		}, nil
	}
	return settings, nil
}

// UpdateRateSettings 単価設定を保存する
func (s *SettingsService) UpdateRateSettings(ctx context.Context, userID string, req *UpdateRateSettingsRequest) (*entity.RateSettings, error) {
	now := time.Now()
	settings := &entity.RateSettings{
		ID:                  uuid.New().String()[:32],
		LaborDailyRate:      req.LaborDailyRate,
		StandardWorkMinutes: req.StandardWorkMinutes,
		UpdatedBy:           userID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("upsert rate settings: %w", err)
	}
	return settings, nil
}
