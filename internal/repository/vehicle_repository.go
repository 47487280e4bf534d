package repository

import (
	"context"
	"errors"

	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"gorm.io/gorm"
)

// VehicleRepository 車両リポジトリ
type VehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository 車両リポジトリを作成
func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// FindAll 車両カタログ全件。台数は小さい前提の参照データ
func (r *VehicleRepository) FindAll(ctx context.Context) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&vehicles).Error
	return vehicles, err
}

// FindByID IDで車両を取得
func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// Create 車両を作成
func (r *VehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

// Update 車両を更新
func (r *VehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// Delete 車両を削除
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Vehicle{}).Error
}
