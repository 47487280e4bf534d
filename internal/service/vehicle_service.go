package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
)

// VehicleService 車両サービス
type VehicleService struct {
	vehicleRepo *repository.VehicleRepository
}

// NewVehicleService 車両サービスを作成
func NewVehicleService(vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// CreateVehicleRequest 車両作成リクエスト
type CreateVehicleRequest struct {
	Name        string `json:"name" binding:"required"`
	PlateNumber string `json:"plate_number"`
	DailyRate   int64  `json:"daily_rate"`
}

// UpdateVehicleRequest 車両更新リクエスト
type UpdateVehicleRequest struct {
	Name        string `json:"name"`
	PlateNumber string `json:"plate_number"`
	DailyRate   *int64 `json:"daily_rate"`
	Status      string `json:"status"`
}

// ListVehicles 車両一覧
func (s *VehicleService) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	return s.vehicleRepo.FindAll(ctx)
}

// GetVehicle 車両詳細
func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return vehicle, nil
}

// CreateVehicle 車両を登録
func (s *VehicleService) CreateVehicle(ctx context.Context, req *CreateVehicleRequest) (*entity.Vehicle, error) {
	now := time.Now()
	vehicle := &entity.Vehicle{
		ID:          uuid.New().String()[:32],
		Name:        req.Name,
		PlateNumber: req.PlateNumber,
		DailyRate:   req.DailyRate,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

// UpdateVehicle 車両を更新
func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, req *UpdateVehicleRequest) (*entity.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}

	if req.Name != "" {
		vehicle.Name = req.Name
	}
	if req.PlateNumber != "" {
		vehicle.PlateNumber = req.PlateNumber
	}
	if req.DailyRate != nil {
		vehicle.DailyRate = *req.DailyRate
	}
	if req.Status != "" {
		vehicle.Status = req.Status
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return vehicle, nil
}

// DeleteVehicle 車両を削除
func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	return s.vehicleRepo.Delete(ctx, id)
}
